package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hackathon_web/internal/apperrors"
	"hackathon_web/internal/models"
	"hackathon_web/internal/service"
)

// HackathonHandler 處理活動與公告、FAQ、提問相關的請求
type HackathonHandler struct {
	hackathonService *service.HackathonService
}

// NewHackathonHandler 創建一個新的 HackathonHandler 實例
func NewHackathonHandler(hackathonService *service.HackathonService) *HackathonHandler {
	return &HackathonHandler{hackathonService: hackathonService}
}

// CreateHackathon 處理創建活動的請求，只有主辦方能建立
func (h *HackathonHandler) CreateHackathon(c *gin.Context) {
	if currentUserRole(c) != string(models.RoleOrganizer) {
		respondError(c, apperrors.ErrAuthorizationDenied)
		return
	}

	var input struct {
		Title        string `json:"title" binding:"required"`
		Organization string `json:"org"`
		Description  string `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hackathon := &models.Hackathon{
		Title:        input.Title,
		Organization: input.Organization,
		Description:  input.Description,
		OrganizerID:  currentUserID(c),
	}
	if err := h.hackathonService.CreateHackathon(hackathon); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "創建活動失敗"})
		return
	}

	c.JSON(http.StatusCreated, hackathon)
}

// GetHackathon 處理獲取活動訊息的請求
func (h *HackathonHandler) GetHackathon(c *gin.Context) {
	hackathonID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "無效的活動ID"})
		return
	}

	hackathon, err := h.hackathonService.GetHackathon(uint(hackathonID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, hackathon)
}

// ListHackathons 處理獲取活動列表的請求
func (h *HackathonHandler) ListHackathons(c *gin.Context) {
	hackathons, err := h.hackathonService.ListHackathons()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "無法搜尋活動列表"})
		return
	}

	c.JSON(http.StatusOK, hackathons)
}

// CreateAnnouncement 發布公告，只有主辦方能發布
func (h *HackathonHandler) CreateAnnouncement(c *gin.Context) {
	hackathonID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "無效的活動ID"})
		return
	}

	if currentUserRole(c) != string(models.RoleOrganizer) {
		respondError(c, apperrors.ErrAuthorizationDenied)
		return
	}

	var input struct {
		Title   string `json:"title" binding:"required"`
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	announcement := &models.Announcement{
		HackathonID: uint(hackathonID),
		AuthorID:    currentUserID(c),
		Title:       input.Title,
		Content:     input.Content,
	}
	if err := h.hackathonService.CreateAnnouncement(announcement); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, announcement)
}

// CreateFAQ 新增 FAQ 條目，只有主辦方能新增
func (h *HackathonHandler) CreateFAQ(c *gin.Context) {
	hackathonID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "無效的活動ID"})
		return
	}

	if currentUserRole(c) != string(models.RoleOrganizer) {
		respondError(c, apperrors.ErrAuthorizationDenied)
		return
	}

	var input struct {
		Question string `json:"question" binding:"required"`
		Answer   string `json:"answer"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	faq := &models.FAQ{
		HackathonID: uint(hackathonID),
		Question:    input.Question,
		Answer:      input.Answer,
	}
	if err := h.hackathonService.CreateFAQ(faq); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, faq)
}

// AskQuestion 向主辦方提問
func (h *HackathonHandler) AskQuestion(c *gin.Context) {
	hackathonID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "無效的活動ID"})
		return
	}

	var input struct {
		OrganizerID uint   `json:"organizerId"`
		Content     string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	question := &models.Question{
		HackathonID: uint(hackathonID),
		AskerID:     currentUserID(c),
		OrganizerID: input.OrganizerID,
		Content:     input.Content,
	}
	if err := h.hackathonService.AskQuestion(question); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, question)
}

// AnswerQuestion 回覆提問，只有主辦方能回覆
func (h *HackathonHandler) AnswerQuestion(c *gin.Context) {
	questionID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "無效的問題ID"})
		return
	}

	if currentUserRole(c) != string(models.RoleOrganizer) {
		respondError(c, apperrors.ErrAuthorizationDenied)
		return
	}

	var input struct {
		Answer string `json:"answer" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	question, err := h.hackathonService.AnswerQuestion(uint(questionID), input.Answer)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, question)
}
