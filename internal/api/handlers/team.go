package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hackathon_web/internal/models"
	"hackathon_web/internal/service"
)

// TeamHandler 處理隊伍報名與作品提交的請求
type TeamHandler struct {
	teamService *service.TeamService
}

// NewTeamHandler 創建一個新的 TeamHandler 實例
func NewTeamHandler(teamService *service.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// RegisterTeam 處理隊伍報名的請求
func (h *TeamHandler) RegisterTeam(c *gin.Context) {
	hackathonID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "無效的活動ID"})
		return
	}

	var input struct {
		Name      string `json:"name" binding:"required"`
		MemberIDs []uint `json:"memberIds"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 報名者自動成為隊伍成員
	memberIDs := input.MemberIDs
	if !containsID(memberIDs, currentUserID(c)) {
		memberIDs = append(memberIDs, currentUserID(c))
	}

	team, err := h.teamService.RegisterTeam(uint(hackathonID), input.Name, memberIDs)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, team)
}

// CreateSubmission 處理作品提交的請求
func (h *TeamHandler) CreateSubmission(c *gin.Context) {
	hackathonID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "無效的活動ID"})
		return
	}

	var input struct {
		TeamID      uint   `json:"teamId" binding:"required"`
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
		RepoURL     string `json:"repoUrl"`
		DemoURL     string `json:"demoUrl"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	submission := &models.Submission{
		HackathonID: uint(hackathonID),
		TeamID:      input.TeamID,
		Title:       input.Title,
		Description: input.Description,
		RepoURL:     input.RepoURL,
		DemoURL:     input.DemoURL,
	}

	stored, err := h.teamService.CreateSubmission(submission, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, stored)
}

func containsID(ids []uint, id uint) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
