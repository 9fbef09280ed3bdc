package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hackathon_web/internal/apperrors"
	"hackathon_web/internal/models"
	"hackathon_web/internal/service"
)

// EvaluationHandler 處理評審提交評分的請求
type EvaluationHandler struct {
	evaluationService *service.EvaluationService
}

// NewEvaluationHandler 創建一個新的 EvaluationHandler 實例
func NewEvaluationHandler(evaluationService *service.EvaluationService) *EvaluationHandler {
	return &EvaluationHandler{evaluationService: evaluationService}
}

// CreateEvaluation 處理新增評分的請求，只有評審能評分。
// 同一位評審對同一件作品重複評分會得到 409。
func (h *EvaluationHandler) CreateEvaluation(c *gin.Context) {
	hackathonID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "無效的活動ID"})
		return
	}

	if currentUserRole(c) != string(models.RoleJudge) {
		respondError(c, apperrors.ErrAuthorizationDenied)
		return
	}

	var input struct {
		SubmissionID uint                 `json:"submissionId" binding:"required"`
		Scores       []service.ScoreInput `json:"scores" binding:"required"`
		Feedback     string               `json:"feedback"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	evaluation, err := h.evaluationService.Create(uint(hackathonID), input.SubmissionID, currentUserID(c), input.Scores, input.Feedback)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, evaluation)
}
