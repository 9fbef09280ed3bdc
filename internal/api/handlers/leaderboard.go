package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hackathon_web/internal/service"
)

// LeaderboardHandler 處理排行榜查詢的請求
type LeaderboardHandler struct {
	leaderboardService *service.LeaderboardService
	hackathonService   *service.HackathonService
}

// NewLeaderboardHandler 創建一個新的 LeaderboardHandler 實例
func NewLeaderboardHandler(leaderboardService *service.LeaderboardService, hackathonService *service.HackathonService) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardService: leaderboardService,
		hackathonService:   hackathonService,
	}
}

// GetLeaderboard 回傳活動的排行榜，每次請求都完整重算
func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	hackathonID, err := strconv.ParseUint(c.Param("hackathonId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "無效的活動ID"})
		return
	}

	hackathon, err := h.hackathonService.GetHackathon(uint(hackathonID))
	if err != nil {
		respondError(c, err)
		return
	}

	leaderboard, err := h.leaderboardService.Compute(uint(hackathonID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "無法計算排行榜"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"leaderboard": leaderboard,
		"hackathon": gin.H{
			"id":    hackathon.ID,
			"title": hackathon.Title,
			"org":   hackathon.Organization,
		},
	})
}
