package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hackathon_web/internal/api/handlers"
	"hackathon_web/internal/middleware"
	"hackathon_web/internal/service"
)

func SetupRoutes(r *gin.Engine, services *service.Services) {
	// 初始化 handlers
	authHandler := handlers.NewAuthHandler(services.User)
	hackathonHandler := handlers.NewHackathonHandler(services.Hackathon)
	teamHandler := handlers.NewTeamHandler(services.Team)
	evaluationHandler := handlers.NewEvaluationHandler(services.Evaluation)
	leaderboardHandler := handlers.NewLeaderboardHandler(services.Leaderboard, services.Hackathon)
	messageHandler := handlers.NewMessageHandler(services.Message)
	wsHandler := handlers.NewWebSocketHandler(services.Realtime, services.User)

	// API 路由群組
	api := r.Group("/api")

	// 處理 404 錯誤
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "找不到該路徑",
		})
	})

	// 公開路由
	{
		// 使用者認證相關
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		// WebSocket 連線點，token 由查詢參數帶入，握手時驗證
		api.GET("/ws", wsHandler.HandleWebSocket)

		// 基本的健康檢查
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status": "ok",
			})
		})
	}

	// 需要驗證的路由
	authorized := api.Group("/")
	authorized.Use(middleware.AuthMiddleware())
	{
		// 活動相關
		hackathons := authorized.Group("/hackathons")
		{
			hackathons.GET("", hackathonHandler.ListHackathons)   // 獲取活動列表
			hackathons.POST("", hackathonHandler.CreateHackathon) // 創建活動
			hackathons.GET("/:id", hackathonHandler.GetHackathon) // 獲取活動訊息

			// 公告與提問
			hackathons.POST("/:id/announcements", hackathonHandler.CreateAnnouncement)
			hackathons.POST("/:id/faqs", hackathonHandler.CreateFAQ)
			hackathons.POST("/:id/questions", hackathonHandler.AskQuestion)

			// 隊伍與作品
			hackathons.POST("/:id/teams", teamHandler.RegisterTeam)
			hackathons.POST("/:id/submissions", teamHandler.CreateSubmission)

			// 評分（僅評審）
			hackathons.POST("/:id/evaluations", evaluationHandler.CreateEvaluation)
		}

		// 回覆提問（僅主辦方）
		authorized.POST("/questions/:id/answer", hackathonHandler.AnswerQuestion)

		// 排行榜與訊息歷史
		authorized.GET("/leaderboard/:hackathonId", leaderboardHandler.GetLeaderboard)
		authorized.GET("/messages/:hackathonId", messageHandler.GetMessages)
	}
}
