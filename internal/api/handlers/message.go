package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hackathon_web/internal/models"
	"hackathon_web/internal/service"
)

// MessageHandler 處理聊天訊息歷史查詢的請求
type MessageHandler struct {
	messageService *service.MessageService
}

// NewMessageHandler 創建一個新的 MessageHandler 實例
func NewMessageHandler(messageService *service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// GetMessages 分頁查詢聊天室歷史，頁內順序由舊到新
func (h *MessageHandler) GetMessages(c *gin.Context) {
	hackathonID, err := strconv.ParseUint(c.Param("hackathonId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "無效的活動ID"})
		return
	}

	roomType := c.DefaultQuery("roomType", string(models.RoomTypeGeneral))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(service.DefaultPageSize)))

	messages, pagination, err := h.messageService.Fetch(uint(hackathonID), models.RoomType(roomType), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"messages":   messages,
		"pagination": pagination,
	})
}
