package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"hackathon_web/internal/apperrors"
	"hackathon_web/internal/service"
	"hackathon_web/internal/utils"
)

// 定義 WebSocket 升級器
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // 注意：在生產環境中，應該檢查 origin
	},
}

// WebSocketHandler 處理 WebSocket 連線的握手與接管
type WebSocketHandler struct {
	realtime    *service.RealtimeManager
	userService *service.UserService
}

// NewWebSocketHandler 創建一個新的 WebSocketHandler 實例
func NewWebSocketHandler(realtime *service.RealtimeManager, userService *service.UserService) *WebSocketHandler {
	return &WebSocketHandler{
		realtime:    realtime,
		userService: userService,
	}
}

// HandleWebSocket 處理 WebSocket 連線請求。
// 握手失敗（缺少 token、token 無效或過期、查無使用者）時直接拒絕，
// 絕不建立任何連線；只有全部通過才升級為 WebSocket。
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrAuthenticationRequired.Error()})
		return
	}

	// 驗證簽名與有效期
	claims, err := utils.ParseToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	// 把宣告解析成在線使用者紀錄
	user, err := h.userService.ResolveIdentity(claims.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	// 升級 HTTP 連線為 WebSocket 連線
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "升級WebSocket失敗"})
		return
	}

	client := service.NewClient(conn, user)

	// 接管連線，阻塞直到客戶端斷線
	h.realtime.HandleClient(client)
}
