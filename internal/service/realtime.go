package service

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"hackathon_web/internal/apperrors"
	"hackathon_web/internal/models"
	"hackathon_web/internal/repository"
)

// ServerEvent 是所有送往客戶端的事件的統一封裝，派發時蓋上時間戳
type ServerEvent struct {
	Event     string      `json:"event"`
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// ClientEvent 是客戶端送來的事件，欄位依事件種類選用
type ClientEvent struct {
	Event       string `json:"event"`
	HackathonID uint   `json:"hackathonId"`
	TeamID      uint   `json:"teamId"`
	RoomType    string `json:"roomType"`
	Message     string `json:"message"`
	Stage       string `json:"stage"`
	Progress    int    `json:"progress"`
}

// Client 代表一個 WebSocket 客戶端連線
type Client struct {
	Conn     *websocket.Conn   // WebSocket 連線
	UserID   uint              // 使用者 ID
	Email    string            // 使用者電子郵件
	Role     models.UserRole   // 使用者角色
	SendChan chan *ServerEvent // 事件發送通道，用於異步傳送事件

	// SendChan 永遠不關閉：斷線以 done 通知，廣播端看到 done
	// 已關閉就直接丟棄事件，避免對已斷線的連線發送
	done      chan struct{}
	closeOnce sync.Once
}

// NewClient 以已驗證的使用者身份建立客戶端
func NewClient(conn *websocket.Conn, user *models.User) *Client {
	return &Client{
		Conn:     conn,
		UserID:   user.ID,
		Email:    user.Email,
		Role:     user.Role,
		SendChan: make(chan *ServerEvent, 256), // 設置緩衝大小為 256 的事件通道
		done:     make(chan struct{}),
	}
}

// close 標記連線結束並關閉底層連線，可安全地重複呼叫
func (c *Client) close() {
	c.closeOnce.Do(func() {
		close(c.done)
		if c.Conn != nil {
			c.Conn.Close()
		}
	})
}

// RealtimeManager 管理所有的 WebSocket 連線、房間成員與事件廣播。
// rooms 和 memberships 是所有連線處理器共享的狀態，由讀寫鎖保護。
type RealtimeManager struct {
	rooms       map[RoomKey]map[*Client]bool // 房間 -> 成員集合
	memberships map[*Client]map[RoomKey]bool // 連線 -> 已加入的房間集合
	mux         sync.RWMutex

	messages *MessageService
	teams    repository.TeamRepository
}

// NewRealtimeManager 創建並初始化實時事件管理器
func NewRealtimeManager(messages *MessageService, teams repository.TeamRepository) *RealtimeManager {
	return &RealtimeManager{
		rooms:       make(map[RoomKey]map[*Client]bool),
		memberships: make(map[*Client]map[RoomKey]bool),
		messages:    messages,
		teams:       teams,
	}
}

// HandleClient 接手一條已通過握手驗證的連線，阻塞直到連線關閉
func (m *RealtimeManager) HandleClient(client *Client) {
	m.register(client)

	// 確保連線關閉時清理資源
	defer func() {
		m.unregister(client)
		client.close()
	}()

	go m.writePump(client)
	m.readPump(client)
}

// readPump 持續監聽並處理從客戶端接收的事件。
// 同一條連線的事件依序處理完才讀下一個，不同連線之間自由交錯。
func (m *RealtimeManager) readPump(client *Client) {
	client.Conn.SetReadLimit(4096) // 設置最大事件大小為 4KB
	client.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	client.Conn.SetPongHandler(func(string) error {
		client.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, raw, err := client.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("websocket unexpected close error: %v", err)
			}
			break
		}

		var evt ClientEvent
		if err := json.Unmarshal(raw, &evt); err != nil {
			log.Printf("client event parse error: %v", err)
			m.sendError(client, apperrors.ErrValidation)
			continue
		}

		m.dispatch(client, &evt)
	}
}

// writePump 處理向客戶端發送事件的邏輯
func (m *RealtimeManager) writePump(client *Client) {
	// 設置心跳檢查計時器
	ticker := time.NewTicker(54 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case event := <-client.SendChan:
			client.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))

			w, err := client.Conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}

			eventBytes, err := json.Marshal(event)
			if err != nil {
				log.Printf("event encoding error: %v", err)
				continue
			}

			if _, err := w.Write(eventBytes); err != nil {
				return
			}
			if err := w.Close(); err != nil {
				return
			}

		case <-client.done:
			// 連線已結束，通知客戶端後退出
			client.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case <-ticker.C:
			// 發送心跳包
			client.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := client.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// dispatch 依事件名稱分派客戶端事件。
// 域內錯誤一律以 error 事件回報，連線保持開啟。
func (m *RealtimeManager) dispatch(client *Client, evt *ClientEvent) {
	switch evt.Event {
	case "join-hackathon-room":
		m.handleJoin(client, HackathonRoom(evt.HackathonID), "joined-hackathon-room")
	case "leave-hackathon-room":
		m.LeaveRoom(client, HackathonRoom(evt.HackathonID))
		m.sendEvent(client, "left-hackathon-room", map[string]interface{}{"hackathonId": evt.HackathonID})
	case "join-judge-room":
		m.handleJoin(client, JudgesRoom(evt.HackathonID), "joined-judge-room")
	case "join-user-room":
		m.handleJoin(client, UserRoom(client.UserID), "joined-user-room")
	case "join-organizer-room":
		m.handleJoin(client, OrganizerRoom(client.UserID), "joined-organizer-room")
	case "judge-message":
		m.handleChat(client, evt, models.RoomTypeJudge, "new-judge-message")
	case "general-message":
		m.handleChat(client, evt, models.RoomTypeGeneral, "new-general-message")
	case "team-progress-update":
		m.handleProgress(client, evt)
	case "typing-start":
		m.handleTyping(client, evt, "user-typing")
	case "typing-stop":
		m.handleTyping(client, evt, "user-stopped-typing")
	default:
		m.sendError(client, apperrors.ErrValidation)
	}
}

func (m *RealtimeManager) handleJoin(client *Client, key RoomKey, ack string) {
	if err := m.JoinRoom(client, key); err != nil {
		m.sendError(client, err)
		return
	}
	m.sendEvent(client, ack, map[string]interface{}{
		"roomType": key.Type,
		"scopeId":  key.ScopeID,
	})
}

// handleChat 處理聊天事件：先持久化，成功後才廣播。
// 持久化失敗時只回報 error 事件，絕不廣播未落地的訊息。
func (m *RealtimeManager) handleChat(client *Client, evt *ClientEvent, defaultRoom models.RoomType, eventName string) {
	roomType := models.RoomType(evt.RoomType)
	if evt.RoomType == "" {
		roomType = defaultRoom
	}

	// 評審聊天只有評審能發言，規則與 judges 房間的加入規則一致
	if roomType == models.RoomTypeJudge && client.Role != models.RoleJudge {
		m.sendError(client, apperrors.ErrAuthorizationDenied)
		return
	}

	stored, err := m.messages.Store(evt.HackathonID, client.UserID, roomType, evt.Message)
	if err != nil {
		log.Printf("chat message store failed: %v", err)
		if err == apperrors.ErrValidation {
			m.sendError(client, err)
		} else {
			m.sendError(client, apperrors.ErrInternal)
		}
		return
	}

	m.Publish(eventName, chatRoom(roomType, evt.HackathonID), stored)
}

// handleProgress 廣播隊伍進度更新，發送者必須是該隊伍的成員
func (m *RealtimeManager) handleProgress(client *Client, evt *ClientEvent) {
	ok, err := m.teams.IsMember(evt.TeamID, client.UserID)
	if err != nil {
		log.Printf("team membership check failed: %v", err)
		m.sendError(client, apperrors.ErrInternal)
		return
	}
	if !ok {
		m.sendError(client, apperrors.ErrAuthorizationDenied)
		return
	}

	m.Publish("team-progress-updated", HackathonRoom(evt.HackathonID), map[string]interface{}{
		"hackathonId": evt.HackathonID,
		"teamId":      evt.TeamID,
		"userId":      client.UserID,
		"stage":       evt.Stage,
		"progress":    evt.Progress,
	})
}

// handleTyping 把輸入狀態廣播到對應聊天室，發送者自己不收。
// 授權規則與聊天一致：評審聊天室的輸入狀態只有評審能發。
func (m *RealtimeManager) handleTyping(client *Client, evt *ClientEvent, eventName string) {
	roomType := models.RoomType(evt.RoomType)
	if evt.RoomType == "" {
		roomType = models.RoomTypeGeneral
	}
	if !models.ValidRoomType(string(roomType)) {
		m.sendError(client, apperrors.ErrValidation)
		return
	}
	if roomType == models.RoomTypeJudge && client.Role != models.RoleJudge {
		m.sendError(client, apperrors.ErrAuthorizationDenied)
		return
	}

	m.PublishExcept(eventName, chatRoom(roomType, evt.HackathonID), map[string]interface{}{
		"hackathonId": evt.HackathonID,
		"userId":      client.UserID,
		"roomType":    string(roomType),
	}, client)
}

// JoinRoom 在通過授權檢查後把連線加入房間
func (m *RealtimeManager) JoinRoom(client *Client, key RoomKey) error {
	if err := authorizeJoin(client, key); err != nil {
		return err
	}

	m.mux.Lock()
	defer m.mux.Unlock()

	if m.rooms[key] == nil {
		m.rooms[key] = make(map[*Client]bool)
	}
	m.rooms[key][client] = true

	if m.memberships[client] == nil {
		m.memberships[client] = make(map[RoomKey]bool)
	}
	m.memberships[client][key] = true
	return nil
}

// LeaveRoom 把連線移出房間，離開未加入的房間是 no-op
func (m *RealtimeManager) LeaveRoom(client *Client, key RoomKey) {
	m.mux.Lock()
	defer m.mux.Unlock()
	m.removeFromRoom(client, key)
}

// Publish 向房間內的所有連線廣播事件，沒有成員時靜默略過
func (m *RealtimeManager) Publish(event string, room RoomKey, payload interface{}) {
	m.PublishExcept(event, room, payload, nil)
}

// PublishExcept 與 Publish 相同，但略過指定的連線（用於輸入狀態事件）
func (m *RealtimeManager) PublishExcept(event string, room RoomKey, payload interface{}, except *Client) {
	se := &ServerEvent{
		Event:     event,
		Payload:   payload,
		Timestamp: time.Now(),
	}

	m.mux.RLock()
	members := make([]*Client, 0, len(m.rooms[room]))
	for client := range m.rooms[room] {
		if client != except {
			members = append(members, client)
		}
	}
	m.mux.RUnlock()

	for _, client := range members {
		m.enqueue(client, se)
	}
}

// RoomSize 獲取指定房間的在線連線數量
func (m *RealtimeManager) RoomSize(key RoomKey) int {
	m.mux.RLock()
	defer m.mux.RUnlock()

	return len(m.rooms[key])
}

// InRoom 檢查連線目前是否在指定房間中
func (m *RealtimeManager) InRoom(client *Client, key RoomKey) bool {
	m.mux.RLock()
	defer m.mux.RUnlock()

	return m.memberships[client][key]
}

func (m *RealtimeManager) sendEvent(client *Client, event string, payload interface{}) {
	m.enqueue(client, &ServerEvent{
		Event:     event,
		Payload:   payload,
		Timestamp: time.Now(),
	})
}

func (m *RealtimeManager) sendError(client *Client, err error) {
	m.sendEvent(client, "error", map[string]interface{}{"message": err.Error()})
}

// enqueue 把事件放入連線的發送隊列。
// 已斷線的連線直接丟棄事件：廣播可能在成員快照之後、發送之前
// 碰上斷線，這種情況下事件無處可送，丟棄即可，絕不能讓廣播崩潰。
func (m *RealtimeManager) enqueue(client *Client, event *ServerEvent) {
	select {
	case <-client.done:
		return
	default:
	}

	select {
	case client.SendChan <- event:
		// 事件成功加入發送隊列
	default:
		// 客戶端事件隊列已滿，斷開連線
		m.unregister(client)
		client.close()
	}
}

// register 登記新的連線，初始時不在任何房間中
func (m *RealtimeManager) register(client *Client) {
	m.mux.Lock()
	defer m.mux.Unlock()

	m.memberships[client] = make(map[RoomKey]bool)
}

// unregister 移除連線並清空它在所有房間中的成員資格
func (m *RealtimeManager) unregister(client *Client) {
	m.mux.Lock()
	defer m.mux.Unlock()

	for key := range m.memberships[client] {
		m.removeFromRoom(client, key)
	}
	delete(m.memberships, client)
}

// removeFromRoom 呼叫端必須已持有寫鎖
func (m *RealtimeManager) removeFromRoom(client *Client, key RoomKey) {
	if clients, ok := m.rooms[key]; ok {
		delete(clients, client)
		// 如果房間空了，刪除房間
		if len(clients) == 0 {
			delete(m.rooms, key)
		}
	}
	if rooms, ok := m.memberships[client]; ok {
		delete(rooms, key)
	}
}
