package service

import (
	"log"

	"hackathon_web/internal/apperrors"
	"hackathon_web/internal/models"
	"hackathon_web/internal/repository"
)

// DefaultPageSize 訊息歷史單頁的預設筆數
const DefaultPageSize = 50

// Pagination 描述訊息歷史的分頁資訊，Total 是符合條件的總筆數
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// MessageService 負責聊天訊息的持久化與歷史查詢
type MessageService struct {
	messages repository.MessageRepository
}

func NewMessageService(messages repository.MessageRepository) *MessageService {
	return &MessageService{messages: messages}
}

// Store 持久化一則聊天訊息，成功後帶著發送者投影回傳。
// 廣播必須等 Store 成功才能進行，這個順序由呼叫端遵守。
func (s *MessageService) Store(hackathonID, userID uint, roomType models.RoomType, text string) (*models.Message, error) {
	if hackathonID == 0 || text == "" || !models.ValidRoomType(string(roomType)) {
		return nil, apperrors.ErrValidation
	}

	message := &models.Message{
		HackathonID: hackathonID,
		UserID:      userID,
		RoomType:    roomType,
		Content:     text,
	}

	if err := s.messages.Create(message); err != nil {
		log.Printf("message store failed: %v", err)
		return nil, apperrors.ErrStoreUnavailable
	}

	// 重新讀出以帶上發送者投影（id、姓名、email、頭像）
	stored, err := s.messages.FindByID(message.ID)
	if err != nil {
		log.Printf("message reload failed: %v", err)
		return nil, apperrors.ErrStoreUnavailable
	}
	return stored, nil
}

// Fetch 查詢某聊天室的訊息歷史。
// 先取出該頁最新的 limit 筆，再於記憶體中反轉成由舊到新的順序。
func (s *MessageService) Fetch(hackathonID uint, roomType models.RoomType, page, pageSize int) ([]models.Message, *Pagination, error) {
	if !models.ValidRoomType(string(roomType)) {
		return nil, nil, apperrors.ErrValidation
	}
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	messages, err := s.messages.FindPage(hackathonID, roomType, page, pageSize)
	if err != nil {
		log.Printf("message history query failed: %v", err)
		return nil, nil, apperrors.ErrStoreUnavailable
	}

	// 反轉為該頁內由舊到新
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	total, err := s.messages.Count(hackathonID, roomType)
	if err != nil {
		log.Printf("message count query failed: %v", err)
		return nil, nil, apperrors.ErrStoreUnavailable
	}

	return messages, &Pagination{Page: page, Limit: pageSize, Total: total}, nil
}
