package repository

import (
	"hackathon_web/internal/models"
	"hackathon_web/internal/storage"
)

type MessageRepository interface {
	Create(message *models.Message) error
	FindByID(id uint) (*models.Message, error)
	FindPage(hackathonID uint, roomType models.RoomType, page, pageSize int) ([]models.Message, error)
	Count(hackathonID uint, roomType models.RoomType) (int64, error)
}

type messageRepository struct {
	db *storage.PostgresDB
}

func NewMessageRepository(db *storage.PostgresDB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

func (r *messageRepository) FindByID(id uint) (*models.Message, error) {
	var message models.Message
	err := r.db.Preload("User").First(&message, id).Error
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// FindPage 取出指定頁最新的 pageSize 筆訊息，依時間由新到舊排序。
// 呼叫端負責把結果反轉成該頁內由舊到新的順序。
func (r *messageRepository) FindPage(hackathonID uint, roomType models.RoomType, page, pageSize int) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Preload("User").
		Where("hackathon_id = ? AND room_type = ?", hackathonID, roomType).
		Order("created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&messages).Error
	return messages, err
}

func (r *messageRepository) Count(hackathonID uint, roomType models.RoomType) (int64, error) {
	var count int64
	err := r.db.Model(&models.Message{}).
		Where("hackathon_id = ? AND room_type = ?", hackathonID, roomType).
		Count(&count).Error
	return count, err
}
