package repository

import (
	"hackathon_web/internal/models"
	"hackathon_web/internal/storage"
)

type AnnouncementRepository interface {
	Create(announcement *models.Announcement) error
	CreateFAQ(faq *models.FAQ) error
}

type announcementRepository struct {
	db *storage.PostgresDB
}

func NewAnnouncementRepository(db *storage.PostgresDB) AnnouncementRepository {
	return &announcementRepository{db: db}
}

func (r *announcementRepository) Create(announcement *models.Announcement) error {
	return r.db.Create(announcement).Error
}

func (r *announcementRepository) CreateFAQ(faq *models.FAQ) error {
	return r.db.Create(faq).Error
}
