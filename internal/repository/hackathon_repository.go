package repository

import (
	"hackathon_web/internal/models"
	"hackathon_web/internal/storage"
)

type HackathonRepository interface {
	Create(hackathon *models.Hackathon) error
	FindByID(id uint) (*models.Hackathon, error)
	FindAll() ([]models.Hackathon, error) // 簡單的列表查詢
}

type hackathonRepository struct {
	db *storage.PostgresDB
}

func NewHackathonRepository(db *storage.PostgresDB) HackathonRepository {
	return &hackathonRepository{db: db}
}

func (r *hackathonRepository) Create(hackathon *models.Hackathon) error {
	return r.db.Create(hackathon).Error
}

func (r *hackathonRepository) FindByID(id uint) (*models.Hackathon, error) {
	var hackathon models.Hackathon
	err := r.db.First(&hackathon, id).Error
	if err != nil {
		return nil, err
	}
	return &hackathon, nil
}

func (r *hackathonRepository) FindAll() ([]models.Hackathon, error) {
	var hackathons []models.Hackathon
	err := r.db.Order("created_at DESC").Find(&hackathons).Error
	return hackathons, err
}
