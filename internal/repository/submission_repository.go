package repository

import (
	"hackathon_web/internal/models"
	"hackathon_web/internal/storage"
)

type SubmissionRepository interface {
	Create(submission *models.Submission) error
	FindByID(id uint) (*models.Submission, error)
	FindByHackathonID(hackathonID uint) ([]models.Submission, error)
}

type submissionRepository struct {
	db *storage.PostgresDB
}

func NewSubmissionRepository(db *storage.PostgresDB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(submission *models.Submission) error {
	return r.db.Create(submission).Error
}

func (r *submissionRepository) FindByID(id uint) (*models.Submission, error) {
	var submission models.Submission
	err := r.db.Preload("Team").First(&submission, id).Error
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

// FindByHackathonID 查詢活動的所有作品，帶上隊伍投影，依建立時間排序
func (r *submissionRepository) FindByHackathonID(hackathonID uint) ([]models.Submission, error) {
	var submissions []models.Submission
	err := r.db.Preload("Team").
		Where("hackathon_id = ?", hackathonID).
		Order("created_at ASC").
		Find(&submissions).Error
	return submissions, err
}
