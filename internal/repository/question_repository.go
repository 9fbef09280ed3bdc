package repository

import (
	"hackathon_web/internal/models"
	"hackathon_web/internal/storage"
)

type QuestionRepository interface {
	Create(question *models.Question) error
	FindByID(id uint) (*models.Question, error)
	Update(question *models.Question) error
}

type questionRepository struct {
	db *storage.PostgresDB
}

func NewQuestionRepository(db *storage.PostgresDB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *models.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) FindByID(id uint) (*models.Question, error) {
	var question models.Question
	err := r.db.First(&question, id).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) Update(question *models.Question) error {
	return r.db.Save(question).Error
}
