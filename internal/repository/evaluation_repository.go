package repository

import (
	"hackathon_web/internal/models"
	"hackathon_web/internal/storage"
)

type EvaluationRepository interface {
	Create(evaluation *models.Evaluation) error
	Exists(submissionID, judgeID uint) (bool, error)
	FindByHackathonID(hackathonID uint) ([]models.Evaluation, error)
}

type evaluationRepository struct {
	db *storage.PostgresDB
}

func NewEvaluationRepository(db *storage.PostgresDB) EvaluationRepository {
	return &evaluationRepository{db: db}
}

// Create 寫入評分與其分項分數。
// (submission_id, judge_id) 重複時由資料庫唯一索引擋下，
// 透過 TranslateError 以 gorm.ErrDuplicatedKey 回傳。
func (r *evaluationRepository) Create(evaluation *models.Evaluation) error {
	return r.db.Create(evaluation).Error
}

// Exists 檢查該評審是否已評過此作品（僅作快速失敗用，非正確性保證）
func (r *evaluationRepository) Exists(submissionID, judgeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Evaluation{}).
		Where("submission_id = ? AND judge_id = ?", submissionID, judgeID).
		Count(&count).Error
	return count > 0, err
}

// FindByHackathonID 查詢活動的所有評分，帶上分項分數
func (r *evaluationRepository) FindByHackathonID(hackathonID uint) ([]models.Evaluation, error) {
	var evaluations []models.Evaluation
	err := r.db.Preload("Scores").
		Where("hackathon_id = ?", hackathonID).
		Order("created_at ASC").
		Find(&evaluations).Error
	return evaluations, err
}
