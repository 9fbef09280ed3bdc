package service

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"hackathon_web/internal/apperrors"
	"hackathon_web/internal/models"
	"hackathon_web/internal/repository"
)

// ScoreInput 表示一個評分項目的輸入
type ScoreInput struct {
	CriterionID uint    `json:"criterionId" binding:"required"`
	Score       float64 `json:"score"`
}

// EvaluationService 負責評分的建立與唯一性保證
type EvaluationService struct {
	evaluations repository.EvaluationRepository
	submissions repository.SubmissionRepository
	events      *EventService
}

func NewEvaluationService(evaluations repository.EvaluationRepository, submissions repository.SubmissionRepository, events *EventService) *EvaluationService {
	return &EvaluationService{
		evaluations: evaluations,
		submissions: submissions,
		events:      events,
	}
}

// Create 建立一筆評分並發出對應的通知。
// 先以查詢快速擋下重複評分，但併發下前置檢查有競態窗口，
// 真正的保證來自 (submission_id, judge_id) 的唯一索引：
// 寫入時撞到約束一樣回傳 ErrAlreadyEvaluated。
func (s *EvaluationService) Create(hackathonID, submissionID, judgeID uint, scores []ScoreInput, feedback string) (*models.Evaluation, error) {
	if len(scores) == 0 {
		return nil, apperrors.ErrValidation
	}

	submission, err := s.submissions.FindByID(submissionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	} else if err != nil {
		log.Printf("submission lookup failed: %v", err)
		return nil, apperrors.ErrStoreUnavailable
	}
	if submission.HackathonID != hackathonID {
		return nil, apperrors.ErrValidation
	}

	exists, err := s.evaluations.Exists(submissionID, judgeID)
	if err != nil {
		log.Printf("evaluation existence check failed: %v", err)
		return nil, apperrors.ErrStoreUnavailable
	}
	if exists {
		return nil, apperrors.ErrAlreadyEvaluated
	}

	evaluation := &models.Evaluation{
		HackathonID:  hackathonID,
		SubmissionID: submissionID,
		JudgeID:      judgeID,
		Feedback:     feedback,
	}
	for _, input := range scores {
		evaluation.Scores = append(evaluation.Scores, models.EvaluationScore{
			CriterionID: input.CriterionID,
			Score:       input.Score,
		})
	}

	if err := s.evaluations.Create(evaluation); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrAlreadyEvaluated
		}
		log.Printf("evaluation store failed: %v", err)
		return nil, apperrors.ErrStoreUnavailable
	}

	// 廣播只在寫入成功後進行
	s.events.EvaluationAdded(evaluation, submission.TeamID)
	return evaluation, nil
}
