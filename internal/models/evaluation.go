package models

import (
	"gorm.io/gorm"
)

// Evaluation 表示一位評審對一件作品的評分。
// (submission_id, judge_id) 上的複合唯一索引保證同一位評審
// 對同一件作品只能留下一筆評分，正確性由資料庫約束而非前置檢查保證。
type Evaluation struct {
	gorm.Model
	HackathonID  uint              `gorm:"index;not null" json:"hackathonId"`
	SubmissionID uint              `gorm:"not null;uniqueIndex:idx_evaluations_submission_judge" json:"submissionId"`
	JudgeID      uint              `gorm:"not null;uniqueIndex:idx_evaluations_submission_judge" json:"judgeId"`
	Feedback     string            `gorm:"type:text" json:"feedback,omitempty"`
	Scores       []EvaluationScore `gorm:"foreignKey:EvaluationID;constraint:OnDelete:CASCADE" json:"scores"`
}

// EvaluationScore 表示單一評分項目的分數，以結構化欄位而非 JSON 文字存放
type EvaluationScore struct {
	gorm.Model
	EvaluationID uint    `gorm:"index;not null" json:"-"`
	CriterionID  uint    `gorm:"not null" json:"criterionId"`
	Score        float64 `gorm:"not null" json:"score"`
}
