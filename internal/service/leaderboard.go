package service

import (
	"math"
	"sort"

	"hackathon_web/internal/models"
	"hackathon_web/internal/repository"
)

// LeaderboardService 每次查詢都從持久化的評分完整重算排行榜，
// 不做任何快取，因此也沒有過期狀態需要維護。
type LeaderboardService struct {
	submissions repository.SubmissionRepository
	evaluations repository.EvaluationRepository
}

func NewLeaderboardService(submissions repository.SubmissionRepository, evaluations repository.EvaluationRepository) *LeaderboardService {
	return &LeaderboardService{
		submissions: submissions,
		evaluations: evaluations,
	}
}

// Compute 計算指定活動的排行榜：
//  1. 載入活動的所有作品（帶隊伍投影）和所有評分
//  2. 按作品分組評分
//  3. 每筆評分取各項分數的平均，再對這些平均取平均，
//     四捨五入到小數點後兩位，得到作品的 avgScore
//  4. 依 avgScore 由高到低穩定排序，同分維持輸入順序
//  5. rank 為排序後的 1-based 位置，同分也各自拿到連續不同的名次
//
// 沒有任何評分的作品 avgScore=0、totalEvaluations=0，會穩定排在最後。
func (s *LeaderboardService) Compute(hackathonID uint) ([]models.LeaderboardEntry, error) {
	submissions, err := s.submissions.FindByHackathonID(hackathonID)
	if err != nil {
		return nil, err
	}

	evaluations, err := s.evaluations.FindByHackathonID(hackathonID)
	if err != nil {
		return nil, err
	}

	bySubmission := make(map[uint][]models.Evaluation)
	for _, evaluation := range evaluations {
		bySubmission[evaluation.SubmissionID] = append(bySubmission[evaluation.SubmissionID], evaluation)
	}

	entries := make([]models.LeaderboardEntry, 0, len(submissions))
	for _, submission := range submissions {
		entry := models.LeaderboardEntry{
			Submission: submission,
			Team:       submission.Team,
		}

		if evals := bySubmission[submission.ID]; len(evals) > 0 {
			var sum float64
			for _, evaluation := range evals {
				sum += evaluationAverage(evaluation)
			}
			entry.AvgScore = round2(sum / float64(len(evals)))
			entry.TotalEvaluations = len(evals)
		}

		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].AvgScore > entries[j].AvgScore
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries, nil
}

// evaluationAverage 計算單筆評分各項分數的平均
func evaluationAverage(evaluation models.Evaluation) float64 {
	if len(evaluation.Scores) == 0 {
		return 0
	}
	var sum float64
	for _, score := range evaluation.Scores {
		sum += score.Score
	}
	return sum / float64(len(evaluation.Scores))
}

// round2 四捨五入到小數點後兩位
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
