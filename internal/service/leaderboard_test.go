package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hackathon_web/internal/models"
)

func newLeaderboardFixture() (*fakeSubmissionRepo, *fakeEvaluationRepo, *LeaderboardService) {
	submissions := &fakeSubmissionRepo{}
	evaluations := &fakeEvaluationRepo{}
	return submissions, evaluations, NewLeaderboardService(submissions, evaluations)
}

func addSubmission(repo *fakeSubmissionRepo, hackathonID uint, title string) uint {
	submission := &models.Submission{HackathonID: hackathonID, TeamID: 1, Title: title}
	_ = repo.Create(submission)
	return submission.ID
}

func addEvaluation(repo *fakeEvaluationRepo, hackathonID, submissionID, judgeID uint, scores ...float64) {
	evaluation := models.Evaluation{
		HackathonID:  hackathonID,
		SubmissionID: submissionID,
		JudgeID:      judgeID,
	}
	for i, score := range scores {
		evaluation.Scores = append(evaluation.Scores, models.EvaluationScore{
			CriterionID: uint(i + 1),
			Score:       score,
		})
	}
	_ = repo.Create(&evaluation)
}

func TestLeaderboardAveraging(t *testing.T) {
	submissions, evaluations, svc := newLeaderboardFixture()

	submissionID := addSubmission(submissions, 1, "專題A")
	// J1 各項平均 8.50，J2 各項平均 8.25
	addEvaluation(evaluations, 1, submissionID, 10, 8.0, 9.0)
	addEvaluation(evaluations, 1, submissionID, 11, 8.5, 8.0)

	entries, err := svc.Compute(1)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	// round((8.50+8.25)/2, 2) = 8.38
	assert.Equal(t, 8.38, entries[0].AvgScore)
	assert.Equal(t, 2, entries[0].TotalEvaluations)
	assert.Equal(t, 1, entries[0].Rank)
}

func TestLeaderboardSortedDescending(t *testing.T) {
	submissions, evaluations, svc := newLeaderboardFixture()

	low := addSubmission(submissions, 1, "低分")
	high := addSubmission(submissions, 1, "高分")
	mid := addSubmission(submissions, 1, "中分")

	addEvaluation(evaluations, 1, low, 10, 5.0)
	addEvaluation(evaluations, 1, high, 10, 9.0)
	addEvaluation(evaluations, 1, mid, 10, 7.0)

	entries, err := svc.Compute(1)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, high, entries[0].Submission.ID)
	assert.Equal(t, mid, entries[1].Submission.ID)
	assert.Equal(t, low, entries[2].Submission.ID)
	for i, entry := range entries {
		assert.Equal(t, i+1, entry.Rank)
	}
}

func TestLeaderboardTiedScoresGetDistinctRanks(t *testing.T) {
	submissions, evaluations, svc := newLeaderboardFixture()

	first := addSubmission(submissions, 1, "同分一")
	second := addSubmission(submissions, 1, "同分二")

	// 兩件作品 avgScore 完全相同
	addEvaluation(evaluations, 1, first, 10, 8.0, 9.0)
	addEvaluation(evaluations, 1, first, 11, 8.5, 8.0)
	addEvaluation(evaluations, 1, second, 10, 8.0, 9.0)
	addEvaluation(evaluations, 1, second, 11, 8.5, 8.0)

	entries, err := svc.Compute(1)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, entries[0].AvgScore, entries[1].AvgScore)
	// 同分不共享名次，依輸入順序拿到連續的名次
	assert.Equal(t, first, entries[0].Submission.ID)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, second, entries[1].Submission.ID)
	assert.Equal(t, 2, entries[1].Rank)
}

func TestLeaderboardZeroEvaluations(t *testing.T) {
	submissions, evaluations, svc := newLeaderboardFixture()

	scored := addSubmission(submissions, 1, "有評分")
	unscored := addSubmission(submissions, 1, "沒評分")
	addEvaluation(evaluations, 1, scored, 10, 6.0)

	entries, err := svc.Compute(1)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// 沒有評分的作品 avgScore 和 totalEvaluations 都是 0，穩定排在最後
	assert.Equal(t, unscored, entries[1].Submission.ID)
	assert.Equal(t, 0.0, entries[1].AvgScore)
	assert.Equal(t, 0, entries[1].TotalEvaluations)
	assert.Equal(t, 2, entries[1].Rank)
}

func TestLeaderboardEmptyHackathon(t *testing.T) {
	_, _, svc := newLeaderboardFixture()

	entries, err := svc.Compute(42)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRound2HalfUp(t *testing.T) {
	assert.Equal(t, 8.38, round2(8.375))
	assert.Equal(t, 8.37, round2(8.374))
	assert.Equal(t, 7.0, round2(7.0))
}
