package models

// LeaderboardEntry 表示排行榜中的一列。
// 這個結構只在查詢時計算，從不落地，也不做任何快取。
type LeaderboardEntry struct {
	Submission       Submission `json:"submission"`
	Team             Team       `json:"team"`
	AvgScore         float64    `json:"avgScore"`
	TotalEvaluations int        `json:"totalEvaluations"`
	Rank             int        `json:"rank"`
}
