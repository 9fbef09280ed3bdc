package models

import (
	"time"

	"gorm.io/gorm"
)

// Hackathon 表示一場黑客松活動
type Hackathon struct {
	gorm.Model
	Title        string    `gorm:"not null" json:"title"`
	Organization string    `json:"org"`
	Description  string    `gorm:"type:text" json:"description"`
	OrganizerID  uint      `gorm:"index" json:"organizerId"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
}

// Announcement 表示主辦方對活動發布的公告
type Announcement struct {
	gorm.Model
	HackathonID uint   `gorm:"index;not null" json:"hackathonId"`
	AuthorID    uint   `json:"authorId"`
	Title       string `gorm:"not null" json:"title"`
	Content     string `gorm:"type:text" json:"content"`
}

// FAQ 表示活動的常見問題條目
type FAQ struct {
	gorm.Model
	HackathonID uint   `gorm:"index;not null" json:"hackathonId"`
	Question    string `gorm:"not null" json:"question"`
	Answer      string `gorm:"type:text" json:"answer"`
}

// Question 表示參賽者向主辦方提出的問題
type Question struct {
	gorm.Model
	HackathonID uint   `gorm:"index;not null" json:"hackathonId"`
	AskerID     uint   `gorm:"not null" json:"askerId"`     // 提問者
	OrganizerID uint   `gorm:"not null" json:"organizerId"` // 被提問的主辦方
	Content     string `gorm:"type:text;not null" json:"content"`
	Answer      string `gorm:"type:text" json:"answer"`
	Answered    bool   `json:"answered"`
}
