package models

import (
	"gorm.io/gorm"
)

// Team 表示一支參賽隊伍，成員透過 team_members 關聯表維護
type Team struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	HackathonID uint   `gorm:"index;not null" json:"hackathonId"`
	Members     []User `gorm:"many2many:team_members" json:"members"`
}

// Submission 表示隊伍提交的作品
type Submission struct {
	gorm.Model
	HackathonID uint   `gorm:"index;not null" json:"hackathonId"`
	TeamID      uint   `gorm:"index;not null" json:"teamId"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	RepoURL     string `json:"repoUrl"`
	DemoURL     string `json:"demoUrl"`
	Team        Team   `gorm:"foreignKey:TeamID" json:"team"`
}
