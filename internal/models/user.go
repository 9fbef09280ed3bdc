package models

import (
	"gorm.io/gorm"
)

// User 表示系統中的使用者，對應外部帳號服務的使用者紀錄
type User struct {
	gorm.Model          // 內嵌 gorm.Model，提供 ID、CreatedAt、UpdatedAt 和 DeletedAt 字段
	Name       string   `gorm:"not null" json:"name"`
	Email      string   `gorm:"uniqueIndex;not null" json:"email"` // 電子郵件，必須唯一
	Password   string   `gorm:"not null" json:"-"`                 // 密碼，json 序列化時會被忽略
	Avatar     string   `json:"avatar"`
	Role       UserRole `gorm:"not null" json:"role"` // 使用者角色
}

// UserRole 定義使用者角色的類型
type UserRole string

const (
	RoleParticipant UserRole = "participant" // 參賽者
	RoleOrganizer   UserRole = "organizer"   // 主辦方
	RoleJudge       UserRole = "judge"       // 評審
	RoleMentor      UserRole = "mentor"      // 導師
)

// ValidRole 檢查角色字串是否為已知角色
func ValidRole(role string) bool {
	switch UserRole(role) {
	case RoleParticipant, RoleOrganizer, RoleJudge, RoleMentor:
		return true
	}
	return false
}
