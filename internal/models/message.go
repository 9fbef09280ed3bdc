package models

import (
	"gorm.io/gorm"
)

// Message 表示一則持久化的聊天訊息，建立後不可修改
type Message struct {
	gorm.Model
	HackathonID uint     `gorm:"index;not null" json:"hackathonId"`
	UserID      uint     `gorm:"not null" json:"userId"`
	RoomType    RoomType `gorm:"type:varchar(20);not null" json:"roomType"`
	Content     string   `gorm:"type:text;not null" json:"text"`
	User        User     `gorm:"foreignKey:UserID" json:"user"` // 發送者投影（id、姓名、email、頭像）
}

// RoomType 定義訊息所屬聊天室的類型
type RoomType string

const (
	RoomTypeJudge     RoomType = "judge"
	RoomTypeGeneral   RoomType = "general"
	RoomTypeTeam      RoomType = "team"
	RoomTypeOrganizer RoomType = "organizer"
)

// ValidRoomType 檢查聊天室類型字串是否合法
func ValidRoomType(roomType string) bool {
	switch RoomType(roomType) {
	case RoomTypeJudge, RoomTypeGeneral, RoomTypeTeam, RoomTypeOrganizer:
		return true
	}
	return false
}
