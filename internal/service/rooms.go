package service

import (
	"hackathon_web/internal/apperrors"
	"hackathon_web/internal/models"
)

// RoomType 定義廣播房間的類型
type RoomType string

const (
	RoomHackathon RoomType = "hackathon" // 活動公開房間，任何已認證使用者可加入
	RoomJudges    RoomType = "judges"    // 評審專用房間，以 hackathonId 為範圍
	RoomUser      RoomType = "user"      // 個人房間，只能加入自己的
	RoomOrganizer RoomType = "organizer" // 主辦方個人房間
)

// RoomKey 唯一標識一個廣播房間。
// 房間只存在於記憶體中，成員是當下在線的連線，不做任何持久化。
type RoomKey struct {
	Type    RoomType
	ScopeID uint
}

func HackathonRoom(hackathonID uint) RoomKey {
	return RoomKey{Type: RoomHackathon, ScopeID: hackathonID}
}

func JudgesRoom(hackathonID uint) RoomKey {
	return RoomKey{Type: RoomJudges, ScopeID: hackathonID}
}

func UserRoom(userID uint) RoomKey {
	return RoomKey{Type: RoomUser, ScopeID: userID}
}

func OrganizerRoom(organizerID uint) RoomKey {
	return RoomKey{Type: RoomOrganizer, ScopeID: organizerID}
}

// authorizeJoin 實作房間的角色授權規則：
//   - hackathon 房間對所有已認證使用者開放
//   - judges 房間只有評審能加入
//   - organizer 房間只有主辦方能加入，且只能加入自己的
//   - user 房間任何人可加入，但只能加入自己的
func authorizeJoin(client *Client, key RoomKey) error {
	switch key.Type {
	case RoomHackathon:
		return nil
	case RoomJudges:
		if client.Role != models.RoleJudge {
			return apperrors.ErrAuthorizationDenied
		}
		return nil
	case RoomOrganizer:
		if client.Role != models.RoleOrganizer || key.ScopeID != client.UserID {
			return apperrors.ErrAuthorizationDenied
		}
		return nil
	case RoomUser:
		if key.ScopeID != client.UserID {
			return apperrors.ErrAuthorizationDenied
		}
		return nil
	}
	return apperrors.ErrValidation
}

// chatRoom 把聊天室類型對應到廣播房間：
// 評審聊天走 judges 房間，其餘都走活動公開房間
func chatRoom(roomType models.RoomType, hackathonID uint) RoomKey {
	if roomType == models.RoomTypeJudge {
		return JudgesRoom(hackathonID)
	}
	return HackathonRoom(hackathonID)
}
