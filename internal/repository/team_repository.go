package repository

import (
	"hackathon_web/internal/models"
	"hackathon_web/internal/storage"
)

type TeamRepository interface {
	Create(team *models.Team) error
	FindByID(id uint) (*models.Team, error)
	IsMember(teamID, userID uint) (bool, error)
	MemberIDs(teamID uint) ([]uint, error)
}

type teamRepository struct {
	db *storage.PostgresDB
}

func NewTeamRepository(db *storage.PostgresDB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

func (r *teamRepository) FindByID(id uint) (*models.Team, error) {
	var team models.Team
	err := r.db.Preload("Members").First(&team, id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// IsMember 檢查使用者是否為隊伍成員
func (r *teamRepository) IsMember(teamID, userID uint) (bool, error) {
	var count int64
	err := r.db.Table("team_members").
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Count(&count).Error
	return count > 0, err
}

// MemberIDs 查詢隊伍所有成員的使用者 ID
func (r *teamRepository) MemberIDs(teamID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Table("team_members").
		Where("team_id = ?", teamID).
		Pluck("user_id", &ids).Error
	return ids, err
}
