package service

import (
	"errors"

	"gorm.io/gorm"

	"hackathon_web/internal/apperrors"
	"hackathon_web/internal/models"
	"hackathon_web/internal/repository"
)

// TeamService 處理隊伍報名與作品提交
type TeamService struct {
	teams       repository.TeamRepository
	submissions repository.SubmissionRepository
	users       repository.UserRepository
	events      *EventService
}

func NewTeamService(teams repository.TeamRepository, submissions repository.SubmissionRepository, users repository.UserRepository, events *EventService) *TeamService {
	return &TeamService{
		teams:       teams,
		submissions: submissions,
		users:       users,
		events:      events,
	}
}

// RegisterTeam 建立隊伍並通知活動房間，成員必須是已存在的使用者
func (s *TeamService) RegisterTeam(hackathonID uint, name string, memberIDs []uint) (*models.Team, error) {
	if name == "" {
		return nil, apperrors.ErrValidation
	}

	team := &models.Team{
		Name:        name,
		HackathonID: hackathonID,
	}
	for _, memberID := range memberIDs {
		member, err := s.users.FindByID(memberID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUnknownUser
		} else if err != nil {
			return nil, apperrors.ErrStoreUnavailable
		}
		team.Members = append(team.Members, *member)
	}

	if err := s.teams.Create(team); err != nil {
		return nil, apperrors.ErrStoreUnavailable
	}

	s.events.TeamRegistered(team)
	return team, nil
}

// CreateSubmission 建立作品並通知活動房間與評審房間，
// 提交者必須是該隊伍的成員
func (s *TeamService) CreateSubmission(submission *models.Submission, submitterID uint) (*models.Submission, error) {
	if submission.Title == "" || submission.TeamID == 0 {
		return nil, apperrors.ErrValidation
	}

	ok, err := s.teams.IsMember(submission.TeamID, submitterID)
	if err != nil {
		return nil, apperrors.ErrStoreUnavailable
	}
	if !ok {
		return nil, apperrors.ErrAuthorizationDenied
	}

	if err := s.submissions.Create(submission); err != nil {
		return nil, apperrors.ErrStoreUnavailable
	}

	// 帶上隊伍投影後再廣播
	stored, err := s.submissions.FindByID(submission.ID)
	if err != nil {
		stored = submission
	}

	s.events.SubmissionCreated(stored)
	return stored, nil
}
