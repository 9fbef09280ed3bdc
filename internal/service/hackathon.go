package service

import (
	"errors"

	"gorm.io/gorm"

	"hackathon_web/internal/apperrors"
	"hackathon_web/internal/models"
	"hackathon_web/internal/repository"
)

// HackathonService 處理活動本身與公告、FAQ、提問等附屬內容。
// 所有寫入都遵守先持久化、成功後才通知的順序。
type HackathonService struct {
	hackathons    repository.HackathonRepository
	announcements repository.AnnouncementRepository
	questions     repository.QuestionRepository
	events        *EventService
}

func NewHackathonService(hackathons repository.HackathonRepository, announcements repository.AnnouncementRepository, questions repository.QuestionRepository, events *EventService) *HackathonService {
	return &HackathonService{
		hackathons:    hackathons,
		announcements: announcements,
		questions:     questions,
		events:        events,
	}
}

func (s *HackathonService) CreateHackathon(hackathon *models.Hackathon) error {
	return s.hackathons.Create(hackathon)
}

func (s *HackathonService) GetHackathon(id uint) (*models.Hackathon, error) {
	hackathon, err := s.hackathons.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return hackathon, nil
}

func (s *HackathonService) ListHackathons() ([]models.Hackathon, error) {
	return s.hackathons.FindAll()
}

// CreateAnnouncement 持久化公告並通知活動房間
func (s *HackathonService) CreateAnnouncement(announcement *models.Announcement) error {
	if err := s.announcements.Create(announcement); err != nil {
		return apperrors.ErrStoreUnavailable
	}
	s.events.AnnouncementCreated(announcement)
	return nil
}

// CreateFAQ 持久化 FAQ 並通知活動房間
func (s *HackathonService) CreateFAQ(faq *models.FAQ) error {
	if err := s.announcements.CreateFAQ(faq); err != nil {
		return apperrors.ErrStoreUnavailable
	}
	s.events.FAQCreated(faq)
	return nil
}

// AskQuestion 記錄提問並通知被提問的主辦方。
// 未指定主辦方時提問會送給活動的主辦人。
func (s *HackathonService) AskQuestion(question *models.Question) error {
	if question.OrganizerID == 0 {
		hackathon, err := s.GetHackathon(question.HackathonID)
		if err != nil {
			return err
		}
		question.OrganizerID = hackathon.OrganizerID
	}

	if err := s.questions.Create(question); err != nil {
		return apperrors.ErrStoreUnavailable
	}
	s.events.QuestionAsked(question)
	return nil
}

// AnswerQuestion 寫入回覆並通知提問者本人
func (s *HackathonService) AnswerQuestion(questionID uint, answer string) (*models.Question, error) {
	question, err := s.questions.FindByID(questionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	} else if err != nil {
		return nil, err
	}

	question.Answer = answer
	question.Answered = true
	if err := s.questions.Update(question); err != nil {
		return nil, apperrors.ErrStoreUnavailable
	}

	s.events.QuestionAnswered(question)
	return question, nil
}
