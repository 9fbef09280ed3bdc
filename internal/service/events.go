package service

import (
	"log"

	"hackathon_web/internal/models"
	"hackathon_web/internal/repository"
)

// Publisher 是廣播路由的注入點。
// HTTP 層透過它把域事件送進實時層，避免依賴一個全域的 broadcaster。
type Publisher interface {
	Publish(event string, room RoomKey, payload interface{})
}

// EventService 負責把域事件對應到目標房間並發布。
// 事件只送給當下在房間裡的連線，沒有成員就靜默略過，絕不排隊重送。
type EventService struct {
	publisher Publisher
	teams     repository.TeamRepository
}

func NewEventService(publisher Publisher, teams repository.TeamRepository) *EventService {
	return &EventService{
		publisher: publisher,
		teams:     teams,
	}
}

// AnnouncementCreated 公告發布，通知活動公開房間
func (s *EventService) AnnouncementCreated(announcement *models.Announcement) {
	s.publisher.Publish("new-announcement", HackathonRoom(announcement.HackathonID), announcement)
}

// FAQCreated FAQ 新增，通知活動公開房間
func (s *EventService) FAQCreated(faq *models.FAQ) {
	s.publisher.Publish("new-faq", HackathonRoom(faq.HackathonID), faq)
}

// QuestionAsked 有人提問，通知被提問的主辦方
func (s *EventService) QuestionAsked(question *models.Question) {
	s.publisher.Publish("new-question", OrganizerRoom(question.OrganizerID), question)
}

// QuestionAnswered 問題被回覆，通知提問者本人
func (s *EventService) QuestionAnswered(question *models.Question) {
	s.publisher.Publish("question-answered", UserRoom(question.AskerID), question)
}

// SubmissionCreated 新作品提交，同時通知活動公開房間和評審房間
func (s *EventService) SubmissionCreated(submission *models.Submission) {
	s.publisher.Publish("submission-created", HackathonRoom(submission.HackathonID), submission)
	s.publisher.Publish("new-submission-notification", JudgesRoom(submission.HackathonID), submission)
}

// TeamRegistered 新隊伍報名，通知活動公開房間
func (s *EventService) TeamRegistered(team *models.Team) {
	s.publisher.Publish("team-registered", HackathonRoom(team.HackathonID), team)
}

// EvaluationAdded 新增評分：通知活動公開房間、作品隊伍的每位成員，
// 最後向活動房間發出排行榜需要刷新的信號。
// 成員查詢失敗只記錄日誌，已發出的通知不回滾。
func (s *EventService) EvaluationAdded(evaluation *models.Evaluation, teamID uint) {
	s.publisher.Publish("evaluation-added", HackathonRoom(evaluation.HackathonID), evaluation)

	memberIDs, err := s.teams.MemberIDs(teamID)
	if err != nil {
		log.Printf("evaluation notification member lookup failed: %v", err)
	}
	for _, memberID := range memberIDs {
		s.publisher.Publish("evaluation-notification", UserRoom(memberID), evaluation)
	}

	s.publisher.Publish("leaderboard-update-needed", HackathonRoom(evaluation.HackathonID), map[string]interface{}{
		"hackathonId": evaluation.HackathonID,
	})
}
