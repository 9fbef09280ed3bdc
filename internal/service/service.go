package service

import (
	"hackathon_web/internal/repository"
)

type Services struct {
	User        *UserService
	Hackathon   *HackathonService
	Team        *TeamService
	Message     *MessageService
	Evaluation  *EvaluationService
	Leaderboard *LeaderboardService
	Event       *EventService
	Realtime    *RealtimeManager
}

func NewServices(repos *repository.Repositories) *Services {
	messageService := NewMessageService(repos.Message)
	realtime := NewRealtimeManager(messageService, repos.Team)
	eventService := NewEventService(realtime, repos.Team)

	return &Services{
		User:        NewUserService(repos.User),
		Hackathon:   NewHackathonService(repos.Hackathon, repos.Announcement, repos.Question, eventService),
		Team:        NewTeamService(repos.Team, repos.Submission, repos.User, eventService),
		Message:     messageService,
		Evaluation:  NewEvaluationService(repos.Evaluation, repos.Submission, eventService),
		Leaderboard: NewLeaderboardService(repos.Submission, repos.Evaluation),
		Event:       eventService,
		Realtime:    realtime,
	}
}
