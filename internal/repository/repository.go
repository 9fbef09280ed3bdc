package repository

import "hackathon_web/internal/storage"

type Repositories struct {
	User         UserRepository
	Hackathon    HackathonRepository
	Team         TeamRepository
	Submission   SubmissionRepository
	Message      MessageRepository
	Evaluation   EvaluationRepository
	Announcement AnnouncementRepository
	Question     QuestionRepository
}

func NewRepositories(db *storage.PostgresDB) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Hackathon:    NewHackathonRepository(db),
		Team:         NewTeamRepository(db),
		Submission:   NewSubmissionRepository(db),
		Message:      NewMessageRepository(db),
		Evaluation:   NewEvaluationRepository(db),
		Announcement: NewAnnouncementRepository(db),
		Question:     NewQuestionRepository(db),
	}
}
