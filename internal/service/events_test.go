package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hackathon_web/internal/models"
)

func TestAnnouncementAndFAQTargetHackathonRoom(t *testing.T) {
	publisher := &recordingPublisher{}
	events := NewEventService(publisher, &fakeTeamRepo{})

	events.AnnouncementCreated(&models.Announcement{HackathonID: 1, Title: "開幕"})
	events.FAQCreated(&models.FAQ{HackathonID: 1, Question: "怎麼報名？"})

	require.Len(t, publisher.published, 2)
	assert.Equal(t, "new-announcement", publisher.published[0].Event)
	assert.Equal(t, HackathonRoom(1), publisher.published[0].Room)
	assert.Equal(t, "new-faq", publisher.published[1].Event)
	assert.Equal(t, HackathonRoom(1), publisher.published[1].Room)
}

func TestQuestionRouting(t *testing.T) {
	publisher := &recordingPublisher{}
	events := NewEventService(publisher, &fakeTeamRepo{})

	question := &models.Question{HackathonID: 1, AskerID: 5, OrganizerID: 9, Content: "場地在哪？"}

	// 提問送給被提問的主辦方
	events.QuestionAsked(question)
	// 回覆送給提問者本人
	events.QuestionAnswered(question)

	require.Len(t, publisher.published, 2)
	assert.Equal(t, "new-question", publisher.published[0].Event)
	assert.Equal(t, OrganizerRoom(9), publisher.published[0].Room)
	assert.Equal(t, "question-answered", publisher.published[1].Event)
	assert.Equal(t, UserRoom(5), publisher.published[1].Room)
}

func TestSubmissionCreatedTargetsBothRooms(t *testing.T) {
	publisher := &recordingPublisher{}
	events := NewEventService(publisher, &fakeTeamRepo{})

	events.SubmissionCreated(&models.Submission{HackathonID: 2, TeamID: 3, Title: "專題"})

	require.Len(t, publisher.published, 2)
	assert.Equal(t, "submission-created", publisher.published[0].Event)
	assert.Equal(t, HackathonRoom(2), publisher.published[0].Room)
	assert.Equal(t, "new-submission-notification", publisher.published[1].Event)
	assert.Equal(t, JudgesRoom(2), publisher.published[1].Room)
}

func TestTeamRegisteredTargetsHackathonRoom(t *testing.T) {
	publisher := &recordingPublisher{}
	events := NewEventService(publisher, &fakeTeamRepo{})

	events.TeamRegistered(&models.Team{Name: "火箭隊", HackathonID: 4})

	require.Len(t, publisher.published, 1)
	assert.Equal(t, "team-registered", publisher.published[0].Event)
	assert.Equal(t, HackathonRoom(4), publisher.published[0].Room)
}

func TestEvaluationAddedFanout(t *testing.T) {
	publisher := &recordingPublisher{}
	events := NewEventService(publisher, &fakeTeamRepo{members: map[uint][]uint{3: {7, 8}}})

	events.EvaluationAdded(&models.Evaluation{HackathonID: 1, SubmissionID: 2, JudgeID: 10}, 3)

	require.Len(t, publisher.published, 4)
	assert.Equal(t, "evaluation-added", publisher.published[0].Event)
	assert.Equal(t, HackathonRoom(1), publisher.published[0].Room)
	assert.Equal(t, "evaluation-notification", publisher.published[1].Event)
	assert.Equal(t, UserRoom(7), publisher.published[1].Room)
	assert.Equal(t, "evaluation-notification", publisher.published[2].Event)
	assert.Equal(t, UserRoom(8), publisher.published[2].Room)
	assert.Equal(t, "leaderboard-update-needed", publisher.published[3].Event)
	assert.Equal(t, HackathonRoom(1), publisher.published[3].Room)
}

func TestEvaluationAddedMemberLookupFailure(t *testing.T) {
	publisher := &recordingPublisher{}
	events := NewEventService(publisher, &fakeTeamRepo{err: assert.AnError})

	// 成員查詢失敗時仍然送出活動房間通知與排行榜刷新信號
	events.EvaluationAdded(&models.Evaluation{HackathonID: 1, SubmissionID: 2, JudgeID: 10}, 3)

	require.Len(t, publisher.published, 2)
	assert.Equal(t, "evaluation-added", publisher.published[0].Event)
	assert.Equal(t, "leaderboard-update-needed", publisher.published[1].Event)
}
