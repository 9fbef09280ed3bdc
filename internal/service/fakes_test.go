package service

import (
	"errors"
	"sort"
	"time"

	"gorm.io/gorm"

	"hackathon_web/internal/models"
)

// 本檔案提供 repository 介面的記憶體假實作，讓 service 測試不需要資料庫

type fakeSubmissionRepo struct {
	submissions []models.Submission
	nextID      uint
}

func (r *fakeSubmissionRepo) Create(submission *models.Submission) error {
	r.nextID++
	submission.ID = r.nextID
	r.submissions = append(r.submissions, *submission)
	return nil
}

func (r *fakeSubmissionRepo) FindByID(id uint) (*models.Submission, error) {
	for _, submission := range r.submissions {
		if submission.ID == id {
			found := submission
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeSubmissionRepo) FindByHackathonID(hackathonID uint) ([]models.Submission, error) {
	var out []models.Submission
	for _, submission := range r.submissions {
		if submission.HackathonID == hackathonID {
			out = append(out, submission)
		}
	}
	return out, nil
}

type fakeEvaluationRepo struct {
	evaluations    []models.Evaluation
	nextID         uint
	forceDuplicate bool // 模擬前置檢查之後才撞到唯一索引的競態
}

func (r *fakeEvaluationRepo) Create(evaluation *models.Evaluation) error {
	if r.forceDuplicate {
		return gorm.ErrDuplicatedKey
	}
	// 模擬 (submission_id, judge_id) 的唯一索引
	for _, existing := range r.evaluations {
		if existing.SubmissionID == evaluation.SubmissionID && existing.JudgeID == evaluation.JudgeID {
			return gorm.ErrDuplicatedKey
		}
	}
	r.nextID++
	evaluation.ID = r.nextID
	r.evaluations = append(r.evaluations, *evaluation)
	return nil
}

func (r *fakeEvaluationRepo) Exists(submissionID, judgeID uint) (bool, error) {
	for _, evaluation := range r.evaluations {
		if evaluation.SubmissionID == submissionID && evaluation.JudgeID == judgeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeEvaluationRepo) FindByHackathonID(hackathonID uint) ([]models.Evaluation, error) {
	var out []models.Evaluation
	for _, evaluation := range r.evaluations {
		if evaluation.HackathonID == hackathonID {
			out = append(out, evaluation)
		}
	}
	return out, nil
}

type fakeTeamRepo struct {
	members map[uint][]uint // teamID -> 成員 ID
	err     error
}

func (r *fakeTeamRepo) Create(team *models.Team) error { return r.err }

func (r *fakeTeamRepo) FindByID(id uint) (*models.Team, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeTeamRepo) IsMember(teamID, userID uint) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	for _, memberID := range r.members[teamID] {
		if memberID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeTeamRepo) MemberIDs(teamID uint) ([]uint, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.members[teamID], nil
}

type fakeMessageRepo struct {
	messages   []models.Message
	users      map[uint]models.User
	nextID     uint
	failCreate bool
}

func (r *fakeMessageRepo) Create(message *models.Message) error {
	if r.failCreate {
		return errors.New("connection refused")
	}
	r.nextID++
	message.ID = r.nextID
	// 以遞增的時間戳模擬依序寫入
	message.CreatedAt = time.Unix(int64(1700000000+r.nextID), 0)
	r.messages = append(r.messages, *message)
	return nil
}

func (r *fakeMessageRepo) FindByID(id uint) (*models.Message, error) {
	for _, message := range r.messages {
		if message.ID == id {
			found := message
			found.User = r.users[message.UserID]
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeMessageRepo) FindPage(hackathonID uint, roomType models.RoomType, page, pageSize int) ([]models.Message, error) {
	var matched []models.Message
	for _, message := range r.messages {
		if message.HackathonID == hackathonID && message.RoomType == roomType {
			matched = append(matched, message)
		}
	}
	// 由新到舊
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	start := (page - 1) * pageSize
	if start >= len(matched) {
		return nil, nil
	}
	end := start + pageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], nil
}

func (r *fakeMessageRepo) Count(hackathonID uint, roomType models.RoomType) (int64, error) {
	var count int64
	for _, message := range r.messages {
		if message.HackathonID == hackathonID && message.RoomType == roomType {
			count++
		}
	}
	return count, nil
}

// publishedEvent 記錄一次廣播呼叫
type publishedEvent struct {
	Event   string
	Room    RoomKey
	Payload interface{}
}

type recordingPublisher struct {
	published []publishedEvent
}

func (p *recordingPublisher) Publish(event string, room RoomKey, payload interface{}) {
	p.published = append(p.published, publishedEvent{Event: event, Room: room, Payload: payload})
}

// newTestClient 建立不綁定實際連線的客戶端，事件只進發送隊列
func newTestClient(userID uint, role models.UserRole) *Client {
	return &Client{
		UserID:   userID,
		Role:     role,
		SendChan: make(chan *ServerEvent, 32),
		done:     make(chan struct{}),
	}
}

// drainEvents 非阻塞地取出客戶端發送隊列中的所有事件
func drainEvents(client *Client) []*ServerEvent {
	var out []*ServerEvent
	for {
		select {
		case event := <-client.SendChan:
			out = append(out, event)
		default:
			return out
		}
	}
}
