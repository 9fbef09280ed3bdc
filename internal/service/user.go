package service

import (
	"errors"

	"gorm.io/gorm"

	"hackathon_web/internal/apperrors"
	"hackathon_web/internal/models"
	"hackathon_web/internal/repository"
)

// UserService 是外部帳號服務的讀寫入口，握手時的身份解析也走這裡
type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) CreateUser(user *models.User) error {
	return s.userRepo.Create(user)
}

func (s *UserService) GetUserByEmail(email string) (*models.User, error) {
	return s.userRepo.FindByEmail(email)
}

// ResolveIdentity 把 token 中的 id 宣告解析成在線使用者紀錄，
// 查無此人回傳 ErrUnknownUser，握手必須中止
func (s *UserService) ResolveIdentity(userID uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrUnknownUser
	} else if err != nil {
		return nil, err
	}
	return user, nil
}
