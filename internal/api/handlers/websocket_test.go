package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"hackathon_web/internal/models"
	"hackathon_web/internal/repository"
	"hackathon_web/internal/service"
	"hackathon_web/internal/utils"
)

type fakeUserRepo struct {
	users map[uint]models.User
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func (r *fakeUserRepo) Create(user *models.User) error { return nil }

func (r *fakeUserRepo) FindByID(id uint) (*models.User, error) {
	if user, ok := r.users[id]; ok {
		return &user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func newHandshakeRouter(users map[uint]models.User) *gin.Engine {
	gin.SetMode(gin.TestMode)

	userService := service.NewUserService(&fakeUserRepo{users: users})
	realtime := service.NewRealtimeManager(nil, nil)
	wsHandler := NewWebSocketHandler(realtime, userService)

	r := gin.New()
	r.GET("/api/ws", wsHandler.HandleWebSocket)
	return r
}

func TestHandshakeMissingToken(t *testing.T) {
	router := newHandshakeRouter(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/ws", nil)
	router.ServeHTTP(w, req)

	// 缺少 token 在升級前就被拒絕，不會建立任何連線
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandshakeInvalidToken(t *testing.T) {
	router := newHandshakeRouter(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/ws?token=garbage", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandshakeUnknownUser(t *testing.T) {
	router := newHandshakeRouter(nil)

	token, err := utils.GenerateToken(99, "ghost@example.com", "participant")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/ws?token="+token, nil)
	router.ServeHTTP(w, req)

	// token 有效但帳號服務查無此人，握手一樣中止
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
