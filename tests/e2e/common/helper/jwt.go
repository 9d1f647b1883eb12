//go:build e2e

package helper

import (
	"net/http"
	"testing"
	"time"

	"rentify-api/internal/domain/user"
	"rentify-api/internal/handler/dto/request"
	"rentify-api/internal/pkg/config"
	"rentify-api/internal/pkg/cookie"
	"rentify-api/internal/pkg/jwt"
	"rentify-api/tests/common/dbtest"
	helper "rentify-api/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type JWTTestHelper struct {
	pool *pgxpool.Pool
	cfg  config.JWTConfig
}

func NewJWTTestHelper(pool *pgxpool.Pool, cfg config.JWTConfig) *JWTTestHelper {
	return &JWTTestHelper{pool: pool, cfg: cfg}
}

func (h *JWTTestHelper) CreateTestUser(t *testing.T, email, nickname string) uuid.UUID {
	t.Helper()
	return dbtest.CreateTestUser(t, h.pool, email, nickname)
}

// LoginUser logs in and returns the access token issued via cookie.
func (h *JWTTestHelper) LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := helper.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	accessCookie := helper.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, accessCookie, "アクセストークンCookieが見つからない")
	require.NotEmpty(t, accessCookie.Value, "アクセストークンが空")

	return accessCookie.Value
}

func (h *JWTTestHelper) CreateAndLogin(t *testing.T, router *gin.Engine, email, nickname string) string {
	t.Helper()
	h.CreateTestUser(t, email, nickname)
	return h.LoginUser(t, router, email, "password123")
}

func (h *JWTTestHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	duration, _ := time.ParseDuration(h.cfg.AccessTokenDuration)
	refreshDuration, _ := time.ParseDuration(h.cfg.RefreshTokenDuration)
	service := jwt.NewService(h.cfg.Secret, duration, refreshDuration)
	token, err := service.GenerateAccessToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTTestHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	refreshDuration, _ := time.ParseDuration(h.cfg.RefreshTokenDuration)
	service := jwt.NewService(h.cfg.Secret, 1*time.Millisecond, refreshDuration)
	token, err := service.GenerateAccessToken(userID, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
