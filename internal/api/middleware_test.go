package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bengkel-backend/internal/domain"
	"bengkel-backend/internal/security"
	"bengkel-backend/internal/service"
)

type stubUserService struct{}

func (stubUserService) ListUsers(ctx context.Context, offset, limit int32) ([]domain.User, error) {
	return []domain.User{{ID: 1, Email: "admin@x.io"}}, nil
}
func (stubUserService) ApproveUser(ctx context.Context, userID int32) (*domain.User, error) {
	return &domain.User{ID: userID}, nil
}
func (stubUserService) GetUser(ctx context.Context, userID int32) (*domain.User, error) {
	return &domain.User{ID: userID}, nil
}

func newTestServer() (*Server, security.TokenManager) {
	tokens := security.NewTokenManager("0123456789abcdef0123456789abcdef", 60)
	srv := NewServer(ServerConfig{
		Users:     stubUserService{},
		Tokens:    tokens,
		WSHandler: http.NotFoundHandler(),
	})
	return srv, tokens
}

func TestHealthEndpoint(t *testing.T) {
	srv, _ := newTestServer()

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	srv, _ := newTestServer()

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/transactions/me", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareRejectsGarbageToken(t *testing.T) {
	srv, _ := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/transactions/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminGate(t *testing.T) {
	srv, tokens := newTestServer()

	studentToken, err := tokens.GenerateAccessToken(3, "budi@x.io", domain.UserRoleStudent)
	require.NoError(t, err)
	adminToken, err := tokens.GenerateAccessToken(1, "admin@x.io", domain.UserRoleAdmin)
	require.NoError(t, err)

	t.Run("student refused", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		req.Header.Set("Authorization", "Bearer "+studentToken)
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		req.Header.Set("Authorization", "Bearer "+adminToken)
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

var _ service.UserService = stubUserService{}
