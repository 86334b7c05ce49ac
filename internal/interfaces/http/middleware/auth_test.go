package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketdesk/internal/domain/user"
	"ticketdesk/internal/infrastructure/auth"
	"ticketdesk/internal/shared/constants"
)

type stubUserRepo struct {
	GetByIDFunc func(ctx context.Context, id uint) (*user.User, error)
}

func (s *stubUserRepo) Create(ctx context.Context, u *user.User) error { return nil }
func (s *stubUserRepo) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if s.GetByIDFunc != nil {
		return s.GetByIDFunc(ctx, id)
	}
	return nil, nil
}
func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, nil
}
func (s *stubUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}

func knownUser(t *testing.T) *user.User {
	t.Helper()
	now := time.Now().UTC()
	u, err := user.ReconstructUser(42, "Alice", "alice@example.com",
		"hash", user.RoleUser, now, now)
	require.NoError(t, err)
	return u
}

func setupAuthRouter(t *testing.T, repo user.Repository) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtSvc := auth.NewJWTService("test-secret", 60)

	r := gin.New()
	r.GET("/protected", RequireAuth(jwtSvc, repo), func(c *gin.Context) {
		id, _ := CurrentUserID(c)
		u, _ := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id, "email": u.Email()})
	})
	return r, jwtSvc
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRequireAuth_CookieToken(t *testing.T) {
	repo := &stubUserRepo{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return knownUser(t), nil
		},
	}
	r, jwtSvc := setupAuthRouter(t, repo)

	token, err := jwtSvc.Issue(42)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: constants.TokenCookie, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(42), body["user_id"])
	assert.Equal(t, "alice@example.com", body["email"])
}

func TestRequireAuth_BearerToken(t *testing.T) {
	repo := &stubUserRepo{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return knownUser(t), nil
		},
	}
	r, jwtSvc := setupAuthRouter(t, repo)

	token, err := jwtSvc.Issue(42)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAuth_CookieWinsOverHeader(t *testing.T) {
	var requested uint
	repo := &stubUserRepo{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			requested = id
			return knownUser(t), nil
		},
	}
	r, jwtSvc := setupAuthRouter(t, repo)

	cookieToken, err := jwtSvc.Issue(42)
	require.NoError(t, err)
	headerToken, err := jwtSvc.Issue(7)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: constants.TokenCookie, Value: cookieToken})
	req.Header.Set("Authorization", "Bearer "+headerToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(42), requested)
}

func TestRequireAuth_MissingToken(t *testing.T) {
	r, _ := setupAuthRouter(t, &stubUserRepo{})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "fail", body["status"])
	assert.Equal(t, "You are not logged in, please provide a token", body["message"])
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	r, _ := setupAuthRouter(t, &stubUserRepo{})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Invalid or expired token", body["message"])
}

func TestRequireAuth_WrongSecret(t *testing.T) {
	repo := &stubUserRepo{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return knownUser(t), nil
		},
	}
	r, _ := setupAuthRouter(t, repo)

	otherToken, err := auth.NewJWTService("other-secret", 60).Issue(42)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+otherToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_UserGone(t *testing.T) {
	// Repo returns nil, nil: the account was deleted after token issuance.
	r, jwtSvc := setupAuthRouter(t, &stubUserRepo{})

	token, err := jwtSvc.Issue(42)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "The user belonging to this token no longer exists", body["message"])
}
