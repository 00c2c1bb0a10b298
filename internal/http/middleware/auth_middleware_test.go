package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/you/notehub/domain"
	"github.com/you/notehub/internal/mocks"
)

func protectedRouter(sessionRepo domain.SessionRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", SessionAuth(sessionRepo), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	return r
}

func validSession() *domain.Session {
	now := time.Now()
	return &domain.Session{
		ID:               "sess-1",
		UserID:           42,
		AccessToken:      "valid-access-token",
		RefreshToken:     "refresh-token",
		AccessExpiresAt:  now.Add(15 * time.Minute),
		RefreshExpiresAt: now.Add(24 * time.Hour),
		CreatedAt:        now,
	}
}

func TestSessionAuth(t *testing.T) {
	tests := []struct {
		name           string
		cookies        []*http.Cookie
		session        *domain.Session
		findErr        error
		expectedStatus int
	}{
		{
			name: "valid session",
			cookies: []*http.Cookie{
				{Name: "sessionId", Value: "sess-1"},
				{Name: "accessToken", Value: "valid-access-token"},
			},
			session:        validSession(),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "no cookies",
			cookies:        nil,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "missing access token cookie",
			cookies: []*http.Cookie{
				{Name: "sessionId", Value: "sess-1"},
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "unknown session",
			cookies: []*http.Cookie{
				{Name: "sessionId", Value: "ghost"},
				{Name: "accessToken", Value: "valid-access-token"},
			},
			findErr:        domain.ErrSessionNotFound,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "access token mismatch",
			cookies: []*http.Cookie{
				{Name: "sessionId", Value: "sess-1"},
				{Name: "accessToken", Value: "forged-token"},
			},
			session:        validSession(),
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessionRepo := mocks.NewMockSessionRepository()
			sessionRepo.FindByIDFunc = func(ctx context.Context, sessionID string) (*domain.Session, error) {
				if tt.findErr != nil {
					return nil, tt.findErr
				}
				require.NotNil(t, tt.session)
				assert.Equal(t, tt.session.ID, sessionID)
				return tt.session, nil
			}
			r := protectedRouter(sessionRepo)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			for _, c := range tt.cookies {
				req.AddCookie(c)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestSessionAuthExpiredAccessToken(t *testing.T) {
	session := validSession()
	session.AccessExpiresAt = time.Now().Add(-time.Minute)

	sessionRepo := mocks.NewMockSessionRepository()
	sessionRepo.FindByIDFunc = func(ctx context.Context, sessionID string) (*domain.Session, error) {
		return session, nil
	}
	r := protectedRouter(sessionRepo)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "sessionId", Value: session.ID})
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: session.AccessToken})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "expired")
}

func TestSessionAuthSetsContext(t *testing.T) {
	session := validSession()
	sessionRepo := mocks.NewMockSessionRepository()
	sessionRepo.FindByIDFunc = func(ctx context.Context, sessionID string) (*domain.Session, error) {
		return session, nil
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	var gotUserID uint
	var gotSessionID string
	r.GET("/protected", SessionAuth(sessionRepo), func(c *gin.Context) {
		gotUserID = c.MustGet(ContextUserID).(uint)
		gotSessionID = c.MustGet(ContextSessionID).(string)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "sessionId", Value: session.ID})
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: session.AccessToken})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, session.UserID, gotUserID)
	assert.Equal(t, session.ID, gotSessionID)
}
