package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/household-ledger/backend/internal/application/adapter"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
)

type fakeTokenService struct {
	validToken string
	claims     *adapter.TokenClaims
}

func (s *fakeTokenService) GenerateTokenPair(ctx context.Context, userID uuid.UUID, email string) (*adapter.TokenPair, error) {
	return nil, nil
}

func (s *fakeTokenService) ValidateAccessToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	if token == s.validToken {
		return s.claims, nil
	}
	return nil, domainerror.NewAuthError(domainerror.ErrCodeInvalidToken, "invalid token", nil)
}

func (s *fakeTokenService) ValidateRefreshToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	return nil, domainerror.NewAuthError(domainerror.ErrCodeInvalidToken, "invalid token", nil)
}

func (s *fakeTokenService) InvalidateRefreshToken(ctx context.Context, token string) error {
	return nil
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	userID := uuid.New()
	tokenService := &fakeTokenService{
		validToken: "good-token",
		claims: &adapter.TokenClaims{
			UserID:    userID,
			Email:     "ana@example.com",
			ExpiresAt: time.Now().Add(15 * time.Minute),
		},
	}

	router := gin.New()
	router.GET("/protected", NewAuthMiddleware(tokenService).Authenticate(), func(c *gin.Context) {
		id, ok := GetUserIDFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "missing user"})
			return
		}
		email, _ := GetUserEmailFromContext(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id.String(), "email": email})
	})

	request := func(authHeader string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if authHeader != "" {
			req.Header.Set("Authorization", authHeader)
		}
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("valid token passes and exposes claims", func(t *testing.T) {
		w := request("Bearer good-token")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), userID.String()) {
			t.Errorf("expected user ID in response, got %s", w.Body.String())
		}
		if !strings.Contains(w.Body.String(), "ana@example.com") {
			t.Errorf("expected email in response, got %s", w.Body.String())
		}
	})

	t.Run("missing authorization header", func(t *testing.T) {
		w := request("")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), string(domainerror.ErrCodeMissingToken)) {
			t.Errorf("expected missing token code, got %s", w.Body.String())
		}
	})

	t.Run("malformed authorization header", func(t *testing.T) {
		w := request("Token good-token")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), string(domainerror.ErrCodeInvalidToken)) {
			t.Errorf("expected invalid token code, got %s", w.Body.String())
		}
	})

	t.Run("empty bearer token", func(t *testing.T) {
		w := request("Bearer ")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), string(domainerror.ErrCodeMissingToken)) {
			t.Errorf("expected missing token code, got %s", w.Body.String())
		}
	})

	t.Run("rejected token", func(t *testing.T) {
		w := request("Bearer forged-token")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), string(domainerror.ErrCodeInvalidToken)) {
			t.Errorf("expected invalid token code, got %s", w.Body.String())
		}
	})
}
