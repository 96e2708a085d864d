// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
)

// fakeTokenRepository tracks refresh tokens in memory.
type fakeTokenRepository struct {
	saved       map[string]uuid.UUID
	invalidated map[string]bool
}

func newFakeTokenRepository() *fakeTokenRepository {
	return &fakeTokenRepository{
		saved:       make(map[string]uuid.UUID),
		invalidated: make(map[string]bool),
	}
}

func (r *fakeTokenRepository) SaveRefreshToken(_ context.Context, token string, userID uuid.UUID, _ time.Time) error {
	// Same constraint as the refresh_tokens.token unique index
	if _, exists := r.saved[token]; exists {
		return fmt.Errorf("refresh token already stored")
	}
	r.saved[token] = userID
	return nil
}

func (r *fakeTokenRepository) IsRefreshTokenValid(_ context.Context, token string) (bool, error) {
	_, exists := r.saved[token]
	return exists && !r.invalidated[token], nil
}

func (r *fakeTokenRepository) InvalidateRefreshToken(_ context.Context, token string) error {
	r.invalidated[token] = true
	return nil
}

func (r *fakeTokenRepository) InvalidateAllUserRefreshTokens(_ context.Context, userID uuid.UUID) error {
	for token, owner := range r.saved {
		if owner == userID {
			r.invalidated[token] = true
		}
	}
	return nil
}

func TestTokenService(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	email := "ana@example.com"

	t.Run("generated access token validates with matching claims", func(t *testing.T) {
		svc := NewTokenService("test-secret", newFakeTokenRepository())

		pair, err := svc.GenerateTokenPair(ctx, userID, email)
		if err != nil {
			t.Fatalf("GenerateTokenPair failed: %v", err)
		}
		if pair.AccessToken == "" || pair.RefreshToken == "" {
			t.Fatal("expected non-empty token pair")
		}

		claims, err := svc.ValidateAccessToken(ctx, pair.AccessToken)
		if err != nil {
			t.Fatalf("ValidateAccessToken failed: %v", err)
		}
		if claims.UserID != userID || claims.Email != email {
			t.Errorf("claims = %+v", claims)
		}
		if !claims.ExpiresAt.After(time.Now()) {
			t.Error("access token already expired")
		}
	})

	t.Run("back-to-back pairs for the same user are distinct", func(t *testing.T) {
		repo := newFakeTokenRepository()
		svc := NewTokenService("test-secret", repo)

		first, err := svc.GenerateTokenPair(ctx, userID, email)
		if err != nil {
			t.Fatalf("first GenerateTokenPair failed: %v", err)
		}
		second, err := svc.GenerateTokenPair(ctx, userID, email)
		if err != nil {
			t.Fatalf("second GenerateTokenPair failed: %v", err)
		}

		if first.RefreshToken == second.RefreshToken {
			t.Error("refresh tokens issued back-to-back are identical")
		}
		if first.AccessToken == second.AccessToken {
			t.Error("access tokens issued back-to-back are identical")
		}
		if len(repo.saved) != 2 {
			t.Errorf("expected 2 stored refresh tokens, got %d", len(repo.saved))
		}
	})

	t.Run("token types are not interchangeable", func(t *testing.T) {
		svc := NewTokenService("test-secret", newFakeTokenRepository())
		pair, _ := svc.GenerateTokenPair(ctx, userID, email)

		if _, err := svc.ValidateAccessToken(ctx, pair.RefreshToken); err == nil {
			t.Error("expected refresh token to fail access validation")
		}
		if _, err := svc.ValidateRefreshToken(ctx, pair.AccessToken); err == nil {
			t.Error("expected access token to fail refresh validation")
		}
	})

	t.Run("refresh token survives validation until revoked", func(t *testing.T) {
		repo := newFakeTokenRepository()
		svc := NewTokenService("test-secret", repo)
		pair, _ := svc.GenerateTokenPair(ctx, userID, email)

		if _, err := svc.ValidateRefreshToken(ctx, pair.RefreshToken); err != nil {
			t.Fatalf("ValidateRefreshToken failed: %v", err)
		}

		if err := svc.InvalidateRefreshToken(ctx, pair.RefreshToken); err != nil {
			t.Fatalf("InvalidateRefreshToken failed: %v", err)
		}

		if _, err := svc.ValidateRefreshToken(ctx, pair.RefreshToken); err == nil {
			t.Error("expected revoked token to fail validation")
		}
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		repo := newFakeTokenRepository()
		pair, _ := NewTokenService("secret-one", repo).GenerateTokenPair(ctx, userID, email)

		if _, err := NewTokenService("secret-two", repo).ValidateAccessToken(ctx, pair.AccessToken); err == nil {
			t.Error("expected token signed with another secret to fail")
		}
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		svc := NewTokenService("test-secret", newFakeTokenRepository())
		if _, err := svc.ValidateAccessToken(ctx, "not.a.token"); err == nil {
			t.Error("expected malformed token to fail")
		}
	})
}
