package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/household-ledger/backend/internal/domain/entity"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Create and FindByEmail", func(t *testing.T) {
		repo := NewUserRepository(setupTestDB(t))
		user := entity.NewUser("ana@example.com", "Ana", "hash")

		if err := repo.Create(ctx, user); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		found, err := repo.FindByEmail(ctx, "ana@example.com")
		if err != nil {
			t.Fatalf("FindByEmail failed: %v", err)
		}
		if found.ID != user.ID || found.Name != "Ana" {
			t.Errorf("found wrong user: %+v", found)
		}
	})

	t.Run("FindByID of unknown user", func(t *testing.T) {
		repo := NewUserRepository(setupTestDB(t))
		_, err := repo.FindByID(ctx, uuid.New())
		if !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("ExistsByEmail", func(t *testing.T) {
		repo := NewUserRepository(setupTestDB(t))
		_ = repo.Create(ctx, entity.NewUser("ana@example.com", "Ana", "hash"))

		exists, err := repo.ExistsByEmail(ctx, "ana@example.com")
		if err != nil || !exists {
			t.Errorf("expected existing email, got (%v, %v)", exists, err)
		}
		exists, err = repo.ExistsByEmail(ctx, "otro@example.com")
		if err != nil || exists {
			t.Errorf("expected missing email, got (%v, %v)", exists, err)
		}
	})
}

func TestTokenRepository(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	future := time.Now().UTC().Add(time.Hour)

	t.Run("saved token is valid until invalidated", func(t *testing.T) {
		repo := NewTokenRepository(setupTestDB(t))

		if err := repo.SaveRefreshToken(ctx, "token-a", userID, future); err != nil {
			t.Fatalf("SaveRefreshToken failed: %v", err)
		}

		valid, err := repo.IsRefreshTokenValid(ctx, "token-a")
		if err != nil || !valid {
			t.Fatalf("expected valid token, got (%v, %v)", valid, err)
		}

		if err := repo.InvalidateRefreshToken(ctx, "token-a"); err != nil {
			t.Fatalf("InvalidateRefreshToken failed: %v", err)
		}

		valid, err = repo.IsRefreshTokenValid(ctx, "token-a")
		if err != nil || valid {
			t.Errorf("expected invalidated token, got (%v, %v)", valid, err)
		}
	})

	t.Run("expired token is not valid", func(t *testing.T) {
		repo := NewTokenRepository(setupTestDB(t))

		_ = repo.SaveRefreshToken(ctx, "token-old", userID, time.Now().UTC().Add(-time.Minute))

		valid, err := repo.IsRefreshTokenValid(ctx, "token-old")
		if err != nil || valid {
			t.Errorf("expected expired token to be invalid, got (%v, %v)", valid, err)
		}
	})

	t.Run("unknown token is not valid", func(t *testing.T) {
		repo := NewTokenRepository(setupTestDB(t))

		valid, err := repo.IsRefreshTokenValid(ctx, "nope")
		if err != nil || valid {
			t.Errorf("expected unknown token to be invalid, got (%v, %v)", valid, err)
		}
	})

	t.Run("InvalidateAllUserRefreshTokens", func(t *testing.T) {
		repo := NewTokenRepository(setupTestDB(t))

		_ = repo.SaveRefreshToken(ctx, "token-1", userID, future)
		_ = repo.SaveRefreshToken(ctx, "token-2", userID, future)
		otherToken := uuid.New()
		_ = repo.SaveRefreshToken(ctx, "token-3", otherToken, future)

		if err := repo.InvalidateAllUserRefreshTokens(ctx, userID); err != nil {
			t.Fatalf("InvalidateAllUserRefreshTokens failed: %v", err)
		}

		for _, token := range []string{"token-1", "token-2"} {
			if valid, _ := repo.IsRefreshTokenValid(ctx, token); valid {
				t.Errorf("expected %s invalidated", token)
			}
		}
		if valid, _ := repo.IsRefreshTokenValid(ctx, "token-3"); !valid {
			t.Error("expected other user's token to stay valid")
		}
	})
}
