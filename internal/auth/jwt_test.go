package auth

import (
	"errors"
	"testing"
	"time"
)

func TestJWTManager(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)

	t.Run("round trip preserves claims", func(t *testing.T) {
		token, err := manager.Generate(42, "Asha", RoleRenter)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		claims, err := manager.Validate(token)
		if err != nil {
			t.Fatalf("Validate failed: %v", err)
		}
		if claims.UserID != 42 || claims.Name != "Asha" || claims.Role != RoleRenter {
			t.Errorf("Claims: %+v", claims)
		}
	})

	t.Run("tampered token is rejected", func(t *testing.T) {
		token, err := manager.Generate(42, "Asha", RoleRenter)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		_, err = manager.Validate(token + "x")
		if !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		token, err := manager.Generate(42, "Asha", RoleAdmin)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		other := NewJWTManager("other-secret", time.Hour)
		if _, err := other.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		expired := NewJWTManager("test-secret", -time.Minute)
		token, err := expired.Generate(42, "Asha", RoleRenter)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		if _, err := manager.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Expected ErrInvalidToken, got %v", err)
		}
	})
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	if !CheckPassword(hash, "s3cret") {
		t.Error("Expected matching password to verify")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("Expected wrong password to fail")
	}
}
