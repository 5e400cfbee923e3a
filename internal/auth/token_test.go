package auth

import (
	"errors"
	"testing"
	"time"
)

func TestTokensRoundtrip(t *testing.T) {
	tokens := NewTokens("test-secret", time.Hour)

	raw, err := tokens.Issue(Actor{ID: 42, Username: "alice", Role: RoleManager})
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}

	actor, err := tokens.Verify(raw)
	if err != nil {
		t.Fatalf("Verify() error: %v", err)
	}
	if actor.ID != 42 || actor.Username != "alice" || actor.Role != RoleManager {
		t.Fatalf("unexpected actor: %+v", actor)
	}
}

func TestTokensWrongSecret(t *testing.T) {
	raw, err := NewTokens("secret-a", time.Hour).Issue(Actor{ID: 1, Username: "bob", Role: RoleStaff})
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}
	if _, err := NewTokens("secret-b", time.Hour).Verify(raw); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken, got %v", err)
	}
}

func TestTokensExpired(t *testing.T) {
	tokens := NewTokens("test-secret", -time.Minute)
	raw, err := tokens.Issue(Actor{ID: 1, Username: "bob", Role: RoleStaff})
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}
	if _, err := tokens.Verify(raw); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken, got %v", err)
	}
}

func TestTokensGarbage(t *testing.T) {
	tokens := NewTokens("test-secret", time.Hour)
	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := tokens.Verify(raw); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Verify(%q): want ErrInvalidToken, got %v", raw, err)
		}
	}
}
