package auth_test

import (
	"testing"
	"time"

	"theatre-backend/internal/auth"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	raw, err := auth.NewAccessToken("secret", 42, time.Hour)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	id, err := auth.ParseAccessToken("secret", raw)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected user id 42, got %d", id)
	}
}

func TestParseAccessToken_WrongSecret(t *testing.T) {
	raw, err := auth.NewAccessToken("secret", 42, time.Hour)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if _, err := auth.ParseAccessToken("other-secret", raw); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestParseAccessToken_Expired(t *testing.T) {
	raw, err := auth.NewAccessToken("secret", 42, -time.Minute)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if _, err := auth.ParseAccessToken("secret", raw); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestParseAccessToken_Garbage(t *testing.T) {
	if _, err := auth.ParseAccessToken("secret", "not-a-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestIdentityIsAdmin(t *testing.T) {
	if (auth.Identity{Role: auth.RoleUser}).IsAdmin() {
		t.Fatal("RoleUser must not be admin")
	}
	if (auth.Identity{Role: auth.RoleAnonymous}).IsAdmin() {
		t.Fatal("RoleAnonymous must not be admin")
	}
	if !(auth.Identity{Role: auth.RoleAdmin}).IsAdmin() {
		t.Fatal("RoleAdmin must be admin")
	}
}
