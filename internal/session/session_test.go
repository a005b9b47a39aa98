package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/yolearn/yolearn/internal/models"
)

func TestAuthenticateRequiresCredentials(t *testing.T) {
	m := &Mock{}
	cases := []models.Credentials{
		{},
		{Email: "alex@campus.test"},
		{Password: "hunter22"},
		{Email: "   ", Password: "hunter22"},
	}
	for _, creds := range cases {
		if _, err := m.Authenticate(context.Background(), creds); !errors.Is(err, ErrMissingCredentials) {
			t.Errorf("creds %+v: expected ErrMissingCredentials, got %v", creds, err)
		}
	}
}

func TestAuthenticateFabricatesUser(t *testing.T) {
	m := &Mock{}
	u, err := m.Authenticate(context.Background(), models.Credentials{
		Email:    "Alex@Campus.TEST",
		Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if u.ID == "" || u.Name == "" {
		t.Errorf("incomplete user: %+v", u)
	}
	if u.Email != "alex@campus.test" {
		t.Errorf("email not normalized: %q", u.Email)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("hunter22")); err != nil {
		t.Errorf("password hash does not verify: %v", err)
	}
}

func TestAuthenticateCancelledContext(t *testing.T) {
	m := &Mock{Delay: time.Minute}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := m.Authenticate(ctx, models.Credentials{
		Email: "alex@campus.test", Password: "hunter22",
	}); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestSignup(t *testing.T) {
	m := &Mock{}
	u, err := m.Signup(context.Background(), models.SignupRequest{
		Name:       "  Jordan Lee ",
		Email:      "jordan@campus.test",
		Password:   "hunter22",
		Department: "Physics",
		Year:       "Freshman",
	})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if u.Name != "Jordan Lee" || u.Department != "Physics" {
		t.Errorf("profile fields wrong: %+v", u)
	}
	if u.SkillsCount != 0 || u.BadgesCount != 1 {
		t.Errorf("starter counters wrong: skills=%d badges=%d", u.SkillsCount, u.BadgesCount)
	}
	if u.JoinedAt.IsZero() {
		t.Error("join date not stamped")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("user-1", "alex@campus.test", "test-secret")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	claims, err := ParseToken(token, "test-secret")
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != "user-1" || claims.Email != "alex@campus.test" {
		t.Errorf("claims wrong: %+v", claims)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	token, _ := GenerateToken("user-1", "alex@campus.test", "test-secret")
	if _, err := ParseToken(token, "other-secret"); err == nil {
		t.Error("expected error for wrong secret")
	}
}

func TestTokenGarbage(t *testing.T) {
	if _, err := ParseToken("not.a.token", "test-secret"); err == nil {
		t.Error("expected error for malformed token")
	}
}
