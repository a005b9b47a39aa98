// Package session authenticates the current user.
//
// The store does not know how users are authenticated — it only
// receives a User via SetUser. Provider is the seam: the demo ships a
// mock that accepts any non-empty credential pair and fabricates a
// profile after a simulated network round-trip, and a real backend
// client can replace it later without touching the store.
package session

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/yolearn/yolearn/internal/models"
)

// ErrMissingCredentials is returned when the email or password is blank.
// It is the only way the mock provider rejects a login.
var ErrMissingCredentials = errors.New("session: email and password are required")

// Provider authenticates a credential pair and produces the user the
// session runs as.
type Provider interface {
	Authenticate(ctx context.Context, creds models.Credentials) (*models.User, error)
}

// Mock is the demo Provider. It stands in for a real authentication
// backend: any non-empty credentials succeed, the returned profile is
// fabricated, and Delay simulates the network round-trip a real
// implementation would make.
//
// A second login attempt while one is in flight should be prevented by
// the caller (disable the submit button); the provider does not guard
// against it.
type Mock struct {
	// Delay is the simulated round-trip time. Zero means no delay,
	// which is what tests want.
	Delay time.Duration
}

// Authenticate validates that both credential fields are present,
// waits out the simulated round-trip (or returns early if ctx is
// cancelled), and fabricates the demo user for the given email. The
// password is never stored in clear — only its bcrypt hash goes on the
// record, same as a real backend would keep.
func (m *Mock) Authenticate(ctx context.Context, creds models.Credentials) (*models.User, error) {
	email := strings.TrimSpace(strings.ToLower(creds.Email))
	if email == "" || creds.Password == "" {
		return nil, ErrMissingCredentials
	}
	if err := m.wait(ctx); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &models.User{
		ID:           uuid.NewString(),
		Name:         "Alex Johnson",
		Email:        email,
		PasswordHash: string(hash),
		Department:   "Computer Science",
		Year:         "Senior",
		Bio:          "Passionate about web development and helping fellow students learn new skills.",
		AvatarURL:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=face",
		SkillsCount:  5,
		BadgesCount:  8,
		JoinedAt:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}, nil
}

// Signup fabricates a brand-new user from the signup form fields. New
// accounts start with zero posted skills and the Early Adopter badge.
func (m *Mock) Signup(ctx context.Context, req models.SignupRequest) (*models.User, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || req.Password == "" {
		return nil, ErrMissingCredentials
	}
	if err := m.wait(ctx); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &models.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hash),
		Department:   req.Department,
		Year:         req.Year,
		Bio:          req.Bio,
		SkillsCount:  0,
		BadgesCount:  1,
		JoinedAt:     time.Now().UTC(),
	}, nil
}

func (m *Mock) wait(ctx context.Context) error {
	if m.Delay <= 0 {
		return nil
	}
	timer := time.NewTimer(m.Delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
