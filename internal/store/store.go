// Package store holds the single process-wide application state:
// session, skill catalog, the user's own skills, matches,
// notifications, and transient UI state.
//
// ────────────────────────────────────────────────────────────────────
// LEARNING NOTE — an observable state container
// ────────────────────────────────────────────────────────────────────
// The store is the only sanctioned way to change application state.
// Views never mutate collections directly; they call the action methods
// below and re-render from the snapshot delivered to their subscriber.
// This keeps every invariant (unread count, match lifecycle, the
// persistence whitelist) enforced in exactly one place.
//
// On every mutation a whitelisted projection of the state — the current
// user, auth flag, the user's own skills, matches, notifications, the
// dark-mode flag, and the current page — is mirrored to durable storage
// under one key. Catalog skills and filter text are deliberately
// excluded: the catalog is reseeded at startup and filters always start
// blank. Rehydration tolerates missing or malformed persisted state by
// falling back to empty defaults field by field.
package store

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yolearn/yolearn/internal/models"
	"github.com/yolearn/yolearn/internal/repository"
	"github.com/yolearn/yolearn/internal/seed"
	"github.com/yolearn/yolearn/internal/storage"
)

// State is an immutable snapshot of the application state. Top-level
// slices are fresh copies per snapshot; treat nested data as read-only.
type State struct {
	// Session
	User            *models.User
	IsAuthenticated bool

	// Skills
	Skills     []models.Skill // browsable catalog, reseeded at startup
	UserSkills []models.Skill // the current user's own posts
	Categories []string

	// Matches
	Matches        []models.Match // accepted / completed
	PendingMatches []models.Match

	// Notifications. UnreadCount is always recomputed from the list —
	// the list is the single source of truth, so the counter can never
	// drift or go negative.
	Notifications []models.Notification
	UnreadCount   int

	// Fixed demo data, populated by InitializeData.
	Badges      []models.Badge
	Leaderboard []models.LeaderboardEntry
	Stats       []models.Stat

	// Transient UI state — never persisted except CurrentPage and
	// DarkMode, which are part of the whitelist.
	CurrentPage      string
	SearchQuery      string
	SelectedCategory string
	DarkMode         bool
}

// persistedState is the whitelisted projection mirrored to storage.
// Field names are part of the stored format; do not rename them.
type persistedState struct {
	User            *models.User          `json:"user"`
	IsAuthenticated bool                  `json:"isAuthenticated"`
	UserSkills      []models.Skill        `json:"userSkills"`
	Matches         []models.Match        `json:"matches"`
	Notifications   []models.Notification `json:"notifications"`
	DarkMode        bool                  `json:"isDarkMode"`
	CurrentPage     string                `json:"currentPage"`
}

// Store is the global application store. All methods are safe for
// concurrent use; subscribers are invoked outside the state lock.
type Store struct {
	mu      sync.Mutex
	state   State
	storage *storage.Store
	subs    map[int]func(State)
	nextSub int
}

// New creates a store over st, rehydrating the whitelisted fields from
// any previously persisted state. Everything outside the whitelist
// starts at its default.
func New(st *storage.Store) *Store {
	s := &Store{
		storage: st,
		subs:    make(map[int]func(State)),
		state:   defaultState(),
	}
	s.rehydrate()
	return s
}

func defaultState() State {
	return State{
		Skills:           []models.Skill{},
		UserSkills:       []models.Skill{},
		Categories:       slices.Clone(models.Categories),
		Matches:          []models.Match{},
		PendingMatches:   []models.Match{},
		Notifications:    []models.Notification{},
		CurrentPage:      "dashboard",
		SelectedCategory: "All",
	}
}

// rehydrate replaces the whitelisted fields with the persisted
// projection, if one exists and parses. A missing or malformed entry
// leaves the defaults in place — startup never fails on bad state.
func (s *Store) rehydrate() {
	p := storage.Load(s.storage, storage.KeyAppState, persistedState{})
	if p.User != nil {
		s.state.User = p.User
		s.state.IsAuthenticated = p.IsAuthenticated
	}
	if p.UserSkills != nil {
		s.state.UserSkills = p.UserSkills
	}
	if p.Matches != nil {
		s.state.Matches = p.Matches
	}
	if p.Notifications != nil {
		s.state.Notifications = p.Notifications
	}
	if p.CurrentPage != "" {
		s.state.CurrentPage = p.CurrentPage
	}
	s.state.DarkMode = p.DarkMode
	s.state.UnreadCount = countUnread(s.state.Notifications)
}

// Subscribe registers fn to receive a state snapshot after every
// mutation. The returned function unsubscribes.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() State {
	snap := s.state
	if s.state.User != nil {
		u := *s.state.User
		snap.User = &u
	}
	snap.Skills = slices.Clone(s.state.Skills)
	snap.UserSkills = slices.Clone(s.state.UserSkills)
	snap.Categories = slices.Clone(s.state.Categories)
	snap.Matches = slices.Clone(s.state.Matches)
	snap.PendingMatches = slices.Clone(s.state.PendingMatches)
	snap.Notifications = slices.Clone(s.state.Notifications)
	snap.Badges = slices.Clone(s.state.Badges)
	snap.Leaderboard = slices.Clone(s.state.Leaderboard)
	snap.Stats = slices.Clone(s.state.Stats)
	return snap
}

// apply runs mutate under the lock, mirrors the whitelist to storage,
// and notifies subscribers with a fresh snapshot. A failed persist
// keeps the in-memory change — the session stays consistent, it is
// just not durable.
func (s *Store) apply(mutate func(*State)) {
	s.mu.Lock()
	mutate(&s.state)
	s.state.UnreadCount = countUnread(s.state.Notifications)
	s.storage.Save(storage.KeyAppState, persistedState{
		User:            s.state.User,
		IsAuthenticated: s.state.IsAuthenticated,
		UserSkills:      s.state.UserSkills,
		Matches:         s.state.Matches,
		Notifications:   s.state.Notifications,
		DarkMode:        s.state.DarkMode,
		CurrentPage:     s.state.CurrentPage,
	})
	snap := s.snapshotLocked()
	subs := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

func countUnread(list []models.Notification) int {
	n := 0
	for _, nt := range list {
		if !nt.Read {
			n++
		}
	}
	return n
}

// ── Session ──────────────────────────────────────────────────────────

// SetUser installs u as the current user. A non-nil u transitions the
// session from anonymous to authenticated; SetUser(nil) is equivalent
// to Logout for the auth flag but does not clear collections.
func (s *Store) SetUser(u *models.User) {
	s.apply(func(st *State) {
		st.User = u
		st.IsAuthenticated = u != nil
	})
}

// Logout clears every user-scoped collection and the session flags.
// The catalog-level skill list, theme, and current page survive.
func (s *Store) Logout() {
	s.apply(func(st *State) {
		st.User = nil
		st.IsAuthenticated = false
		st.UserSkills = []models.Skill{}
		st.Matches = []models.Match{}
		st.PendingMatches = []models.Match{}
		st.Notifications = []models.Notification{}
	})
}

// ── Skills ───────────────────────────────────────────────────────────

// AddSkill appends a skill to the browsable catalog, materializing it
// with a fresh ID and creation stamp if the draft has none.
func (s *Store) AddSkill(draft models.Skill) {
	s.apply(func(st *State) {
		st.Skills = append(st.Skills, materializeSkill(draft, st.User))
	})
}

// AddUserSkill appends a skill to the current user's own posts,
// snapshotting the user's name, department, and year into the
// denormalized owner fields.
func (s *Store) AddUserSkill(draft models.Skill) {
	s.apply(func(st *State) {
		st.UserSkills = append(st.UserSkills, materializeSkill(draft, st.User))
	})
}

func materializeSkill(draft models.Skill, owner *models.User) models.Skill {
	now := time.Now().UTC()
	if draft.ID == "" {
		draft.ID = uuid.NewString()
	}
	if draft.CreatedAt.IsZero() {
		draft.CreatedAt = now
	}
	draft.UpdatedAt = now
	if owner != nil && draft.OwnerID == "" {
		draft.OwnerID = owner.ID
		draft.OwnerName = owner.Name
		draft.OwnerDepartment = owner.Department
		draft.OwnerYear = owner.Year
	}
	return draft
}

// RemoveUserSkill deletes one of the user's own posts.
func (s *Store) RemoveUserSkill(id string) {
	s.apply(func(st *State) {
		st.UserSkills = slices.DeleteFunc(st.UserSkills, func(sk models.Skill) bool {
			return sk.ID == id
		})
	})
}

// UpdateUserSkill merges patch into one of the user's own posts.
func (s *Store) UpdateUserSkill(id string, patch repository.SkillPatch) {
	s.apply(func(st *State) {
		for i := range st.UserSkills {
			if st.UserSkills[i].ID == id {
				patch.Apply(&st.UserSkills[i])
				st.UserSkills[i].UpdatedAt = time.Now().UTC()
				return
			}
		}
	})
}

// ── Search / filter UI state ─────────────────────────────────────────

// SetSearchQuery records the free-text filter. Never persisted.
func (s *Store) SetSearchQuery(q string) {
	s.apply(func(st *State) { st.SearchQuery = q })
}

// SetSelectedCategory records the category filter ("All" disables it).
func (s *Store) SetSelectedCategory(c string) {
	s.apply(func(st *State) { st.SelectedCategory = c })
}

// SetCurrentPage records the active page label for rehydration. The
// store has no knowledge of routing; the label is opaque.
func (s *Store) SetCurrentPage(page string) {
	s.apply(func(st *State) { st.CurrentPage = page })
}

// ToggleDarkMode flips the theme flag.
func (s *Store) ToggleDarkMode() {
	s.apply(func(st *State) { st.DarkMode = !st.DarkMode })
}

// ── Matches ──────────────────────────────────────────────────────────

// AddMatch appends an already-agreed match to the active collection.
func (s *Store) AddMatch(draft models.Match) {
	s.apply(func(st *State) {
		st.Matches = append(st.Matches, materializeMatch(draft, models.MatchAccepted))
	})
}

// AddPendingMatch records a new match request awaiting the teacher's
// response.
func (s *Store) AddPendingMatch(draft models.Match) {
	s.apply(func(st *State) {
		st.PendingMatches = append(st.PendingMatches, materializeMatch(draft, models.MatchPending))
	})
}

func materializeMatch(draft models.Match, status models.MatchStatus) models.Match {
	now := time.Now().UTC()
	if draft.ID == "" {
		draft.ID = uuid.NewString()
	}
	draft.Status = status
	if draft.CreatedAt.IsZero() {
		draft.CreatedAt = now
	}
	draft.UpdatedAt = now
	return draft
}

// AcceptMatch moves a pending match into the active collection with
// status accepted and stamps the acceptance time. Accepting an id that
// is not pending (already accepted, rejected, or unknown) is a no-op.
func (s *Store) AcceptMatch(id string) {
	s.apply(func(st *State) {
		for i, m := range st.PendingMatches {
			if m.ID != id {
				continue
			}
			now := time.Now().UTC()
			m.Status = models.MatchAccepted
			m.AcceptedAt = &now
			m.UpdatedAt = now
			st.PendingMatches = append(st.PendingMatches[:i], st.PendingMatches[i+1:]...)
			st.Matches = append(st.Matches, m)
			return
		}
	})
}

// RejectMatch removes a match request from the pending collection.
// Rejected-while-pending is the only hard delete in the match
// lifecycle.
func (s *Store) RejectMatch(id string) {
	s.apply(func(st *State) {
		st.PendingMatches = slices.DeleteFunc(st.PendingMatches, func(m models.Match) bool {
			return m.ID == id
		})
	})
}

// CompleteMatch marks an accepted match as completed.
func (s *Store) CompleteMatch(id string) {
	s.apply(func(st *State) {
		for i := range st.Matches {
			if st.Matches[i].ID == id && st.Matches[i].Status == models.MatchAccepted {
				st.Matches[i].Status = models.MatchCompleted
				st.Matches[i].UpdatedAt = time.Now().UTC()
				return
			}
		}
	})
}

// ── Notifications ────────────────────────────────────────────────────

// AddNotification prepends a new unread notification.
func (s *Store) AddNotification(draft models.Notification) {
	s.apply(func(st *State) {
		if draft.ID == "" {
			draft.ID = uuid.NewString()
		}
		draft.Read = false
		if draft.CreatedAt.IsZero() {
			draft.CreatedAt = time.Now().UTC()
		}
		st.Notifications = append([]models.Notification{draft}, st.Notifications...)
	})
}

// MarkNotificationRead flips one notification's read flag.
func (s *Store) MarkNotificationRead(id string) {
	s.apply(func(st *State) {
		for i := range st.Notifications {
			if st.Notifications[i].ID == id {
				st.Notifications[i].Read = true
				return
			}
		}
	})
}

// MarkAllNotificationsRead flips every notification's read flag.
func (s *Store) MarkAllNotificationsRead() {
	s.apply(func(st *State) {
		for i := range st.Notifications {
			st.Notifications[i].Read = true
		}
	})
}

// ClearNotification removes one notification.
func (s *Store) ClearNotification(id string) {
	s.apply(func(st *State) {
		st.Notifications = slices.DeleteFunc(st.Notifications, func(n models.Notification) bool {
			return n.ID == id
		})
	})
}

// ClearAllNotifications removes every notification.
func (s *Store) ClearAllNotifications() {
	s.apply(func(st *State) {
		st.Notifications = []models.Notification{}
	})
}

// ── Startup ──────────────────────────────────────────────────────────

// InitializeData seeds the demo content: the skill catalog when it is
// empty, the fixed badge/leaderboard/stat data, and a welcome
// notification for a first run. Calling it again is a no-op for
// anything already populated.
func (s *Store) InitializeData() {
	s.apply(func(st *State) {
		if len(st.Skills) == 0 {
			st.Skills = seed.Catalog()
		}
		st.Badges = seed.Badges()
		st.Leaderboard = seed.Leaderboard()
		st.Stats = seed.Stats()
		if len(st.Notifications) == 0 {
			st.Notifications = []models.Notification{seed.WelcomeNotification()}
		}
	})
}
