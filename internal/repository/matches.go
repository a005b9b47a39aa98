package repository

import (
	"time"

	"github.com/google/uuid"

	"github.com/yolearn/yolearn/internal/models"
	"github.com/yolearn/yolearn/internal/storage"
)

// Matches is the repository for the current user's matches.
type Matches struct {
	store *storage.Store
	key   string
}

// NewMatches creates a matches repository over st.
func NewMatches(st *storage.Store) *Matches {
	return &Matches{store: st, key: storage.KeyMatches}
}

// List returns matches in insertion order, oldest first.
func (r *Matches) List() []models.Match {
	return storage.Load(r.store, r.key, []models.Match{})
}

// Create materializes draft as a new match. A match always starts
// pending — a learner requested a skill and the teacher has not yet
// responded — so any status on the draft is overwritten.
func (r *Matches) Create(draft models.Match) (models.Match, bool) {
	now := time.Now().UTC()
	draft.ID = uuid.NewString()
	draft.Status = models.MatchPending
	draft.CreatedAt = now
	draft.UpdatedAt = now

	matches := append(r.List(), draft)
	return draft, r.store.Save(r.key, matches)
}

// MatchPatch is a partial update; nil fields are left unchanged.
type MatchPatch struct {
	Status      *models.MatchStatus
	ScheduledAt *time.Time
	Message     *string
}

// Update merges patch into the match with the given id and stamps its
// last-updated time. Callers are responsible for only requesting legal
// status transitions (pending→accepted/rejected, accepted→completed);
// the application store enforces that for its own collections.
func (r *Matches) Update(id string, patch MatchPatch) bool {
	matches := r.List()
	for i := range matches {
		if matches[i].ID != id {
			continue
		}
		m := &matches[i]
		if patch.Status != nil {
			m.Status = *patch.Status
			if *patch.Status == models.MatchAccepted && m.AcceptedAt == nil {
				at := time.Now().UTC()
				m.AcceptedAt = &at
			}
		}
		if patch.ScheduledAt != nil {
			m.ScheduledAt = patch.ScheduledAt
		}
		if patch.Message != nil {
			m.Message = *patch.Message
		}
		m.UpdatedAt = time.Now().UTC()
		return r.store.Save(r.key, matches)
	}
	return false
}

// Remove deletes the match with the given id. Only a still-pending
// match that was rejected is ever removed in the current design, but
// the repository does not police that.
func (r *Matches) Remove(id string) bool {
	matches := r.List()
	for i := range matches {
		if matches[i].ID == id {
			matches = append(matches[:i], matches[i+1:]...)
			return r.store.Save(r.key, matches)
		}
	}
	return false
}
