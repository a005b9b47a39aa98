package repository

import (
	"time"

	"github.com/google/uuid"

	"github.com/yolearn/yolearn/internal/models"
	"github.com/yolearn/yolearn/internal/storage"
)

// Notifications is the repository for the current user's notifications.
//
// Unlike the other collections, notifications are stored newest-first:
// Create prepends, so List needs no re-sorting and the UI can render
// the stored order directly.
//
// The unread count is derived from the list, never maintained as a
// separate counter — there is exactly one source of truth, so the
// read-flag operations cannot drift out of sync with it.
type Notifications struct {
	store *storage.Store
	key   string
}

// NewNotifications creates a notifications repository over st.
func NewNotifications(st *storage.Store) *Notifications {
	return &Notifications{store: st, key: storage.KeyNotifications}
}

// List returns notifications newest-first.
func (r *Notifications) List() []models.Notification {
	return storage.Load(r.store, r.key, []models.Notification{})
}

// Create materializes draft as a new unread notification and prepends
// it to the collection.
func (r *Notifications) Create(draft models.Notification) (models.Notification, bool) {
	draft.ID = uuid.NewString()
	draft.Read = false
	draft.CreatedAt = time.Now().UTC()

	list := append([]models.Notification{draft}, r.List()...)
	return draft, r.store.Save(r.key, list)
}

// UnreadCount returns the number of notifications with Read == false.
func (r *Notifications) UnreadCount() int {
	n := 0
	for _, nt := range r.List() {
		if !nt.Read {
			n++
		}
	}
	return n
}

// MarkRead flips the read flag on one notification. False when the id
// is unknown; marking an already-read notification is a persisted no-op.
func (r *Notifications) MarkRead(id string) bool {
	list := r.List()
	for i := range list {
		if list[i].ID == id {
			list[i].Read = true
			return r.store.Save(r.key, list)
		}
	}
	return false
}

// MarkAllRead flips the read flag on every notification.
func (r *Notifications) MarkAllRead() bool {
	list := r.List()
	for i := range list {
		list[i].Read = true
	}
	return r.store.Save(r.key, list)
}

// Clear removes one notification. False when the id is unknown.
func (r *Notifications) Clear(id string) bool {
	list := r.List()
	for i := range list {
		if list[i].ID == id {
			list = append(list[:i], list[i+1:]...)
			return r.store.Save(r.key, list)
		}
	}
	return false
}

// ClearAll removes every notification.
func (r *Notifications) ClearAll() bool {
	return r.store.Save(r.key, []models.Notification{})
}
