package repository

import (
	"github.com/yolearn/yolearn/internal/models"
	"github.com/yolearn/yolearn/internal/storage"
)

// Users is the repository for the current user record. The collection
// holds at most one entity: a missing record means "logged out".
type Users struct {
	store *storage.Store
	key   string
}

// NewUsers creates a user repository over st.
func NewUsers(st *storage.Store) *Users {
	return &Users{store: st, key: storage.KeyUser}
}

// Current returns the stored user, or nil when nobody is logged in.
func (r *Users) Current() *models.User {
	return storage.Load(r.store, r.key, (*models.User)(nil))
}

// Save stores u as the current user.
func (r *Users) Save(u models.User) bool {
	return r.store.Save(r.key, u)
}

// UserPatch is a partial profile edit; nil fields are left unchanged.
// Identity fields (ID, email, join date) are not editable.
type UserPatch struct {
	Name       *string
	Department *string
	Year       *string
	Bio        *string
	AvatarURL  *string
}

// Update merges a profile edit into the current user. False when
// nobody is logged in.
//
// Denormalized owner names on existing skills and matches are
// deliberately NOT rewritten here — they are snapshots of the profile
// at creation time, not live joins.
func (r *Users) Update(patch UserPatch) bool {
	u := r.Current()
	if u == nil {
		return false
	}
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Department != nil {
		u.Department = *patch.Department
	}
	if patch.Year != nil {
		u.Year = *patch.Year
	}
	if patch.Bio != nil {
		u.Bio = *patch.Bio
	}
	if patch.AvatarURL != nil {
		u.AvatarURL = *patch.AvatarURL
	}
	return r.store.Save(r.key, *u)
}

// Clear removes the stored user (logout).
func (r *Users) Clear() bool {
	return r.store.Remove(r.key)
}
