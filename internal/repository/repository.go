// Package repository provides typed CRUD access to the persistent
// collections: the current user's skills, matches, notifications, and
// the user record itself.
//
// ────────────────────────────────────────────────────────────────────
// LEARNING NOTE — package structure
// ────────────────────────────────────────────────────────────────────
// Each repository owns exactly one storage key and is stateless: every
// call reads the whole collection from storage, applies the change, and
// writes the whole collection back. For collections of this size (one
// user's data) that is simpler and safer than caching — there is never
// a stale in-memory copy to reconcile.
//
// No repository call ever returns an error. A failed persist still
// leaves the caller with the in-memory result; the returned boolean is
// the durability signal ("change kept in memory, not durable"). Update
// and Remove additionally return false when the identifier is unknown.
package repository

import (
	"github.com/yolearn/yolearn/internal/storage"
)

// Repositories bundles one repository per collection over a shared
// store. Convenience for the composition root.
type Repositories struct {
	Skills        *Skills
	Matches       *Matches
	Notifications *Notifications
	Users         *Users
}

// New creates all four repositories over st.
func New(st *storage.Store) *Repositories {
	return &Repositories{
		Skills:        NewSkills(st),
		Matches:       NewMatches(st),
		Notifications: NewNotifications(st),
		Users:         NewUsers(st),
	}
}
