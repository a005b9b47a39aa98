package repository

import (
	"time"

	"github.com/google/uuid"

	"github.com/yolearn/yolearn/internal/models"
	"github.com/yolearn/yolearn/internal/storage"
)

// Skills is the repository for the current user's own posted skills.
type Skills struct {
	store *storage.Store
	key   string
}

// NewSkills creates a skills repository over st.
func NewSkills(st *storage.Store) *Skills {
	return &Skills{store: st, key: storage.KeyUserSkills}
}

// List returns the user's skills in insertion order, oldest first.
func (r *Skills) List() []models.Skill {
	return storage.Load(r.store, r.key, []models.Skill{})
}

// Create materializes draft as a new skill: it assigns a fresh ID,
// snapshots the owner's name/department/year into the denormalized
// fields, stamps the creation time, appends, and persists.
//
// The skill is returned even when the persist fails — the boolean says
// whether the change is durable.
func (r *Skills) Create(owner *models.User, draft models.Skill) (models.Skill, bool) {
	now := time.Now().UTC()
	draft.ID = uuid.NewString()
	draft.CreatedAt = now
	draft.UpdatedAt = now
	if owner != nil {
		draft.OwnerID = owner.ID
		draft.OwnerName = owner.Name
		draft.OwnerDepartment = owner.Department
		draft.OwnerYear = owner.Year
	}

	skills := append(r.List(), draft)
	return draft, r.store.Save(r.key, skills)
}

// SkillPatch is a partial update; nil fields are left unchanged.
type SkillPatch struct {
	Title       *string
	Description *string
	Category    *string
	Level       *models.SkillLevel
	Tags        *[]string
	Duration    *string
	Price       *models.PriceMode
}

// Apply merges the non-nil patch fields into sk.
func (p SkillPatch) Apply(sk *models.Skill) {
	if p.Title != nil {
		sk.Title = *p.Title
	}
	if p.Description != nil {
		sk.Description = *p.Description
	}
	if p.Category != nil {
		sk.Category = *p.Category
	}
	if p.Level != nil {
		sk.Level = *p.Level
	}
	if p.Tags != nil {
		sk.Tags = *p.Tags
	}
	if p.Duration != nil {
		sk.Duration = *p.Duration
	}
	if p.Price != nil {
		sk.Price = *p.Price
	}
}

// Update merges patch into the skill with the given id and stamps its
// last-updated time. It returns false when the id is unknown or the
// persist fails.
func (r *Skills) Update(id string, patch SkillPatch) bool {
	skills := r.List()
	for i := range skills {
		if skills[i].ID != id {
			continue
		}
		patch.Apply(&skills[i])
		skills[i].UpdatedAt = time.Now().UTC()
		return r.store.Save(r.key, skills)
	}
	return false
}

// Remove deletes the skill with the given id. False when unknown.
func (r *Skills) Remove(id string) bool {
	skills := r.List()
	for i := range skills {
		if skills[i].ID == id {
			skills = append(skills[:i], skills[i+1:]...)
			return r.store.Save(r.key, skills)
		}
	}
	return false
}
