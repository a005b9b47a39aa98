// Package seed holds the fixed demo data the application starts from.
//
// Every record carries a pre-determined ID so that seeding is
// idempotent: re-running initialization against a store that already
// holds the catalog produces the same rows, never duplicates.
package seed

import (
	"time"

	"github.com/yolearn/yolearn/internal/models"
)

// Pre-determined IDs keep the seed idempotent across restarts.
const (
	SkillReactID    = "seed-skill-react-0000-0000-000000000001"
	SkillSpanishID  = "seed-skill-spanish-0000-0000-000000000002"
	SkillCalculusID = "seed-skill-calculus-0000-0000-000000000003"
	SkillGuitarID   = "seed-skill-guitar-0000-0000-000000000004"
	SkillDataID     = "seed-skill-datastruct-0000-0000-000000000005"

	WelcomeNotificationID = "seed-notification-welcome-000000000001"
)

// Catalog returns the browsable demo skill catalog. Creation dates are
// fixed so that "newest" sorting is deterministic in the demo.
func Catalog() []models.Skill {
	return []models.Skill{
		{
			ID:                SkillReactID,
			Title:             "React Development",
			Description:       "Learn modern React with hooks, context, and best practices.",
			Category:          "Programming",
			Level:             models.LevelIntermediate,
			Direction:         models.DirectionTeach,
			OwnerName:         "Sarah Chen",
			OwnerDepartment:   "Computer Science",
			OwnerYear:         "Junior",
			Rating:            4.9,
			SessionsCompleted: 12,
			Tags:              []string{"React", "JavaScript", "Frontend"},
			Duration:          "6 weeks",
			Price:             models.PriceFree,
			CreatedAt:         time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:                SkillSpanishID,
			Title:             "Spanish Conversation",
			Description:       "Practice conversational Spanish with a native speaker.",
			Category:          "Languages",
			Level:             models.LevelBeginner,
			Direction:         models.DirectionTeach,
			OwnerName:         "Carlos Rodriguez",
			OwnerDepartment:   "Literature",
			OwnerYear:         "Senior",
			Rating:            4.8,
			SessionsCompleted: 24,
			Tags:              []string{"Spanish", "Conversation", "Language"},
			Duration:          "8 weeks",
			Price:             models.PriceExchange,
			CreatedAt:         time.Date(2026, 8, 12, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:              SkillCalculusID,
			Title:           "Calculus II",
			Description:     "Need help with integration techniques and series.",
			Category:        "Mathematics",
			Level:           models.LevelAdvanced,
			Direction:       models.DirectionLearn,
			OwnerName:       "Mike Johnson",
			OwnerDepartment: "Engineering",
			OwnerYear:       "Sophomore",
			// Rating 0 is the "no ratings yet" sentinel.
			Rating:            0,
			SessionsCompleted: 0,
			CreatedAt:         time.Date(2026, 8, 14, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:                SkillGuitarID,
			Title:             "Guitar Basics",
			Description:       "Learn acoustic guitar fundamentals and popular songs.",
			Category:          "Music",
			Level:             models.LevelBeginner,
			Direction:         models.DirectionTeach,
			OwnerName:         "Emma Williams",
			OwnerDepartment:   "Music",
			OwnerYear:         "Junior",
			Rating:            4.7,
			SessionsCompleted: 18,
			Tags:              []string{"Guitar", "Acoustic", "Music"},
			Duration:          "4 weeks",
			Price:             models.PriceExchange,
			CreatedAt:         time.Date(2026, 8, 13, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:                SkillDataID,
			Title:             "Data Structures",
			Description:       "Master arrays, linked lists, trees, and algorithms.",
			Category:          "Programming",
			Level:             models.LevelIntermediate,
			Direction:         models.DirectionTeach,
			OwnerName:         "David Kim",
			OwnerDepartment:   "Computer Science",
			OwnerYear:         "Senior",
			Rating:            4.9,
			SessionsCompleted: 15,
			Tags:              []string{"Algorithms", "Interviews"},
			Duration:          "6 weeks",
			Price:             models.PriceFree,
			CreatedAt:         time.Date(2026, 8, 11, 9, 0, 0, 0, time.UTC),
		},
	}
}

// Badges returns the fixed achievement catalog.
func Badges() []models.Badge {
	return []models.Badge{
		{ID: "badge-first-match", Name: "First Match", Icon: "🎯", Description: "Completed your first skill match"},
		{ID: "badge-helpful-mentor", Name: "Helpful Mentor", Icon: "🏆", Description: "Helped 10+ students"},
		{ID: "badge-quick-learner", Name: "Quick Learner", Icon: "⚡", Description: "Learned 5+ new skills"},
		{ID: "badge-community-star", Name: "Community Star", Icon: "⭐", Description: "Received 4.5+ average rating"},
		{ID: "badge-early-adopter", Name: "Early Adopter", Icon: "🚀", Description: "One of the first 100 users"},
		{ID: "badge-skill-master", Name: "Skill Master", Icon: "🎓", Description: "Expert in 3+ skill categories"},
		{ID: "badge-super-helper", Name: "Super Helper", Icon: "💫", Description: "Completed 25+ teaching sessions"},
		{ID: "badge-rising-star", Name: "Rising Star", Icon: "🌟", Description: "Top rated teacher this month"},
	}
}

// Leaderboard returns the demo community leaderboard.
func Leaderboard() []models.LeaderboardEntry {
	return []models.LeaderboardEntry{
		{Rank: 1, Name: "Sarah Chen", Department: "Computer Science", Points: 2450, Badge: "👑"},
		{Rank: 2, Name: "Carlos Rodriguez", Department: "Literature", Points: 2380, Badge: "🥈"},
		{Rank: 3, Name: "Emma Williams", Department: "Music", Points: 2150, Badge: "🥉"},
		{Rank: 4, Name: "David Kim", Department: "Computer Science", Points: 1980, Badge: "🏆"},
		{Rank: 5, Name: "Alex Johnson", Department: "Engineering", Points: 1850, Badge: "⭐"},
	}
}

// Stats returns the demo dashboard stat cards.
func Stats() []models.Stat {
	return []models.Stat{
		{Title: "Active Skills", Value: "127", Change: "+12%", Trend: "up", Icon: "🎯"},
		{Title: "Successful Matches", Value: "89", Change: "+8%", Trend: "up", Icon: "🤝"},
		{Title: "Students Helped", Value: "156", Change: "+15%", Trend: "up", Icon: "👥"},
		{Title: "Avg Rating", Value: "4.8", Change: "+0.2", Trend: "up", Icon: "⭐"},
	}
}

// WelcomeNotification is shown to a user whose notification list is
// still empty on first run.
func WelcomeNotification() models.Notification {
	return models.Notification{
		ID:        WelcomeNotificationID,
		Type:      models.NotificationSystem,
		Title:     "Welcome to YoLearn!",
		Message:   "Start by posting your first skill or browsing available skills",
		Icon:      "👋",
		CreatedAt: time.Now().UTC(),
	}
}
