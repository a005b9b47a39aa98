package models

import "time"

// SkillLevel is the self-assessed difficulty of a posted skill.
type SkillLevel string

const (
	LevelBeginner     SkillLevel = "Beginner"
	LevelIntermediate SkillLevel = "Intermediate"
	LevelAdvanced     SkillLevel = "Advanced"
	LevelExpert       SkillLevel = "Expert"
)

// SkillDirection says whether the poster offers to teach the skill or
// wants to learn it.
type SkillDirection string

const (
	DirectionTeach SkillDirection = "teach"
	DirectionLearn SkillDirection = "learn"
)

// PriceMode is how a session is paid for. There is no money on the
// platform — a skill is either taught for free or swapped for another.
type PriceMode string

const (
	PriceFree     PriceMode = "Free"
	PriceExchange PriceMode = "Skill Exchange"
)

// MatchStatus represents the lifecycle state of a match.
//
// Transitions are monotonic: pending → accepted or rejected, and
// accepted → completed. Nothing ever re-enters pending.
type MatchStatus string

const (
	MatchPending   MatchStatus = "pending"
	MatchAccepted  MatchStatus = "accepted"
	MatchCompleted MatchStatus = "completed"
	MatchRejected  MatchStatus = "rejected"
)

// NotificationType tags a notification with the platform event that
// produced it. The UI picks an icon and accent colour from this.
type NotificationType string

const (
	NotificationMatch   NotificationType = "match"
	NotificationSession NotificationType = "session"
	NotificationBadge   NotificationType = "badge"
	NotificationRating  NotificationType = "rating"
	NotificationMessage NotificationType = "message"
	NotificationSystem  NotificationType = "system"
)

// Categories is the fixed set of skill categories a post can belong to.
// "All" is not a category — it is the filter sentinel meaning "no
// category filter" and must never appear on a stored skill.
var Categories = []string{
	"Programming", "Design", "Marketing", "Languages", "Music",
	"Sports", "Cooking", "Photography", "Writing", "Mathematics",
	"Science", "Art", "Business", "Finance", "Health & Fitness",
}

// User is a student account. Exactly one user is "current" per session;
// a nil current user means logged out.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Department   string    `json:"department"`
	Year         string    `json:"year"`
	Bio          string    `json:"bio"`
	AvatarURL    string    `json:"avatar_url"`
	SkillsCount  int       `json:"skills_count"`
	BadgesCount  int       `json:"badges_count"`
	JoinedAt     time.Time `json:"joined_at"`
}

// Skill is a teachable or learnable topic posted by a student.
//
// The Owner* fields are denormalized snapshots taken from the current
// user at creation time. They are deliberately never updated when the
// user later edits their profile — historical posts keep the name the
// poster had when they posted.
type Skill struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Level       SkillLevel     `json:"level"`
	Direction   SkillDirection `json:"direction"`

	OwnerID         string `json:"owner_id"`
	OwnerName       string `json:"owner_name"`
	OwnerDepartment string `json:"owner_department"`
	OwnerYear       string `json:"owner_year"`

	// Rating of exactly 0 is the sentinel for "no ratings yet", not a
	// zero-star rating.
	Rating            float64   `json:"rating"`
	SessionsCompleted int       `json:"sessions_completed"`
	Tags              []string  `json:"tags,omitempty"`
	Duration          string    `json:"duration,omitempty"`
	Price             PriceMode `json:"price,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Match is a bilateral pairing between a learner and a teacher around
// one skill. Names are denormalized snapshots, same trade-off as Skill.
type Match struct {
	ID          string      `json:"id"`
	SkillID     string      `json:"skill_id"`
	SkillName   string      `json:"skill_name"`
	LearnerID   string      `json:"learner_id"`
	LearnerName string      `json:"learner_name"`
	TeacherID   string      `json:"teacher_id"`
	TeacherName string      `json:"teacher_name"`
	Status      MatchStatus `json:"status"`
	Message     string      `json:"message,omitempty"`
	ScheduledAt *time.Time  `json:"scheduled_at,omitempty"`
	AcceptedAt  *time.Time  `json:"accepted_at,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// Notification is a timestamped, dismissible message surfaced to the
// current user about a platform event.
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Icon      string           `json:"icon,omitempty"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"created_at"`
}

// Badge is a fixed achievement a student can earn. The badge catalogue
// is seeded demo data; earning logic is a future extension.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// LeaderboardEntry is one row of the demo community leaderboard.
type LeaderboardEntry struct {
	Rank       int    `json:"rank"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Points     int    `json:"points"`
	Badge      string `json:"badge"`
}

// Stat is one dashboard stat card (value and trend are display strings).
type Stat struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Change string `json:"change"`
	Trend  string `json:"trend"`
	Icon   string `json:"icon"`
}

// Credentials is the plain email/password pair supplied by the login
// form. The mock session provider accepts any non-empty pair.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest carries the profile fields entered on the signup form.
type SignupRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Department string `json:"department"`
	Year       string `json:"year"`
	Bio        string `json:"bio"`
}
