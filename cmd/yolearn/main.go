// main is the entry point for the YoLearn demo.
//
// It is the composition root — the single place where the independent
// packages (storage, store, repository, session, search) are wired
// together. The scripted walkthrough below stands in for the browser
// UI: it performs the same actions a user would (log in, post a skill,
// request and accept a match, read notifications, search the catalog)
// through the same store actions the UI would call, then exits. Run it
// twice to see the persisted session survive the restart.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"github.com/yolearn/yolearn/internal/models"
	"github.com/yolearn/yolearn/internal/repository"
	"github.com/yolearn/yolearn/internal/search"
	"github.com/yolearn/yolearn/internal/session"
	"github.com/yolearn/yolearn/internal/storage"
	"github.com/yolearn/yolearn/internal/store"
)

func main() {
	// A .env file is optional; real environment variables win.
	_ = godotenv.Load()

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: logLevel(getenv("YOLEARN_LOG_LEVEL", "info")),
	})))

	dsn := getenv("YOLEARN_DB",
		"yolearn.db?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	secret := getenv("YOLEARN_SECRET", "changeme-use-a-real-secret-in-production")

	st, err := storage.Open(dsn)
	if err != nil {
		slog.Error("open storage", "err", err)
		os.Exit(1)
	}
	defer st.Close()

	app := store.New(st)
	repos := repository.New(st)
	app.InitializeData()

	// Log every state change the way the UI would re-render on it.
	unsubscribe := app.Subscribe(func(s store.State) {
		slog.Debug("state changed",
			"page", s.CurrentPage,
			"userSkills", len(s.UserSkills),
			"pending", len(s.PendingMatches),
			"matches", len(s.Matches),
			"unread", s.UnreadCount)
	})
	defer unsubscribe()

	ctx := context.Background()

	// ── Login ────────────────────────────────────────────────────────
	state := app.State()
	if state.IsAuthenticated {
		slog.Info("restored session", "user", state.User.Name, "email", state.User.Email)
	} else {
		provider := &session.Mock{Delay: 1500 * time.Millisecond}
		user, err := provider.Authenticate(ctx, models.Credentials{
			Email:    "alex@campus.test",
			Password: "demo1234",
		})
		if err != nil {
			slog.Error("login", "err", err)
			os.Exit(1)
		}
		token, err := session.GenerateToken(user.ID, user.Email, secret)
		if err != nil {
			slog.Error("mint session token", "err", err)
			os.Exit(1)
		}
		app.SetUser(user)
		repos.Users.Save(*user)
		slog.Info("logged in", "user", user.Name, "token", token[:16]+"…")
	}

	// ── Post a skill ─────────────────────────────────────────────────
	app.SetCurrentPage("post-skill")
	posted, durable := repos.Skills.Create(app.State().User, models.Skill{
		Title:       "Go Fundamentals",
		Description: "Goroutines, channels, and the standard library.",
		Category:    "Programming",
		Level:       models.LevelIntermediate,
		Direction:   models.DirectionTeach,
		Tags:        []string{"Go", "Concurrency"},
		Duration:    "5 weeks",
		Price:       models.PriceExchange,
	})
	app.AddUserSkill(posted)
	app.AddSkill(posted)
	slog.Info("posted skill", "title", posted.Title, "id", posted.ID, "durable", durable)

	// ── A match request arrives and gets accepted ────────────────────
	app.AddPendingMatch(models.Match{
		SkillID:     posted.ID,
		SkillName:   posted.Title,
		LearnerName: "Sarah Chen",
		TeacherID:   posted.OwnerID,
		TeacherName: posted.OwnerName,
		Message:     "I'd love to learn Go from you!",
	})
	app.AddNotification(models.Notification{
		Type:    models.NotificationMatch,
		Title:   "New Match Request",
		Message: "Sarah Chen wants to learn Go Fundamentals from you",
		Icon:    "🤝",
	})

	pending := app.State().PendingMatches
	app.AcceptMatch(pending[len(pending)-1].ID)
	slog.Info("accepted match",
		"learner", "Sarah Chen",
		"active", len(app.State().Matches),
		"pending", len(app.State().PendingMatches))

	// ── Notifications ────────────────────────────────────────────────
	app.SetCurrentPage("notifications")
	for _, n := range app.State().Notifications {
		slog.Info("notification", "type", n.Type, "title", n.Title, "read", n.Read)
	}
	app.MarkAllNotificationsRead()
	slog.Info("marked all read", "unread", app.State().UnreadCount)

	// ── Browse the catalog ───────────────────────────────────────────
	app.SetCurrentPage("skills")
	app.SetSearchQuery("react")
	app.SetSelectedCategory("Programming")

	state = app.State()
	visible := search.Visible(state.Skills, search.Criteria{
		Query:    state.SearchQuery,
		Category: state.SelectedCategory,
		SortBy:   search.SortRating,
	})
	for _, sk := range visible {
		slog.Info("search result",
			"title", sk.Title, "by", sk.OwnerName, "rating", sk.Rating)
	}

	slog.Info("demo complete", "db", dsn)
}

func logLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// getenv returns the value of the named environment variable, or
// fallback if the variable is not set or is empty.
func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
