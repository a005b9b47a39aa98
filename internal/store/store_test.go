package store

import (
	"fmt"
	"testing"

	"github.com/yolearn/yolearn/internal/models"
	"github.com/yolearn/yolearn/internal/storage"
)

var testStoreCounter int

// newTestStorage returns a fresh in-memory storage backend. Tests that
// exercise rehydration call storage.Open on the same DSN again to
// simulate a second process over the same data, so the DSN is returned
// alongside the handle.
func newTestStorage(t *testing.T) (*storage.Store, string) {
	t.Helper()
	testStoreCounter++
	dsn := fmt.Sprintf("file:appstoretest%d?mode=memory&cache=shared", testStoreCounter)
	st, err := storage.Open(dsn)
	if err != nil {
		t.Fatalf("newTestStorage: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st, dsn
}

func demoUser() *models.User {
	return &models.User{
		ID:         "user-1",
		Name:       "Alex Johnson",
		Email:      "alex@campus.test",
		Department: "Computer Science",
		Year:       "Senior",
	}
}

func TestSetUserAndLogout(t *testing.T) {
	st, _ := newTestStorage(t)
	s := New(st)

	s.SetUser(demoUser())
	state := s.State()
	if !state.IsAuthenticated || state.User == nil || state.User.Name != "Alex Johnson" {
		t.Fatalf("authenticated state wrong: %+v", state.User)
	}

	s.InitializeData()
	s.AddUserSkill(models.Skill{Title: "React Basics", Category: "Programming"})
	s.AddPendingMatch(models.Match{SkillName: "React Basics"})
	s.AddNotification(models.Notification{Title: "hello"})

	s.Logout()
	state = s.State()
	if state.IsAuthenticated || state.User != nil {
		t.Error("still authenticated after logout")
	}
	if len(state.UserSkills) != 0 || len(state.Matches) != 0 ||
		len(state.PendingMatches) != 0 || len(state.Notifications) != 0 ||
		state.UnreadCount != 0 {
		t.Errorf("user-scoped collections not cleared: %+v", state)
	}
	// Catalog-level skills survive logout.
	if len(state.Skills) == 0 {
		t.Error("catalog cleared by logout")
	}
}

func TestInitializeDataIdempotent(t *testing.T) {
	st, _ := newTestStorage(t)
	s := New(st)

	s.InitializeData()
	first := len(s.State().Skills)
	if first == 0 {
		t.Fatal("catalog not seeded")
	}
	s.InitializeData()
	if got := len(s.State().Skills); got != first {
		t.Errorf("catalog duplicated: %d → %d", first, got)
	}
	if got := len(s.State().Notifications); got != 1 {
		t.Errorf("welcome notification duplicated or missing: %d", got)
	}
	if len(s.State().Badges) == 0 || len(s.State().Leaderboard) == 0 {
		t.Error("fixed demo data not populated")
	}
}

func TestAddUserSkillSnapshotsOwner(t *testing.T) {
	st, _ := newTestStorage(t)
	s := New(st)
	s.SetUser(demoUser())

	s.AddUserSkill(models.Skill{Title: "Guitar Basics", Category: "Music"})
	sk := s.State().UserSkills[0]
	if sk.ID == "" || sk.OwnerName != "Alex Johnson" || sk.OwnerDepartment != "Computer Science" {
		t.Errorf("owner snapshot missing: %+v", sk)
	}
}

func TestAcceptMatchMovesPendingToActive(t *testing.T) {
	st, _ := newTestStorage(t)
	s := New(st)

	s.AddPendingMatch(models.Match{SkillName: "Spanish Conversation", LearnerName: "Alex"})
	id := s.State().PendingMatches[0].ID

	s.AcceptMatch(id)
	state := s.State()
	if len(state.PendingMatches) != 0 {
		t.Error("match still pending after accept")
	}
	if len(state.Matches) != 1 || state.Matches[0].Status != models.MatchAccepted {
		t.Fatalf("match not moved to active: %+v", state.Matches)
	}
	if state.Matches[0].AcceptedAt == nil {
		t.Error("acceptance time not stamped")
	}

	// Accepting the same id again is a no-op — it is no longer pending.
	s.AcceptMatch(id)
	state = s.State()
	if len(state.Matches) != 1 || len(state.PendingMatches) != 0 {
		t.Errorf("second accept changed state: %d active, %d pending",
			len(state.Matches), len(state.PendingMatches))
	}
}

func TestRejectMatchRemovesPending(t *testing.T) {
	st, _ := newTestStorage(t)
	s := New(st)

	s.AddPendingMatch(models.Match{SkillName: "Calculus II"})
	id := s.State().PendingMatches[0].ID
	s.RejectMatch(id)

	state := s.State()
	if len(state.PendingMatches) != 0 || len(state.Matches) != 0 {
		t.Errorf("reject left a match behind: %+v", state)
	}
}

func TestUnreadCountTracksNotifications(t *testing.T) {
	st, _ := newTestStorage(t)
	s := New(st)

	s.AddNotification(models.Notification{Title: "a"})
	s.AddNotification(models.Notification{Title: "b"})
	s.AddNotification(models.Notification{Title: "c"})
	if got := s.State().UnreadCount; got != 3 {
		t.Fatalf("unread = %d, want 3", got)
	}
	// Newest first.
	if s.State().Notifications[0].Title != "c" {
		t.Error("notifications not prepended")
	}

	readID := s.State().Notifications[0].ID
	s.MarkNotificationRead(readID)
	if got := s.State().UnreadCount; got != 2 {
		t.Errorf("unread = %d, want 2", got)
	}
	// Marking an already-read notification changes nothing.
	s.MarkNotificationRead(readID)
	if got := s.State().UnreadCount; got != 2 {
		t.Errorf("unread after re-mark = %d, want 2", got)
	}

	// Clearing a read item leaves the count; clearing an unread one
	// decrements it.
	s.ClearNotification(readID)
	if got := s.State().UnreadCount; got != 2 {
		t.Errorf("unread after clearing read item = %d, want 2", got)
	}
	s.ClearNotification(s.State().Notifications[0].ID)
	if got := s.State().UnreadCount; got != 1 {
		t.Errorf("unread after clearing unread item = %d, want 1", got)
	}

	s.MarkAllNotificationsRead()
	if got := s.State().UnreadCount; got != 0 {
		t.Errorf("unread after mark-all = %d, want 0", got)
	}
	for _, n := range s.State().Notifications {
		if !n.Read {
			t.Errorf("notification %s still unread after mark-all", n.ID)
		}
	}

	s.ClearAllNotifications()
	if len(s.State().Notifications) != 0 || s.State().UnreadCount != 0 {
		t.Error("clear-all left notifications behind")
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	st, dsn := newTestStorage(t)
	s := New(st)

	s.SetUser(demoUser())
	s.InitializeData()
	s.AddUserSkill(models.Skill{Title: "Data Structures", Category: "Programming"})
	s.ToggleDarkMode()
	s.SetCurrentPage("skills")
	s.SetSearchQuery("guitar")          // transient — must not survive
	s.SetSelectedCategory("Music")      // transient — must not survive

	// A second Open on the same shared-cache DSN sees the same data, so
	// this models a fresh process over the same storage file.
	st2, err := storage.Open(dsn)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	t.Cleanup(func() { st2.Close() })
	s2 := New(st2)

	state := s2.State()
	if !state.IsAuthenticated || state.User == nil || state.User.Email != "alex@campus.test" {
		t.Errorf("user not rehydrated: %+v", state.User)
	}
	if len(state.UserSkills) != 1 || state.UserSkills[0].Title != "Data Structures" {
		t.Errorf("user skills not rehydrated: %+v", state.UserSkills)
	}
	if !state.DarkMode || state.CurrentPage != "skills" {
		t.Errorf("theme/page not rehydrated: dark=%v page=%q", state.DarkMode, state.CurrentPage)
	}
	if state.UnreadCount != countUnread(state.Notifications) {
		t.Errorf("unread count not recomputed: %d vs %d notifications unread",
			state.UnreadCount, countUnread(state.Notifications))
	}
	// Outside the whitelist: filters reset, catalog reseeded separately.
	if state.SearchQuery != "" || state.SelectedCategory != "All" {
		t.Errorf("transient filter state leaked into persistence: %q / %q",
			state.SearchQuery, state.SelectedCategory)
	}
	if len(state.Skills) != 0 {
		t.Error("catalog skills were persisted; they must be reseeded via InitializeData")
	}
}

func TestRehydrateMalformedState(t *testing.T) {
	st, _ := newTestStorage(t)
	// Plant garbage under the app-state key; New must fall back to
	// defaults instead of failing.
	st.Save(storage.KeyAppState, "not an object")

	s := New(st)
	state := s.State()
	if state.IsAuthenticated || state.User != nil {
		t.Error("malformed state produced a session")
	}
	if state.UserSkills == nil || len(state.UserSkills) != 0 {
		t.Error("defaults not applied for collections")
	}
	if state.CurrentPage != "dashboard" || state.SelectedCategory != "All" {
		t.Errorf("defaults not applied for UI state: %+v", state)
	}
}

func TestSubscribeNotify(t *testing.T) {
	st, _ := newTestStorage(t)
	s := New(st)

	var got []int
	unsub := s.Subscribe(func(state State) {
		got = append(got, state.UnreadCount)
	})

	s.AddNotification(models.Notification{Title: "a"})
	s.AddNotification(models.Notification{Title: "b"})
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("subscriber snapshots wrong: %v", got)
	}

	unsub()
	s.AddNotification(models.Notification{Title: "c"})
	if len(got) != 2 {
		t.Error("subscriber called after unsubscribe")
	}
}

func TestSnapshotIsolation(t *testing.T) {
	st, _ := newTestStorage(t)
	s := New(st)
	s.InitializeData()

	snap := s.State()
	snap.Skills[0].Title = "mutated"
	if s.State().Skills[0].Title == "mutated" {
		t.Error("snapshot mutation leaked into the store")
	}
}
