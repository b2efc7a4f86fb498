package document

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lalith-99/taskflow/internal/store"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return Open(filepath.Join(t.TempDir(), "data.json"), zap.NewNop())
}

func TestAbsentFileLoadsEmptyCollections(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	teams, err := NewTeamStore(s).List(ctx, "")
	require.NoError(t, err)
	require.Empty(t, teams)

	tasks, err := NewTaskStore(s).List(ctx, "")
	require.NoError(t, err)
	require.Empty(t, tasks)

	messages, err := NewMessageStore(s).List(ctx)
	require.NoError(t, err)
	require.Empty(t, messages)

	u, err := NewUserStore(s).GetByEmail(ctx, "nobody@x.com")
	require.NoError(t, err)
	require.Nil(t, u)
}

func TestUserCreateAndGetByEmail(t *testing.T) {
	s := newTestStore(t)
	users := NewUserStore(s)
	ctx := context.Background()

	created, err := users.Create(ctx, "Ada", "ada@x.com", "hash", "member")
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := users.GetByEmail(ctx, "ada@x.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, "hash", got.PasswordHash)

	missing, err := users.GetByEmail(ctx, "grace@x.com")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestTeamCreateSeedsLeaderAsMember(t *testing.T) {
	s := newTestStore(t)
	teams := NewTeamStore(s)
	ctx := context.Background()

	team, err := teams.Create(ctx, "core", "leader-1")
	require.NoError(t, err)
	require.Equal(t, []string{"leader-1"}, team.Members)

	// An empty leader still gets seeded. Faithful to the original.
	empty, err := teams.Create(ctx, "leaderless", "")
	require.NoError(t, err)
	require.Equal(t, []string{""}, empty.Members)
}

func TestTeamListFiltersByLeader(t *testing.T) {
	s := newTestStore(t)
	teams := NewTeamStore(s)
	ctx := context.Background()

	_, err := teams.Create(ctx, "a", "leader-1")
	require.NoError(t, err)
	_, err = teams.Create(ctx, "b", "leader-2")
	require.NoError(t, err)

	all, err := teams.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)

	mine, err := teams.List(ctx, "leader-2")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, "b", mine[0].Name)
}

func TestAddMemberIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	teams := NewTeamStore(s)
	ctx := context.Background()

	team, err := teams.Create(ctx, "core", "leader-1")
	require.NoError(t, err)

	require.NoError(t, teams.AddMember(ctx, team.ID, "user-7"))
	require.NoError(t, teams.AddMember(ctx, team.ID, "user-7"))

	listed, err := teams.List(ctx, "")
	require.NoError(t, err)
	require.Equal(t, []string{"leader-1", "user-7"}, listed[0].Members)
}

func TestAddMemberUnknownTeam(t *testing.T) {
	s := newTestStore(t)
	teams := NewTeamStore(s)
	ctx := context.Background()

	err := teams.AddMember(ctx, "no-such-team", "user-7")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestTaskStatusRoundTrip(t *testing.T) {
	s := newTestStore(t)
	tasks := NewTaskStore(s)
	ctx := context.Background()

	created, err := tasks.Create(ctx, store.TaskParams{
		Title:       "ship it",
		Description: "release 1.0",
		AssignedTo:  "user-1",
		AssignedBy:  "user-2",
		Deadline:    "friday",
	})
	require.NoError(t, err)
	require.Equal(t, "pending", created.Status)
	require.Empty(t, created.Updates)

	status := "in_progress"
	updated, err := tasks.UpdateStatus(ctx, created.ID, &status)
	require.NoError(t, err)
	require.Equal(t, "in_progress", updated.Status)

	listed, err := tasks.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, "in_progress", listed[0].Status)
	require.Equal(t, created.Title, listed[0].Title)
	require.Equal(t, created.Description, listed[0].Description)
	require.Equal(t, created.AssignedTo, listed[0].AssignedTo)
	require.Equal(t, created.AssignedBy, listed[0].AssignedBy)
	require.Equal(t, created.Deadline, listed[0].Deadline)
	require.True(t, created.CreatedAt.Equal(listed[0].CreatedAt))
}

func TestUpdateStatusWithoutStatusKeepsTask(t *testing.T) {
	s := newTestStore(t)
	tasks := NewTaskStore(s)
	ctx := context.Background()

	created, err := tasks.Create(ctx, store.TaskParams{Title: "keep"})
	require.NoError(t, err)

	got, err := tasks.UpdateStatus(ctx, created.ID, nil)
	require.NoError(t, err)
	require.Equal(t, "pending", got.Status)
}

func TestUpdateStatusUnknownTask(t *testing.T) {
	s := newTestStore(t)
	tasks := NewTaskStore(s)
	ctx := context.Background()

	status := "done"
	_, err := tasks.UpdateStatus(ctx, "no-such-task", &status)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestAddUpdateUnknownTaskLeavesOthersUntouched(t *testing.T) {
	s := newTestStore(t)
	tasks := NewTaskStore(s)
	ctx := context.Background()

	created, err := tasks.Create(ctx, store.TaskParams{Title: "watched"})
	require.NoError(t, err)

	_, err = tasks.AddUpdate(ctx, "no-such-task", "hello", "user-1")
	require.ErrorIs(t, err, store.ErrNotFound)

	listed, err := tasks.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, created.ID, listed[0].ID)
	require.Empty(t, listed[0].Updates)
}

func TestAddUpdateAppendsToFeed(t *testing.T) {
	s := newTestStore(t)
	tasks := NewTaskStore(s)
	ctx := context.Background()

	created, err := tasks.Create(ctx, store.TaskParams{Title: "feed"})
	require.NoError(t, err)

	first, err := tasks.AddUpdate(ctx, created.ID, "started", "user-1")
	require.NoError(t, err)
	second, err := tasks.AddUpdate(ctx, created.ID, "halfway", "user-1")
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)

	listed, err := tasks.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, listed[0].Updates, 2)
	require.Equal(t, "started", listed[0].Updates[0].Message)
	require.Equal(t, "halfway", listed[0].Updates[1].Message)
}

func TestTaskListFiltersByTeam(t *testing.T) {
	s := newTestStore(t)
	tasks := NewTaskStore(s)
	ctx := context.Background()

	_, err := tasks.Create(ctx, store.TaskParams{Title: "a", TeamID: "team-1"})
	require.NoError(t, err)
	_, err = tasks.Create(ctx, store.TaskParams{Title: "b", TeamID: "team-2"})
	require.NoError(t, err)
	_, err = tasks.Create(ctx, store.TaskParams{Title: "c"})
	require.NoError(t, err)

	all, err := tasks.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)

	team1, err := tasks.List(ctx, "team-1")
	require.NoError(t, err)
	require.Len(t, team1, 1)
	require.Equal(t, "a", team1[0].Title)
}

// Reopening the same path simulates a process restart: everything written
// before must come back with identical field values.
func TestMessageSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	ctx := context.Background()

	created, err := NewMessageStore(Open(path, zap.NewNop())).Create(ctx, store.MessageParams{
		SenderID:    "user-1",
		Content:     "hello team",
		ChatType:    "project",
		RecipientID: "",
	})
	require.NoError(t, err)

	reopened := NewMessageStore(Open(path, zap.NewNop()))
	messages, err := reopened.List(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	require.Equal(t, created.ID, messages[0].ID)
	require.Equal(t, "user-1", messages[0].SenderID)
	require.Equal(t, "hello team", messages[0].Content)
	require.Equal(t, "project", messages[0].ChatType)
	require.True(t, created.Timestamp.Equal(messages[0].Timestamp))
}

func TestCollectionsShareOneDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	s := Open(path, zap.NewNop())
	ctx := context.Background()

	_, err := NewUserStore(s).Create(ctx, "Ada", "ada@x.com", "hash", "member")
	require.NoError(t, err)
	_, err = NewTeamStore(s).Create(ctx, "core", "leader-1")
	require.NoError(t, err)

	// A write to one collection must not clobber another.
	reopened := Open(path, zap.NewNop())
	u, err := NewUserStore(reopened).GetByEmail(ctx, "ada@x.com")
	require.NoError(t, err)
	require.NotNil(t, u)

	teams, err := NewTeamStore(reopened).List(ctx, "")
	require.NoError(t, err)
	require.Len(t, teams, 1)
}
