package store

import (
	"context"
	"errors"

	"github.com/lalith-99/taskflow/internal/models"
)

// Two error kinds cross the store boundary:
//
//   - ErrNotFound: the record a mutation targets does not exist. Handlers
//     translate it to 404.
//   - ErrStorage: the backing medium failed (file I/O, connection loss).
//     Handlers translate it to 500. Business lookups never produce it for
//     "no match"; GetByEmail returns nil, nil instead.
var (
	ErrNotFound = errors.New("record not found")
	ErrStorage  = errors.New("storage failure")
)

// TaskParams carries the caller-supplied fields of a new task. The store
// fills in ID, Status ("pending"), CreatedAt and an empty Updates sequence.
type TaskParams struct {
	TeamID      string
	Title       string
	Description string
	AssignedTo  string
	AssignedBy  string
	Deadline    string
}

// MessageParams carries the caller-supplied fields of a new message. The
// store fills in ID and Timestamp.
type MessageParams struct {
	SenderID    string
	Content     string
	ChatType    string
	RecipientID string
}

// UserStore persists registered users.
type UserStore interface {
	// Create appends a new user with a generated ID. Email uniqueness is the
	// register handler's concern; the store appends unconditionally.
	Create(ctx context.Context, name, email, passwordHash, role string) (*models.User, error)

	// GetByEmail returns the first user with the given email, in storage
	// order. Returns nil, nil when no user matches.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// TeamStore persists teams and their member lists.
type TeamStore interface {
	// Create appends a new team whose members are seeded with leaderID,
	// even when leaderID is empty.
	Create(ctx context.Context, name, leaderID string) (*models.Team, error)

	// List returns teams in storage order. A non-empty leaderID restricts
	// the result to teams led by that user.
	List(ctx context.Context, leaderID string) ([]models.Team, error)

	// AddMember appends userID to the team's members unless already present.
	// Idempotent. Returns ErrNotFound when the team does not exist.
	AddMember(ctx context.Context, teamID, userID string) error
}

// TaskStore persists tasks and their update feeds.
type TaskStore interface {
	// Create appends a new task with status "pending" and no updates.
	Create(ctx context.Context, p TaskParams) (*models.Task, error)

	// List returns tasks in storage order. A non-empty teamID restricts the
	// result to that team's tasks.
	List(ctx context.Context, teamID string) ([]models.Task, error)

	// UpdateStatus overwrites the task's status when status is non-nil and
	// returns the task either way. Returns ErrNotFound for an unknown task.
	UpdateStatus(ctx context.Context, taskID string, status *string) (*models.Task, error)

	// AddUpdate appends a progress note with a generated ID and timestamp
	// and returns the created update, not the parent task. Returns
	// ErrNotFound for an unknown task.
	AddUpdate(ctx context.Context, taskID, message, sentBy string) (*models.TaskUpdate, error)
}

// MessageStore persists the flat chat log.
type MessageStore interface {
	Create(ctx context.Context, p MessageParams) (*models.Message, error)

	// List returns every message in storage order.
	List(ctx context.Context) ([]models.Message, error)
}
