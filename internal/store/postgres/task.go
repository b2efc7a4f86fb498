package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lalith-99/taskflow/internal/models"
	"github.com/lalith-99/taskflow/internal/store"
)

type TaskStore struct {
	pool *pgxpool.Pool
}

func NewTaskStore(pool *pgxpool.Pool) *TaskStore {
	return &TaskStore{pool: pool}
}

const taskColumns = `id, team_id, title, description, assigned_to, assigned_by, deadline, status, created_at, updates`

func scanTask(row pgx.Row) (*models.Task, error) {
	var t models.Task
	err := row.Scan(
		&t.ID,
		&t.TeamID,
		&t.Title,
		&t.Description,
		&t.AssignedTo,
		&t.AssignedBy,
		&t.Deadline,
		&t.Status,
		&t.CreatedAt,
		&t.Updates,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *TaskStore) Create(ctx context.Context, p store.TaskParams) (*models.Task, error) {
	t := models.Task{
		ID:          uuid.NewString(),
		TeamID:      p.TeamID,
		Title:       p.Title,
		Description: p.Description,
		AssignedTo:  p.AssignedTo,
		AssignedBy:  p.AssignedBy,
		Deadline:    p.Deadline,
		Status:      "pending",
		CreatedAt:   time.Now().UTC(),
		Updates:     []models.TaskUpdate{},
	}

	query := `
		INSERT INTO tasks (id, team_id, title, description, assigned_to, assigned_by, deadline, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := s.pool.Exec(ctx, query,
		t.ID, t.TeamID, t.Title, t.Description, t.AssignedTo, t.AssignedBy, t.Deadline, t.Status, t.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert task: %w: %w", store.ErrStorage, err)
	}
	return &t, nil
}

func (s *TaskStore) List(ctx context.Context, teamID string) ([]models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY seq`
	args := []any{}

	if teamID != "" {
		query = `SELECT ` + taskColumns + ` FROM tasks WHERE team_id = $1 ORDER BY seq`
		args = []any{teamID}
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w: %w", store.ErrStorage, err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w: %w", store.ErrStorage, err)
		}
		tasks = append(tasks, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w: %w", store.ErrStorage, err)
	}

	return tasks, nil
}

func (s *TaskStore) UpdateStatus(ctx context.Context, taskID string, status *string) (*models.Task, error) {
	var row pgx.Row
	if status != nil {
		row = s.pool.QueryRow(ctx,
			`UPDATE tasks SET status = $2 WHERE id = $1 RETURNING `+taskColumns,
			taskID, *status)
	} else {
		// PATCH without a status field still resolves the task.
		row = s.pool.QueryRow(ctx,
			`SELECT `+taskColumns+` FROM tasks WHERE id = $1`,
			taskID)
	}

	t, err := scanTask(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("update task status: %w: %w", store.ErrStorage, err)
	}
	return t, nil
}

func (s *TaskStore) AddUpdate(ctx context.Context, taskID, message, sentBy string) (*models.TaskUpdate, error) {
	u := models.TaskUpdate{
		ID:      uuid.NewString(),
		Message: message,
		SentBy:  sentBy,
		SentAt:  time.Now().UTC(),
	}

	payload, err := json.Marshal(u)
	if err != nil {
		return nil, fmt.Errorf("encode task update: %w: %w", store.ErrStorage, err)
	}

	// jsonb || jsonb appends in place, keeping the feed ordered without a
	// separate table.
	query := `
		UPDATE tasks
		SET updates = updates || $2::jsonb
		WHERE id = $1`

	tag, err := s.pool.Exec(ctx, query, taskID, string(payload))
	if err != nil {
		return nil, fmt.Errorf("add task update: %w: %w", store.ErrStorage, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, store.ErrNotFound
	}
	return &u, nil
}
