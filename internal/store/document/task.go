package document

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lalith-99/taskflow/internal/models"
	"github.com/lalith-99/taskflow/internal/store"
)

type TaskStore struct {
	db *Store
}

func NewTaskStore(db *Store) *TaskStore {
	return &TaskStore{db: db}
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
	err := s.db.update(func(doc *models.Document) (bool, error) {
		doc.Tasks = append(doc.Tasks, t)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *TaskStore) List(ctx context.Context, teamID string) ([]models.Task, error) {
	tasks := make([]models.Task, 0)
	err := s.db.view(func(doc *models.Document) error {
		for _, t := range doc.Tasks {
			if teamID != "" && t.TeamID != teamID {
				continue
			}
			tasks = append(tasks, t)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// UpdateStatus overwrites the status when one is supplied. A nil status
// still resolves the task and persists (the operation is a no-op write),
// matching the PATCH contract: unknown fields are ignored, only status
// mutates.
func (s *TaskStore) UpdateStatus(ctx context.Context, taskID string, status *string) (*models.Task, error) {
	var updated *models.Task
	err := s.db.update(func(doc *models.Document) (bool, error) {
		for i := range doc.Tasks {
			if doc.Tasks[i].ID != taskID {
				continue
			}
			if status != nil {
				doc.Tasks[i].Status = *status
			}
			t := doc.Tasks[i]
			updated = &t
			return true, nil
		}
		return false, store.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *TaskStore) AddUpdate(ctx context.Context, taskID, message, sentBy string) (*models.TaskUpdate, error) {
	u := models.TaskUpdate{
		ID:      uuid.NewString(),
		Message: message,
		SentBy:  sentBy,
		SentAt:  time.Now().UTC(),
	}
	err := s.db.update(func(doc *models.Document) (bool, error) {
		for i := range doc.Tasks {
			if doc.Tasks[i].ID != taskID {
				continue
			}
			doc.Tasks[i].Updates = append(doc.Tasks[i].Updates, u)
			return true, nil
		}
		return false, store.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}
