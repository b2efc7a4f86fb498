package document

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"github.com/lalith-99/taskflow/internal/models"
	"github.com/lalith-99/taskflow/internal/store"
)

type TeamStore struct {
	db *Store
}

func NewTeamStore(db *Store) *TeamStore {
	return &TeamStore{db: db}
}

func (s *TeamStore) Create(ctx context.Context, name, leaderID string) (*models.Team, error) {
	t := models.Team{
		ID:       uuid.NewString(),
		Name:     name,
		LeaderID: leaderID,
		// The leader joins their own team at creation. The original seeds
		// the list even with an empty leader ID, and so do we.
		Members: []string{leaderID},
	}
	err := s.db.update(func(doc *models.Document) (bool, error) {
		doc.Teams = append(doc.Teams, t)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *TeamStore) List(ctx context.Context, leaderID string) ([]models.Team, error) {
	teams := make([]models.Team, 0)
	err := s.db.view(func(doc *models.Document) error {
		for _, t := range doc.Teams {
			if leaderID != "" && t.LeaderID != leaderID {
				continue
			}
			teams = append(teams, t)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return teams, nil
}

// AddMember is idempotent: joining a team twice leaves the members sequence
// with a single occurrence of the user ID.
func (s *TeamStore) AddMember(ctx context.Context, teamID, userID string) error {
	return s.db.update(func(doc *models.Document) (bool, error) {
		for i := range doc.Teams {
			if doc.Teams[i].ID != teamID {
				continue
			}
			if !slices.Contains(doc.Teams[i].Members, userID) {
				doc.Teams[i].Members = append(doc.Teams[i].Members, userID)
			}
			return true, nil
		}
		return false, store.ErrNotFound
	})
}
