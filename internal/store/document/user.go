package document

import (
	"context"

	"github.com/google/uuid"

	"github.com/lalith-99/taskflow/internal/models"
)

type UserStore struct {
	db *Store
}

func NewUserStore(db *Store) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) Create(ctx context.Context, name, email, passwordHash, role string) (*models.User, error) {
	u := models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
	}
	err := s.db.update(func(doc *models.Document) (bool, error) {
		doc.Users = append(doc.Users, u)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByEmail scans in storage order and returns the first match, so two
// users sharing an email (possible outside the register path) resolve to
// the earlier registration.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var found *models.User
	err := s.db.view(func(doc *models.Document) error {
		for i := range doc.Users {
			if doc.Users[i].Email == email {
				u := doc.Users[i]
				found = &u
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}
