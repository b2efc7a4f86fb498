package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lalith-99/taskflow/internal/models"
	"github.com/lalith-99/taskflow/internal/store"
)

type UserStore struct {
	pool *pgxpool.Pool
}

func NewUserStore(pool *pgxpool.Pool) *UserStore {
	return &UserStore{pool: pool}
}

func (s *UserStore) Create(ctx context.Context, name, email, passwordHash, role string) (*models.User, error) {
	u := models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
	}

	query := `
		INSERT INTO users (id, name, email, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)`

	if _, err := s.pool.Exec(ctx, query, u.ID, u.Name, u.Email, u.PasswordHash, u.Role); err != nil {
		return nil, fmt.Errorf("insert user: %w: %w", store.ErrStorage, err)
	}
	return &u, nil
}

// GetByEmail returns the earliest-registered user with the email. ORDER BY
// seq keeps "first match wins" identical to the document backend's scan.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, name, email, password_hash, role
		FROM users
		WHERE email = $1
		ORDER BY seq
		LIMIT 1`

	var u models.User
	err := s.pool.QueryRow(ctx, query, email).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w: %w", store.ErrStorage, err)
	}
	return &u, nil
}
