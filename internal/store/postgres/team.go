package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lalith-99/taskflow/internal/models"
	"github.com/lalith-99/taskflow/internal/store"
)

type TeamStore struct {
	pool *pgxpool.Pool
}

func NewTeamStore(pool *pgxpool.Pool) *TeamStore {
	return &TeamStore{pool: pool}
}

func (s *TeamStore) Create(ctx context.Context, name, leaderID string) (*models.Team, error) {
	t := models.Team{
		ID:       uuid.NewString(),
		Name:     name,
		LeaderID: leaderID,
		Members:  []string{leaderID},
	}

	query := `
		INSERT INTO teams (id, name, leader_id, members)
		VALUES ($1, $2, $3, $4)`

	if _, err := s.pool.Exec(ctx, query, t.ID, t.Name, t.LeaderID, t.Members); err != nil {
		return nil, fmt.Errorf("insert team: %w: %w", store.ErrStorage, err)
	}
	return &t, nil
}

func (s *TeamStore) List(ctx context.Context, leaderID string) ([]models.Team, error) {
	query := `
		SELECT id, name, leader_id, members
		FROM teams
		ORDER BY seq`
	args := []any{}

	if leaderID != "" {
		query = `
			SELECT id, name, leader_id, members
			FROM teams
			WHERE leader_id = $1
			ORDER BY seq`
		args = []any{leaderID}
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w: %w", store.ErrStorage, err)
	}
	defer rows.Close()

	teams := make([]models.Team, 0)
	for rows.Next() {
		var t models.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.LeaderID, &t.Members); err != nil {
			return nil, fmt.Errorf("scan team: %w: %w", store.ErrStorage, err)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate teams: %w: %w", store.ErrStorage, err)
	}

	return teams, nil
}

func (s *TeamStore) AddMember(ctx context.Context, teamID, userID string) error {
	// The guard inside the UPDATE makes the append idempotent. Zero rows
	// touched means either "already a member" or "no such team"; the
	// EXISTS check below tells the two apart.
	query := `
		UPDATE teams
		SET members = array_append(members, $2)
		WHERE id = $1 AND NOT ($2 = ANY(members))`

	tag, err := s.pool.Exec(ctx, query, teamID, userID)
	if err != nil {
		return fmt.Errorf("add member: %w: %w", store.ErrStorage, err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	err = s.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM teams WHERE id = $1)`, teamID,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check team: %w: %w", store.ErrStorage, err)
	}
	if !exists {
		return store.ErrNotFound
	}
	return nil
}
