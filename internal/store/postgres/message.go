package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lalith-99/taskflow/internal/models"
	"github.com/lalith-99/taskflow/internal/store"
)

type MessageStore struct {
	pool *pgxpool.Pool
}

func NewMessageStore(pool *pgxpool.Pool) *MessageStore {
	return &MessageStore{pool: pool}
}

func (s *MessageStore) Create(ctx context.Context, p store.MessageParams) (*models.Message, error) {
	m := models.Message{
		ID:          uuid.NewString(),
		SenderID:    p.SenderID,
		Content:     p.Content,
		Timestamp:   time.Now().UTC(),
		ChatType:    p.ChatType,
		RecipientID: p.RecipientID,
	}

	query := `
		INSERT INTO messages (id, sender_id, content, sent_at, chat_type, recipient_id)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := s.pool.Exec(ctx, query,
		m.ID, m.SenderID, m.Content, m.Timestamp, m.ChatType, m.RecipientID)
	if err != nil {
		return nil, fmt.Errorf("insert message: %w: %w", store.ErrStorage, err)
	}
	return &m, nil
}

func (s *MessageStore) List(ctx context.Context) ([]models.Message, error) {
	query := `
		SELECT id, sender_id, content, sent_at, chat_type, recipient_id
		FROM messages
		ORDER BY seq`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w: %w", store.ErrStorage, err)
	}
	defer rows.Close()

	messages := make([]models.Message, 0)
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(
			&m.ID,
			&m.SenderID,
			&m.Content,
			&m.Timestamp,
			&m.ChatType,
			&m.RecipientID,
		); err != nil {
			return nil, fmt.Errorf("scan message: %w: %w", store.ErrStorage, err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate messages: %w: %w", store.ErrStorage, err)
	}

	return messages, nil
}
