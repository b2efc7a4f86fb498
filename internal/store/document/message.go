package document

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lalith-99/taskflow/internal/models"
	"github.com/lalith-99/taskflow/internal/store"
)

type MessageStore struct {
	db *Store
}

func NewMessageStore(db *Store) *MessageStore {
	return &MessageStore{db: db}
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
	err := s.db.update(func(doc *models.Document) (bool, error) {
		doc.Messages = append(doc.Messages, m)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *MessageStore) List(ctx context.Context) ([]models.Message, error) {
	messages := make([]models.Message, 0)
	err := s.db.view(func(doc *models.Document) error {
		messages = append(messages, doc.Messages...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return messages, nil
}
