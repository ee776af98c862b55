package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/Atyab124/Automated-Newsletter/internal/domain"
)

type NewsletterStore struct {
	db *sqlx.DB
}

func NewNewsletterStore(db *sqlx.DB) *NewsletterStore {
	return &NewsletterStore{db: db}
}

func (s *NewsletterStore) Save(ctx context.Context, topicID int64, markdown string) (int64, error) {
	query := `
		INSERT INTO newsletters (topic_id, markdown)
		VALUES ($1, $2)
		RETURNING id`

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query, topicID, markdown).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *NewsletterStore) GetLatest(ctx context.Context, topicID int64) (*domain.Newsletter, error) {
	var letter domain.Newsletter
	query := `
		SELECT id, topic_id, markdown, created_at
		FROM newsletters
		WHERE topic_id = $1
		ORDER BY created_at DESC
		LIMIT 1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &letter, query, topicID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &letter, nil
}

func (s *NewsletterStore) ListByTopic(ctx context.Context, topicID int64) ([]domain.Newsletter, error) {
	query := `
		SELECT id, topic_id, markdown, created_at
		FROM newsletters
		WHERE topic_id = $1
		ORDER BY created_at DESC`

	var letters []domain.Newsletter
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &letters, query, topicID)
	return letters, err
}
