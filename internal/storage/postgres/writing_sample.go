package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/Atyab124/Automated-Newsletter/internal/domain"
)

type WritingSampleStore struct {
	db *sqlx.DB
}

func NewWritingSampleStore(db *sqlx.DB) *WritingSampleStore {
	return &WritingSampleStore{db: db}
}

func (s *WritingSampleStore) Add(ctx context.Context, topicID int64, text string) (int64, error) {
	query := `
		INSERT INTO writing_samples (topic_id, text)
		VALUES ($1, $2)
		RETURNING id`

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query, topicID, text).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *WritingSampleStore) ListByTopic(ctx context.Context, topicID int64) ([]domain.WritingSample, error) {
	query := `
		SELECT id, topic_id, text, created_at
		FROM writing_samples
		WHERE topic_id = $1
		ORDER BY created_at DESC`

	var samples []domain.WritingSample
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &samples, query, topicID)
	return samples, err
}
