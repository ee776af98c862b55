package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/Atyab124/Automated-Newsletter/internal/domain"
)

const uniqueViolation = "23505"

type TopicStore struct {
	db *sqlx.DB
}

func NewTopicStore(db *sqlx.DB) *TopicStore {
	return &TopicStore{db: db}
}

// Create inserts a new topic. Duplicate names fail with ErrTopicExists
// rather than overwriting.
func (s *TopicStore) Create(ctx context.Context, name string, frequency domain.Frequency) (int64, error) {
	query := `
		INSERT INTO topics (topic_name, frequency)
		VALUES ($1, $2)
		RETURNING id`

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query, name, frequency).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return 0, domain.ErrTopicExists
		}
		return 0, err
	}

	return id, nil
}

func (s *TopicStore) Get(ctx context.Context, id int64) (*domain.Topic, error) {
	var topic domain.Topic
	query := `
		SELECT id, topic_name, frequency, last_run, created_at
		FROM topics
		WHERE id = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &topic, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrTopicNotFound
	}
	if err != nil {
		return nil, err
	}
	return &topic, nil
}

func (s *TopicStore) List(ctx context.Context) ([]domain.Topic, error) {
	query := `
		SELECT id, topic_name, frequency, last_run, created_at
		FROM topics
		ORDER BY created_at DESC`

	var topics []domain.Topic
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &topics, query)
	return topics, err
}

// UpdateLastRun records a successful pipeline completion. The timestamp is
// stored as RFC3339 text; the due check parses it back.
func (s *TopicStore) UpdateLastRun(ctx context.Context, id int64, runAt time.Time) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"UPDATE topics SET last_run = $1 WHERE id = $2",
		runAt.Format(time.RFC3339), id,
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTopicNotFound
	}
	return nil
}
