package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Atyab124/Automated-Newsletter/internal/domain"
)

type FactSheetStore struct {
	db *sqlx.DB
}

func NewFactSheetStore(db *sqlx.DB) *FactSheetStore {
	return &FactSheetStore{db: db}
}

// Save appends a new fact sheet row. History is append-only; "latest" is
// resolved by creation time.
func (s *FactSheetStore) Save(ctx context.Context, topicID int64, markdown string, payload domain.FactSheetPayload) (int64, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("marshal fact sheet payload: %w", err)
	}

	query := `
		INSERT INTO fact_sheets (topic_id, markdown, json_data)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id int64
	err = GetExecutor(ctx, s.db).QueryRowxContext(ctx, query, topicID, markdown, data).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *FactSheetStore) GetLatest(ctx context.Context, topicID int64) (*domain.FactSheet, error) {
	var sheet domain.FactSheet
	query := `
		SELECT id, topic_id, markdown, json_data, created_at
		FROM fact_sheets
		WHERE topic_id = $1
		ORDER BY created_at DESC
		LIMIT 1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &sheet, query, topicID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sheet, nil
}

func (s *FactSheetStore) ListByTopic(ctx context.Context, topicID int64) ([]domain.FactSheet, error) {
	query := `
		SELECT id, topic_id, markdown, json_data, created_at
		FROM fact_sheets
		WHERE topic_id = $1
		ORDER BY created_at DESC`

	var sheets []domain.FactSheet
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &sheets, query, topicID)
	return sheets, err
}
