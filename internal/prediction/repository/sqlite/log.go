package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"healthsmart-chatbot/internal/prediction"
)

// Save inserts one prediction log.
func (r *Repository) Save(ctx context.Context, log prediction.Log) error {
	features, err := json.Marshal(log.Features)
	if err != nil {
		return fmt.Errorf("marshal features: %w", err)
	}
	result, err := json.Marshal(log.Result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO prediction_logs (id, features, result, model_version, created_at_unix) VALUES (?, ?, ?, ?, ?)`,
		log.ID, string(features), string(result), log.ModelVersion, log.CreatedAt.UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("insert prediction log: %w", err)
	}
	return nil
}

// List returns up to limit logs, newest first.
func (r *Repository) List(ctx context.Context, limit int) ([]prediction.Log, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, features, result, model_version, created_at_unix
		 FROM prediction_logs ORDER BY created_at_unix DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query prediction logs: %w", err)
	}
	defer rows.Close()

	logs := make([]prediction.Log, 0, limit)
	for rows.Next() {
		var (
			l             prediction.Log
			features      string
			result        string
			createdAtUnix int64
		)
		if err := rows.Scan(&l.ID, &features, &result, &l.ModelVersion, &createdAtUnix); err != nil {
			return nil, fmt.Errorf("scan prediction log: %w", err)
		}
		if err := json.Unmarshal([]byte(features), &l.Features); err != nil {
			return nil, fmt.Errorf("decode features of %s: %w", l.ID, err)
		}
		if err := json.Unmarshal([]byte(result), &l.Result); err != nil {
			return nil, fmt.Errorf("decode result of %s: %w", l.ID, err)
		}
		l.CreatedAt = time.UnixMilli(createdAtUnix).UTC()
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate prediction logs: %w", err)
	}
	return logs, nil
}
