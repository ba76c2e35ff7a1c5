package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"edukids-quiz-service/internal/domain"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// SubjectLoader loads subject JSONB from Postgres.
type SubjectLoader struct {
	pool *pgxpool.Pool
}

func NewSubjectLoader(pool *pgxpool.Pool) *SubjectLoader {
	return &SubjectLoader{pool: pool}
}

func (l *SubjectLoader) LoadSubject(ctx context.Context, key string) (domain.Subject, error) {
	var raw []byte
	err := l.pool.QueryRow(ctx, `SELECT data FROM subjects WHERE key=$1`, key).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Subject{}, domain.ErrUnknownSubject
	}
	if err != nil {
		return domain.Subject{}, fmt.Errorf("load subject: %w", err)
	}
	var subject domain.Subject
	if err := json.Unmarshal(raw, &subject); err != nil {
		return domain.Subject{}, fmt.Errorf("unmarshal subject: %w", err)
	}
	return subject, nil
}

func (l *SubjectLoader) ListSubjects(ctx context.Context) ([]domain.Subject, error) {
	rows, err := l.pool.Query(ctx, `SELECT data FROM subjects ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	defer rows.Close()

	var subjects []domain.Subject
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan subject: %w", err)
		}
		var subject domain.Subject
		if err := json.Unmarshal(raw, &subject); err != nil {
			return nil, fmt.Errorf("unmarshal subject: %w", err)
		}
		subjects = append(subjects, subject)
	}
	return subjects, rows.Err()
}
