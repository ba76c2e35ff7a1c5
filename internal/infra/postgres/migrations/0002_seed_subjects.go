package migrations

import (
	"context"
	"encoding/json"

	"edukids-quiz-service/internal/questionbank"
	"github.com/uptrace/bun"
)

func init() {
	// Seed the builtin bank so a fresh database serves the same content the
	// in-memory loader does.
	Migrations.MustRegister(
		func(ctx context.Context, db *bun.DB) error {
			subjects := questionbank.Subjects()
			for position, key := range questionbank.Keys() {
				data, err := json.Marshal(subjects[key])
				if err != nil {
					return err
				}
				if _, err := db.ExecContext(ctx,
					`INSERT INTO subjects (key, position, data) VALUES (?, ?, ?::jsonb)
					 ON CONFLICT (key) DO UPDATE SET position=EXCLUDED.position, data=EXCLUDED.data`,
					key, position, string(data)); err != nil {
					return err
				}
			}
			return nil
		},
		func(ctx context.Context, db *bun.DB) error {
			for _, key := range questionbank.Keys() {
				if _, err := db.ExecContext(ctx, `DELETE FROM subjects WHERE key=?`, key); err != nil {
					return err
				}
			}
			return nil
		},
	)
}
