package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gauchobites/gauchobites/internal/domain/entity"
	"github.com/gauchobites/gauchobites/internal/domain/repository"
	"github.com/gauchobites/gauchobites/internal/logging"
)

// themeModeKey is the single fixed key dedicated to the theme preference.
const themeModeKey = "theme.mode"

type preferenceRepo struct {
	db *sql.DB
}

// NewPreferenceRepository creates a new SQLite-backed preference repository.
func NewPreferenceRepository(db *sql.DB) repository.PreferenceRepository {
	return &preferenceRepo{db: db}
}

func (r *preferenceRepo) GetThemeMode(ctx context.Context) (entity.ThemeMode, bool, error) {
	log := logging.FromContext(ctx)

	var value string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM preferences WHERE key = ?`, themeModeKey,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read theme mode: %w", err)
	}

	log.Debug().Str("value", value).Msg("read persisted theme mode")

	// Lenient on the read path: an unrecognized stored string maps to the
	// fail-safe default instead of an error.
	return entity.ThemeModeOrDefault(value), true, nil
}

func (r *preferenceRepo) SetThemeMode(ctx context.Context, mode entity.ThemeMode) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("mode", mode.String()).Msg("persisting theme mode")

	_, err := r.db.ExecContext(ctx, `
INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		themeModeKey, mode.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to persist theme mode: %w", err)
	}
	return nil
}
