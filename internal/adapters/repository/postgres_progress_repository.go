package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/comitanigiacomo/consistency-tracker/internal/core/domain"
	"github.com/jmoiron/sqlx"
)

var (
	_ domain.ProgressRepository    = (*PostgresProgressRepository)(nil)
	_ domain.PreferencesRepository = (*PostgresPreferencesRepository)(nil)
)

// PostgresProgressRepository stores the progress ledger as one JSONB
// document per email, the same shape the key-value layout uses.
type PostgresProgressRepository struct {
	db *sqlx.DB
}

func NewPostgresProgressRepository(db *sqlx.DB) *PostgresProgressRepository {
	return &PostgresProgressRepository{db: db}
}

func (r *PostgresProgressRepository) Get(ctx context.Context, email string) (*domain.UserProgress, error) {
	email = domain.NormalizeEmail(email)

	var doc []byte
	err := r.db.QueryRowContext(ctx, `SELECT document FROM user_progress WHERE email = $1`, email).Scan(&doc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProgressNotFound
		}
		return nil, fmt.Errorf("repository: get progress failed: %w", err)
	}

	var p domain.UserProgress
	if err := json.Unmarshal(doc, &p); err != nil {
		return nil, &domain.CorruptStateError{Key: progressKey(email), Err: err}
	}
	return &p, nil
}

func (r *PostgresProgressRepository) Save(ctx context.Context, email string, p *domain.UserProgress) error {
	doc, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("repository: encode progress: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO user_progress (email, document, updated_at) VALUES ($1, $2, NOW())
		ON CONFLICT (email) DO UPDATE SET document = EXCLUDED.document, updated_at = NOW()`,
		domain.NormalizeEmail(email), doc,
	)
	if err != nil {
		return fmt.Errorf("repository: save progress failed: %w", err)
	}
	return nil
}

type PostgresPreferencesRepository struct {
	db *sqlx.DB
}

func NewPostgresPreferencesRepository(db *sqlx.DB) *PostgresPreferencesRepository {
	return &PostgresPreferencesRepository{db: db}
}

type preferencesRow struct {
	Theme     string `db:"theme"`
	FocusMode bool   `db:"focus_mode"`
}

func (r *PostgresPreferencesRepository) Get(ctx context.Context, userID string) (*domain.Preferences, error) {
	var row preferencesRow
	err := r.db.GetContext(ctx, &row, `SELECT theme, focus_mode FROM user_preferences WHERE user_id = $1`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.DefaultPreferences(), nil
		}
		return nil, fmt.Errorf("repository: get preferences failed: %w", err)
	}

	theme, err := domain.ParseTheme(row.Theme)
	if err != nil {
		return domain.DefaultPreferences(), &domain.CorruptStateError{Key: themeKey(userID), Err: err}
	}
	return &domain.Preferences{Theme: theme, FocusMode: row.FocusMode}, nil
}

func (r *PostgresPreferencesRepository) Save(ctx context.Context, userID string, prefs *domain.Preferences) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO user_preferences (user_id, theme, focus_mode) VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET theme = EXCLUDED.theme, focus_mode = EXCLUDED.focus_mode`,
		userID, prefs.Theme, prefs.FocusMode,
	)
	if err != nil {
		return fmt.Errorf("repository: save preferences failed: %w", err)
	}
	return nil
}
