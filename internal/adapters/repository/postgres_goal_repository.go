package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/comitanigiacomo/consistency-tracker/internal/core/domain"
	"github.com/jmoiron/sqlx"
)

var _ domain.GoalRepository = (*PostgresGoalRepository)(nil)

const goalColumns = `id, user_id, name, completed_dates, version, created_at, updated_at`

type PostgresGoalRepository struct {
	db *sqlx.DB
}

func NewPostgresGoalRepository(db *sqlx.DB) *PostgresGoalRepository {
	return &PostgresGoalRepository{db: db}
}

type scannable interface {
	Scan(dest ...any) error
}

func (r *PostgresGoalRepository) scanRow(row scannable) (*domain.Goal, error) {
	var g domain.Goal
	var datesJSON []byte

	err := row.Scan(&g.ID, &g.UserID, &g.Name, &datesJSON, &g.Version, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}

	g.Schema = domain.GoalRecordVersion
	g.CompletedDates = make(map[string]bool)
	if len(datesJSON) > 0 {
		if err := json.Unmarshal(datesJSON, &g.CompletedDates); err != nil {
			return nil, &domain.CorruptStateError{Key: "goals/" + g.ID, Err: err}
		}
	}

	return &g, nil
}

func (r *PostgresGoalRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE user_id = $1 ORDER BY position ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	defer rows.Close()

	goals := []*domain.Goal{}
	var corrupt error
	for rows.Next() {
		g, err := r.scanRow(rows)
		if err != nil {
			if errors.Is(err, domain.ErrCorruptState) {
				corrupt = err
				continue
			}
			return nil, fmt.Errorf("row scan error: %w", err)
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return goals, corrupt
}

func (r *PostgresGoalRepository) GetByID(ctx context.Context, userID, id string) (*domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE user_id = $1 AND id = $2`

	g, err := r.scanRow(r.db.QueryRowContext(ctx, query, userID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrGoalNotFound
		}
		return nil, fmt.Errorf("database scan error: %w", err)
	}
	return g, nil
}

func (r *PostgresGoalRepository) Create(ctx context.Context, g *domain.Goal) error {
	datesJSON, err := json.Marshal(g.CompletedDates)
	if err != nil {
		return fmt.Errorf("failed to marshal completed dates: %w", err)
	}

	query := `
        INSERT INTO goals (id, user_id, position, name, completed_dates, version, created_at, updated_at)
        VALUES (
            $1, $2,
            (SELECT COALESCE(MAX(position), -1) + 1 FROM goals WHERE user_id = $2),
            $3, $4, 1, $5, $6
        )`

	_, err = r.db.ExecContext(ctx, query, g.ID, g.UserID, g.Name, datesJSON, g.CreatedAt, g.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrGoalConflict
		}
		return fmt.Errorf("failed to insert goal: %w", err)
	}

	g.Version = 1
	return nil
}

func (r *PostgresGoalRepository) Update(ctx context.Context, g *domain.Goal) error {
	datesJSON, err := json.Marshal(g.CompletedDates)
	if err != nil {
		return err
	}

	query := `
        UPDATE goals SET
            name = $1, completed_dates = $2,
            updated_at = NOW(), version = version + 1
        WHERE user_id = $3 AND id = $4 AND version = $5
        RETURNING version, updated_at`

	var newVersion int
	var newUpdatedAt time.Time

	err = r.db.QueryRowContext(ctx, query, g.Name, datesJSON, g.UserID, g.ID, g.Version).
		Scan(&newVersion, &newUpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			var count int
			existsQuery := `SELECT count(*) FROM goals WHERE user_id = $1 AND id = $2`
			if checkErr := r.db.QueryRowContext(ctx, existsQuery, g.UserID, g.ID).Scan(&count); checkErr != nil {
				return fmt.Errorf("existence check failed: %w", checkErr)
			}
			if count == 0 {
				return domain.ErrGoalNotFound
			}
			return domain.ErrGoalConflict
		}
		return fmt.Errorf("update query failed: %w", err)
	}

	g.Version = newVersion
	g.UpdatedAt = newUpdatedAt
	return nil
}

func (r *PostgresGoalRepository) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM goals WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("delete query failed: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrGoalNotFound
	}
	return nil
}

// ReplaceAll rewrites the profile's list inside one transaction so readers
// never observe a half-replaced list.
func (r *PostgresGoalRepository) ReplaceAll(ctx context.Context, userID string, goals []*domain.Goal) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM goals WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("clear goals: %w", err)
	}

	for i, g := range goals {
		var datesJSON []byte
		if datesJSON, err = json.Marshal(g.CompletedDates); err != nil {
			return fmt.Errorf("failed to marshal completed dates: %w", err)
		}
		_, err = tx.ExecContext(ctx, `
            INSERT INTO goals (id, user_id, position, name, completed_dates, version, created_at, updated_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			g.ID, userID, i, g.Name, datesJSON, max(g.Version, 1), g.CreatedAt, g.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert goal %d: %w", i, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit replace: %w", err)
	}
	return nil
}
