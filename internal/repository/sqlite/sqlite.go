// Package sqlite implements repository.Repository on SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"astroloh/internal/domain"
	"astroloh/internal/repository"

	_ "modernc.org/sqlite"
)

// Repository implements repository.Repository using SQLite
type Repository struct {
	db *sql.DB
}

// New creates a new SQLite repository
func New(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	repo := &Repository{db: db}
	if err := repo.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return repo, nil
}

func (r *Repository) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS charts (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		birth_date DATETIME NOT NULL,
		data JSON NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_charts_birth_date ON charts(birth_date);
	`

	_, err := r.db.Exec(schema)
	return err
}

// Close releases the database handle
func (r *Repository) Close() error {
	return r.db.Close()
}

// GetChart loads a single chart by id
func (r *Repository) GetChart(ctx context.Context, id string) (*domain.Chart, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, birth_date, data, created_at, updated_at
		FROM charts WHERE id = ?
	`, id)

	chart, err := scanChart(row)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load chart: %w", err)
	}
	return chart, nil
}

// ListCharts returns all charts ordered by birth date
func (r *Repository) ListCharts(ctx context.Context) ([]domain.Chart, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, birth_date, data, created_at, updated_at
		FROM charts ORDER BY birth_date
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query charts: %w", err)
	}
	defer rows.Close()

	return collectCharts(rows)
}

// ListChartsBetween returns charts with a birth date in [from, to)
func (r *Repository) ListChartsBetween(ctx context.Context, from, to time.Time) ([]domain.Chart, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, birth_date, data, created_at, updated_at
		FROM charts WHERE birth_date >= ? AND birth_date < ? ORDER BY birth_date
	`, from.UTC(), to.UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to query charts: %w", err)
	}
	defer rows.Close()

	return collectCharts(rows)
}

// CreateChart inserts a new chart
func (r *Repository) CreateChart(ctx context.Context, chart *domain.Chart) error {
	now := time.Now().UTC()
	chart.CreatedAt = now
	chart.UpdatedAt = now

	data, err := json.Marshal(chart)
	if err != nil {
		return fmt.Errorf("failed to marshal chart: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO charts (id, name, birth_date, data, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, chart.ID, chart.Name, chart.BirthDate.UTC(), data, now, now)
	if err != nil {
		return fmt.Errorf("failed to insert chart: %w", err)
	}
	return nil
}

// UpdateChart replaces an existing chart document
func (r *Repository) UpdateChart(ctx context.Context, chart *domain.Chart) error {
	now := time.Now().UTC()
	chart.UpdatedAt = now

	data, err := json.Marshal(chart)
	if err != nil {
		return fmt.Errorf("failed to marshal chart: %w", err)
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE charts SET name = ?, birth_date = ?, data = ?, updated_at = ?
		WHERE id = ?
	`, chart.Name, chart.BirthDate.UTC(), data, now, chart.ID)
	if err != nil {
		return fmt.Errorf("failed to update chart: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// DeleteChart removes a chart
func (r *Repository) DeleteChart(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM charts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete chart: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
