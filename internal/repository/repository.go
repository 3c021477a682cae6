// Package repository defines the persistence interface for chart documents.
package repository

import (
	"context"
	"errors"
	"time"

	"astroloh/internal/domain"
)

// ErrNotFound is returned when a chart id does not exist
var ErrNotFound = errors.New("chart not found")

// Repository defines the interface for chart data access
type Repository interface {
	// Read operations
	GetChart(ctx context.Context, id string) (*domain.Chart, error)
	ListCharts(ctx context.Context) ([]domain.Chart, error)
	ListChartsBetween(ctx context.Context, from, to time.Time) ([]domain.Chart, error)

	// Write operations
	CreateChart(ctx context.Context, chart *domain.Chart) error
	UpdateChart(ctx context.Context, chart *domain.Chart) error
	DeleteChart(ctx context.Context, id string) error

	// Close releases resources
	Close() error
}
