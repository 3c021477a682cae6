// Package service provides business logic for chart operations: persistence
// orchestration, render-time validation, and the per-chart interaction state.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"astroloh/internal/domain"
	"astroloh/internal/metrics"
	"astroloh/internal/ref"
	"astroloh/internal/repository"
	"astroloh/internal/wheel"

	"github.com/google/uuid"
)

// ChartService provides business logic for chart operations.
//
// Each stored chart owns one SelectionState, held in memory and keyed by
// chart id. The state exists from first interaction until the chart is
// deleted or its data is replaced (the server-side analog of unmounting the
// diagram); there is no other reset path.
type ChartService struct {
	repo     repository.Repository
	eventBus *EventBus
	metrics  *metrics.Metrics
	tables   domain.Reference

	mu         sync.Mutex
	selections map[string]domain.SelectionState
}

// NewChartService creates a new chart service
func NewChartService(repo repository.Repository, eventBus *EventBus, m *metrics.Metrics) *ChartService {
	return &ChartService{
		repo:       repo,
		eventBus:   eventBus,
		metrics:    m,
		tables:     ref.Tables{},
		selections: make(map[string]domain.SelectionState),
	}
}

// CreateChart stores a new chart, assigning an id when absent
func (s *ChartService) CreateChart(ctx context.Context, chart *domain.Chart) error {
	if chart.Name == "" {
		return fmt.Errorf("chart name is required")
	}
	if chart.ID == "" {
		chart.ID = uuid.NewString()
	}

	if err := s.repo.CreateChart(ctx, chart); err != nil {
		return err
	}

	s.eventBus.Publish(Event{
		Type:    EventChartCreated,
		ChartID: chart.ID,
		Fields:  map[string]string{"name": chart.Name},
	})
	return nil
}

// GetChart retrieves a single chart by id
func (s *ChartService) GetChart(ctx context.Context, id string) (*domain.Chart, error) {
	return s.repo.GetChart(ctx, id)
}

// ListCharts returns all stored charts
func (s *ChartService) ListCharts(ctx context.Context) ([]domain.Chart, error) {
	return s.repo.ListCharts(ctx)
}

// ChartsBetween returns charts with a birth date in [from, to)
func (s *ChartService) ChartsBetween(ctx context.Context, from, to time.Time) ([]domain.Chart, error) {
	return s.repo.ListChartsBetween(ctx, from, to)
}

// UpdateChart replaces a chart's document. The chart's interaction state is
// discarded: replacing the data remounts the diagram.
func (s *ChartService) UpdateChart(ctx context.Context, chart *domain.Chart) error {
	if err := s.repo.UpdateChart(ctx, chart); err != nil {
		return err
	}

	s.dropSelection(chart.ID)
	s.eventBus.Publish(Event{Type: EventChartUpdated, ChartID: chart.ID})
	return nil
}

// DeleteChart removes a chart and its interaction state
func (s *ChartService) DeleteChart(ctx context.Context, id string) error {
	if err := s.repo.DeleteChart(ctx, id); err != nil {
		return err
	}

	s.dropSelection(id)
	s.eventBus.Publish(Event{Type: EventChartDeleted, ChartID: id})
	return nil
}

// Layout validates a chart's records and derives the full wheel geometry
// from them plus the chart's current selection state
func (s *ChartService) Layout(ctx context.Context, id string) (*wheel.Layout, error) {
	chart, err := s.repo.GetChart(ctx, id)
	if err != nil {
		return nil, err
	}

	data := s.validate(chart)
	layout := wheel.BuildLayout(data, s.Selection(id), chart.Options)
	return &layout, nil
}

// RenderSVG renders a chart to SVG
func (s *ChartService) RenderSVG(ctx context.Context, id string) (string, error) {
	layout, err := s.Layout(ctx, id)
	if err != nil {
		return "", err
	}

	if s.metrics != nil {
		s.metrics.ChartRenders.Inc()
	}
	return wheel.RenderSVG(*layout), nil
}

// Describe returns the whole-diagram accessible description and the
// per-planet labels
func (s *ChartService) Describe(ctx context.Context, id string) (string, []string, error) {
	chart, err := s.repo.GetChart(ctx, id)
	if err != nil {
		return "", nil, err
	}

	data := s.validate(chart)
	return wheel.Description(data, chart.Options), wheel.PlanetLabels(data), nil
}

// Panel derives the detail panel for a chart's current selection.
// Returns nil when nothing is selected.
func (s *ChartService) Panel(ctx context.Context, id string) (*wheel.DetailPanel, error) {
	chart, err := s.repo.GetChart(ctx, id)
	if err != nil {
		return nil, err
	}

	return wheel.BuildDetailPanel(s.validate(chart), s.Selection(id)), nil
}

// Selection returns the chart's current interaction state
func (s *ChartService) Selection(id string) domain.SelectionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selections[id]
}

// Hover applies a pointer-enter transition for a rendered planet
func (s *ChartService) Hover(ctx context.Context, id string, planet domain.PlanetID) error {
	return s.transition(ctx, id, planet, domain.SelectionState.Hover)
}

// Activate applies a click/keyboard activation transition for a rendered
// planet (toggle/switch semantics)
func (s *ChartService) Activate(ctx context.Context, id string, planet domain.PlanetID) error {
	return s.transition(ctx, id, planet, domain.SelectionState.Activate)
}

// Unhover applies a pointer-leave transition
func (s *ChartService) Unhover(ctx context.Context, id string) error {
	chart, err := s.repo.GetChart(ctx, id)
	if err != nil {
		return err
	}
	if !chart.Options.IsInteractive() {
		return nil
	}

	s.mu.Lock()
	before := s.selections[id]
	after := before.Unhover()
	s.selections[id] = after
	s.mu.Unlock()

	if after != before {
		s.publishSelection(id, after)
	}
	return nil
}

// transition loads the chart, gates on interactivity and on the planet being
// part of the accepted set, and applies fn to the chart's selection state
func (s *ChartService) transition(ctx context.Context, id string, planet domain.PlanetID,
	fn func(domain.SelectionState, domain.PlanetID) domain.SelectionState) error {

	chart, err := s.repo.GetChart(ctx, id)
	if err != nil {
		return err
	}
	// No transitions on a non-interactive chart, and none for planets that
	// are not rendered.
	if !chart.Options.IsInteractive() {
		return nil
	}
	if !s.validate(chart).HasPlanet(planet) {
		return nil
	}

	s.mu.Lock()
	before := s.selections[id]
	after := fn(before, planet)
	s.selections[id] = after
	s.mu.Unlock()

	if after != before {
		s.publishSelection(id, after)
	}
	return nil
}

func (s *ChartService) validate(chart *domain.Chart) domain.ValidationResult {
	result := domain.Validate(chart.Planets, chart.Aspects, s.tables)

	if s.metrics != nil {
		if n := len(result.RejectedPlanets); n > 0 {
			s.metrics.RecordsRejected.WithLabelValues("planet").Add(float64(n))
		}
		if n := len(result.RejectedAspects); n > 0 {
			s.metrics.RecordsRejected.WithLabelValues("aspect").Add(float64(n))
		}
	}
	return result
}

func (s *ChartService) dropSelection(id string) {
	s.mu.Lock()
	delete(s.selections, id)
	s.mu.Unlock()
}

func (s *ChartService) publishSelection(id string, sel domain.SelectionState) {
	s.eventBus.Publish(Event{
		Type:    EventSelectionChanged,
		ChartID: id,
		Fields: map[string]string{
			"hovered":  string(sel.Hovered),
			"selected": string(sel.Selected),
		},
	})
}
