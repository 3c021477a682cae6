package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"astroloh/internal/domain"
	"astroloh/internal/repository"
)

// newTestRepo creates an in-memory SQLite repository for testing
func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test repository: %v", err)
	}
	t.Cleanup(func() {
		repo.Close()
	})
	return repo
}

func testChart(id, name string, birth time.Time) *domain.Chart {
	return &domain.Chart{
		ID:        id,
		Name:      name,
		BirthDate: birth,
		Planets: []domain.PlanetPosition{
			{Planet: domain.PlanetSun, Sign: domain.SignAries, Degree: 15, House: 1},
		},
		Aspects: []domain.AspectData{},
	}
}

func TestCreateAndGetChart(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	birth := time.Date(1990, time.March, 21, 12, 30, 0, 0, time.UTC)
	chart := testChart("c1", "First chart", birth)

	if err := repo.CreateChart(ctx, chart); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	t.Run("round-trips the document", func(t *testing.T) {
		got, err := repo.GetChart(ctx, "c1")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if got.Name != "First chart" {
			t.Errorf("expected name 'First chart', got %q", got.Name)
		}
		if !got.BirthDate.Equal(birth) {
			t.Errorf("expected birth date %v, got %v", birth, got.BirthDate)
		}
		if len(got.Planets) != 1 || got.Planets[0].Planet != domain.PlanetSun {
			t.Errorf("unexpected planets %+v", got.Planets)
		}
	})

	t.Run("sets timestamps on create", func(t *testing.T) {
		got, err := repo.GetChart(ctx, "c1")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
			t.Error("expected timestamps to be set")
		}
	})

	t.Run("unknown id returns ErrNotFound", func(t *testing.T) {
		_, err := repo.GetChart(ctx, "missing")
		if !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestUpdateChart(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	chart := testChart("c1", "Before", time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC))
	if err := repo.CreateChart(ctx, chart); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	t.Run("replaces the document", func(t *testing.T) {
		chart.Name = "After"
		chart.Planets = append(chart.Planets, domain.PlanetPosition{
			Planet: domain.PlanetMoon, Sign: domain.SignCancer, Degree: 100, House: 4,
		})
		if err := repo.UpdateChart(ctx, chart); err != nil {
			t.Fatalf("update failed: %v", err)
		}

		got, err := repo.GetChart(ctx, "c1")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if got.Name != "After" {
			t.Errorf("expected name 'After', got %q", got.Name)
		}
		if len(got.Planets) != 2 {
			t.Errorf("expected 2 planets, got %d", len(got.Planets))
		}
	})

	t.Run("unknown id returns ErrNotFound", func(t *testing.T) {
		ghost := testChart("ghost", "Ghost", time.Now())
		if err := repo.UpdateChart(ctx, ghost); !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestDeleteChart(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	chart := testChart("c1", "Doomed", time.Now())
	if err := repo.CreateChart(ctx, chart); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := repo.DeleteChart(ctx, "c1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := repo.GetChart(ctx, "c1"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	if err := repo.DeleteChart(ctx, "c1"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound on double delete, got %v", err)
	}
}

func TestListCharts(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	dates := []time.Time{
		time.Date(1992, time.June, 10, 0, 0, 0, 0, time.UTC),
		time.Date(1990, time.March, 21, 0, 0, 0, 0, time.UTC),
		time.Date(1991, time.December, 1, 0, 0, 0, 0, time.UTC),
	}
	for i, d := range dates {
		chart := testChart(string(rune('a'+i)), "Chart", d)
		if err := repo.CreateChart(ctx, chart); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	t.Run("orders by birth date", func(t *testing.T) {
		charts, err := repo.ListCharts(ctx)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(charts) != 3 {
			t.Fatalf("expected 3 charts, got %d", len(charts))
		}
		for i := 1; i < len(charts); i++ {
			if charts[i].BirthDate.Before(charts[i-1].BirthDate) {
				t.Error("expected charts ordered by birth date")
			}
		}
	})

	t.Run("between filters on the half-open range", func(t *testing.T) {
		from := time.Date(1991, time.January, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(1992, time.January, 1, 0, 0, 0, 0, time.UTC)

		charts, err := repo.ListChartsBetween(ctx, from, to)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(charts) != 1 {
			t.Fatalf("expected 1 chart in 1991, got %d", len(charts))
		}
		if charts[0].BirthDate.Year() != 1991 {
			t.Errorf("expected a 1991 chart, got %v", charts[0].BirthDate)
		}
	})

	t.Run("empty repository lists empty", func(t *testing.T) {
		empty := newTestRepo(t)
		charts, err := empty.ListCharts(ctx)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(charts) != 0 {
			t.Errorf("expected 0 charts, got %d", len(charts))
		}
	})
}
