package wheel

import (
	"math"
	"reflect"
	"testing"

	"astroloh/internal/domain"
	"astroloh/internal/ref"
)

func emptyResult() domain.ValidationResult {
	return domain.Validate(nil, nil, ref.Tables{})
}

func TestBuildLayoutFixedGeometry(t *testing.T) {
	t.Run("empty chart still carries the full fixed structure", func(t *testing.T) {
		l := BuildLayout(emptyResult(), domain.NewSelectionState(), domain.ChartOptions{})

		if len(l.HouseLines) != 12 {
			t.Errorf("expected 12 house lines, got %d", len(l.HouseLines))
		}
		if len(l.ZodiacGlyphs) != 12 {
			t.Errorf("expected 12 zodiac glyphs, got %d", len(l.ZodiacGlyphs))
		}
		if len(l.HouseNumbers) != 12 {
			t.Errorf("expected 12 house numbers, got %d", len(l.HouseNumbers))
		}
		if len(l.Planets) != 0 {
			t.Errorf("expected 0 planet marks, got %d", len(l.Planets))
		}
		if len(l.Aspects) != 0 {
			t.Errorf("expected 0 aspect lines, got %d", len(l.Aspects))
		}
	})

	t.Run("fixed structure is identical with and without planets", func(t *testing.T) {
		data := domain.Validate([]domain.PlanetPosition{
			{Planet: domain.PlanetSun, Sign: domain.SignAries, Degree: 15, House: 1},
			{Planet: domain.PlanetMoon, Sign: domain.SignLeo, Degree: 135, House: 5},
		}, nil, ref.Tables{})

		withPlanets := BuildLayout(data, domain.NewSelectionState(), domain.ChartOptions{})
		empty := BuildLayout(emptyResult(), domain.NewSelectionState(), domain.ChartOptions{})

		if !reflect.DeepEqual(withPlanets.HouseLines, empty.HouseLines) {
			t.Error("house lines must not depend on the planet list")
		}
		if !reflect.DeepEqual(withPlanets.ZodiacGlyphs, empty.ZodiacGlyphs) {
			t.Error("zodiac glyphs must not depend on the planet list")
		}
		if !reflect.DeepEqual(withPlanets.HouseNumbers, empty.HouseNumbers) {
			t.Error("house numbers must not depend on the planet list")
		}
	})

	t.Run("house lines span from inner to outer ring", func(t *testing.T) {
		l := BuildLayout(emptyResult(), domain.NewSelectionState(), domain.ChartOptions{})
		m := l.Metrics

		for _, line := range l.HouseLines {
			fromDist := math.Hypot(line.From.X-m.Center.X, line.From.Y-m.Center.Y)
			toDist := math.Hypot(line.To.X-m.Center.X, line.To.Y-m.Center.Y)
			if math.Abs(fromDist-m.InnerRadius) > 1e-9 {
				t.Errorf("house %d line starts at distance %v, want inner radius %v",
					line.House, fromDist, m.InnerRadius)
			}
			if math.Abs(toDist-m.OuterRadius) > 1e-9 {
				t.Errorf("house %d line ends at distance %v, want outer radius %v",
					line.House, toDist, m.OuterRadius)
			}
		}
	})

	t.Run("zodiac glyphs sit at sector midpoints on the zodiac ring", func(t *testing.T) {
		l := BuildLayout(emptyResult(), domain.NewSelectionState(), domain.ChartOptions{})
		m := l.Metrics

		for i, glyph := range l.ZodiacGlyphs {
			want := m.PointOnWheel(float64(i)*30+15, m.ZodiacRadius)
			if math.Abs(glyph.Position.X-want.X) > 1e-9 || math.Abs(glyph.Position.Y-want.Y) > 1e-9 {
				t.Errorf("glyph %s at %+v, want %+v", glyph.Sign, glyph.Position, want)
			}
			if glyph.Sign != ref.SignOrder[i] {
				t.Errorf("glyph %d is %s, want %s", i, glyph.Sign, ref.SignOrder[i])
			}
		}
	})

	t.Run("house numbers run 1 through 12 in sector order", func(t *testing.T) {
		l := BuildLayout(emptyResult(), domain.NewSelectionState(), domain.ChartOptions{})

		for i, num := range l.HouseNumbers {
			if num.House != i+1 {
				t.Errorf("house number %d is %d, want %d", i, num.House, i+1)
			}
		}
	})

	t.Run("rings are outer, middle, inner at the configured radii", func(t *testing.T) {
		l := BuildLayout(emptyResult(), domain.NewSelectionState(), domain.ChartOptions{})
		m := l.Metrics

		want := []float64{m.OuterRadius, m.MiddleRadius, m.InnerRadius}
		for i, ring := range l.Rings {
			if ring.Radius != want[i] {
				t.Errorf("ring %d radius %v, want %v", i, ring.Radius, want[i])
			}
		}
	})
}

func TestBuildLayoutDeterminism(t *testing.T) {
	data := domain.Validate([]domain.PlanetPosition{
		{Planet: domain.PlanetSun, Sign: domain.SignAries, Degree: 15, House: 1},
		{Planet: domain.PlanetVenus, Sign: domain.SignLibra, Degree: 195.5, House: 7},
	}, []domain.AspectData{
		{Planet1: domain.PlanetSun, Planet2: domain.PlanetVenus, Type: domain.AspectOpposition, Orb: 0.5},
	}, ref.Tables{})
	sel := domain.NewSelectionState().Hover(domain.PlanetSun)
	opts := domain.ChartOptions{Size: domain.SizeLarge}

	a := BuildLayout(data, sel, opts)
	b := BuildLayout(data, sel, opts)

	if !reflect.DeepEqual(a, b) {
		t.Error("expected identical layouts for identical inputs")
	}
}

func TestBuildLayoutSelectionFlags(t *testing.T) {
	data := domain.Validate([]domain.PlanetPosition{
		{Planet: domain.PlanetSun, Sign: domain.SignAries, Degree: 15, House: 1},
		{Planet: domain.PlanetMoon, Sign: domain.SignLeo, Degree: 135, House: 5},
	}, nil, ref.Tables{})

	t.Run("hovered planet glows", func(t *testing.T) {
		sel := domain.NewSelectionState().Hover(domain.PlanetSun)
		l := BuildLayout(data, sel, domain.ChartOptions{})

		for _, p := range l.Planets {
			wantGlow := p.Planet == domain.PlanetSun
			if p.Glow != wantGlow {
				t.Errorf("planet %s glow = %v, want %v", p.Planet, p.Glow, wantGlow)
			}
		}
	})

	t.Run("selected planet glows without hover", func(t *testing.T) {
		sel := domain.NewSelectionState().Activate(domain.PlanetMoon)
		l := BuildLayout(data, sel, domain.ChartOptions{})

		for _, p := range l.Planets {
			if p.Planet == domain.PlanetMoon && !p.Glow {
				t.Error("expected selected moon to glow")
			}
			if p.Planet == domain.PlanetSun && p.Glow {
				t.Error("expected unselected sun not to glow")
			}
		}
	})

	t.Run("non-interactive chart never glows", func(t *testing.T) {
		off := false
		sel := domain.NewSelectionState().Hover(domain.PlanetSun).Activate(domain.PlanetMoon)
		l := BuildLayout(data, sel, domain.ChartOptions{Interactive: &off})

		for _, p := range l.Planets {
			if p.Glow || p.Hovered || p.Selected {
				t.Errorf("planet %s carries interaction state on a non-interactive chart", p.Planet)
			}
			if p.Interactive {
				t.Errorf("planet %s marked interactive on a non-interactive chart", p.Planet)
			}
		}
	})
}

func TestBuildLayoutAspectGating(t *testing.T) {
	data := domain.Validate([]domain.PlanetPosition{
		{Planet: domain.PlanetSun, Degree: 10},
		{Planet: domain.PlanetMoon, Degree: 130},
	}, []domain.AspectData{
		{Planet1: domain.PlanetSun, Planet2: domain.PlanetMoon, Type: domain.AspectTrine, Orb: 2},
	}, ref.Tables{})

	t.Run("aspects render when enabled", func(t *testing.T) {
		l := BuildLayout(data, domain.NewSelectionState(), domain.ChartOptions{})
		if len(l.Aspects) != 1 {
			t.Errorf("expected 1 aspect line, got %d", len(l.Aspects))
		}
	})

	t.Run("aspects skipped when disabled", func(t *testing.T) {
		off := false
		l := BuildLayout(data, domain.NewSelectionState(), domain.ChartOptions{ShowAspects: &off})
		if len(l.Aspects) != 0 {
			t.Errorf("expected 0 aspect lines, got %d", len(l.Aspects))
		}
	})
}
