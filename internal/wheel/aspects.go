package wheel

import (
	"astroloh/internal/domain"
)

// Aspect line hues: harmonious aspects (trine, sextile) render green, all
// other types render red
const (
	harmoniousColor = "#2e7d32"
	tenseColor      = "#c62828"
)

// AspectLine is one rendered relationship line between two planet markers
type AspectLine struct {
	Planet1 domain.PlanetID   `json:"planet1"`
	Planet2 domain.PlanetID   `json:"planet2"`
	Type    domain.AspectType `json:"type"`
	Orb     float64           `json:"orb"`
	From    Point             `json:"from"`
	To      Point             `json:"to"`
	Opacity float64           `json:"opacity"`
	Color   string            `json:"color"`
	Dashed  bool              `json:"dashed"`
}

// AspectOpacity computes the visual weight of an aspect from its orb: exact
// aspects (orb 0) are fully opaque, opacity falls linearly with orb and is
// floored at 0.1 from orb 9 upward. The orb is clamped for this computation
// only; the record itself is never mutated.
func AspectOpacity(orb float64) float64 {
	if orb < 0 {
		orb = 0
	}
	opacity := 1 - orb/10
	if opacity < 0.1 {
		opacity = 0.1
	}
	return opacity
}

// Harmonious reports whether t is conventionally considered a harmonious
// aspect type
func Harmonious(t domain.AspectType) bool {
	return t == domain.AspectTrine || t == domain.AspectSextile
}

func buildAspectLines(m Metrics, data domain.ValidationResult) []AspectLine {
	// Endpoint degrees come from the accepted planet set; the validator
	// guarantees both endpoints resolve here.
	degrees := make(map[domain.PlanetID]float64, len(data.Planets))
	for _, p := range data.Planets {
		if _, ok := degrees[p.Planet]; !ok {
			degrees[p.Planet] = p.Degree
		}
	}

	lines := make([]AspectLine, 0, len(data.Aspects))
	for _, a := range data.Aspects {
		d1, ok1 := degrees[a.Planet1]
		d2, ok2 := degrees[a.Planet2]
		if !ok1 || !ok2 {
			continue
		}

		color := tenseColor
		if Harmonious(a.Type) {
			color = harmoniousColor
		}

		lines = append(lines, AspectLine{
			Planet1: a.Planet1,
			Planet2: a.Planet2,
			Type:    a.Type,
			Orb:     a.Orb,
			From:    m.PointOnWheel(d1, m.MiddleRadius),
			To:      m.PointOnWheel(d2, m.MiddleRadius),
			Opacity: AspectOpacity(a.Orb),
			Color:   color,
			Dashed:  a.Type == domain.AspectOpposition,
		})
	}
	return lines
}
