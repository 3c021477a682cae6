package wheel

import (
	"fmt"
	"math"

	"astroloh/internal/domain"
	"astroloh/internal/ref"
)

// PlanetMark is one rendered planet: the marker on the middle ring, its
// degree label, and the interaction/accessibility state attached to it.
type PlanetMark struct {
	Planet        domain.PlanetID `json:"planet"`
	Symbol        string          `json:"symbol"`
	Name          string          `json:"name"`
	Degree        float64         `json:"degree"`
	House         int             `json:"house"`
	Position      Point           `json:"position"`
	DegreeLabel   string          `json:"degree_label"`
	LabelPosition Point           `json:"label_position"`
	Hovered       bool            `json:"hovered"`
	Selected      bool            `json:"selected"`
	Glow          bool            `json:"glow"`
	Interactive   bool            `json:"interactive"`
	AriaLabel     string          `json:"aria_label"`
}

// unknownSignPhrase is the fallback when a sign id does not resolve
const unknownSignPhrase = "an unknown sign"

// DegreeLabel formats an ecliptic degree for display: rounded to the nearest
// whole degree with a degree suffix. Values already in [0, 360] keep their
// rounded form, so 359.6 renders as "360°"; anything outside that range is
// wrapped first, which also keeps the float-to-int conversion in range for
// arbitrarily large finite degrees.
func DegreeLabel(degree float64) string {
	d := degree
	if d < 0 || d > 360 {
		d = math.Mod(d, 360)
		if d < 0 {
			d += 360
		}
	}
	return fmt.Sprintf("%d°", int(math.Round(d)))
}

// AccessibleLabel builds the per-planet sentence combining display name,
// rounded degree, sign name and house number
func AccessibleLabel(p domain.PlanetPosition) string {
	name := string(p.Planet)
	if info, ok := ref.Planet(p.Planet); ok {
		name = info.Name
	}

	signName := unknownSignPhrase
	if info, ok := ref.Sign(p.Sign); ok {
		signName = info.Name
	}

	return fmt.Sprintf("%s at %s in %s, house %d", name, DegreeLabel(p.Degree), signName, p.House)
}

func buildPlanetMarks(m Metrics, planets []domain.PlanetPosition, sel domain.SelectionState, interactive bool) []PlanetMark {
	labelRadius := m.MiddleRadius + m.Side*0.045

	marks := make([]PlanetMark, 0, len(planets))
	for _, p := range planets {
		info, _ := ref.Planet(p.Planet)

		hovered := interactive && sel.Hovered == p.Planet
		selected := interactive && sel.Selected == p.Planet

		marks = append(marks, PlanetMark{
			Planet:        p.Planet,
			Symbol:        info.Symbol,
			Name:          info.Name,
			Degree:        p.Degree,
			House:         p.House,
			Position:      m.PointOnWheel(p.Degree, m.MiddleRadius),
			DegreeLabel:   DegreeLabel(p.Degree),
			LabelPosition: m.PointOnWheel(p.Degree, labelRadius),
			Hovered:       hovered,
			Selected:      selected,
			Glow:          hovered || selected,
			Interactive:   interactive,
			AriaLabel:     AccessibleLabel(p),
		})
	}
	return marks
}
