package wheel

import (
	"math"

	"astroloh/internal/domain"
	"astroloh/internal/ref"
)

// DetailPanel describes the currently selected planet for the side panel.
// It exists only while a selection exists.
type DetailPanel struct {
	Planet      domain.PlanetID `json:"planet"`
	Name        string          `json:"name"`
	Symbol      string          `json:"symbol"`
	SignName    string          `json:"sign_name"`
	SignSymbol  string          `json:"sign_symbol"`
	House       int             `json:"house"`
	DegreeLabel string          `json:"degree_label"`

	// LunarPhase is set only when the moon is selected and the sun is
	// also on the wheel; the phase follows from their elongation.
	LunarPhase *ref.LunarPhaseInfo `json:"lunar_phase,omitempty"`
}

// BuildDetailPanel derives the detail panel from the current selection.
// Returns nil when nothing is selected or the selected id is not in the
// accepted planet set.
func BuildDetailPanel(data domain.ValidationResult, sel domain.SelectionState) *DetailPanel {
	if sel.Selected == domain.NoPlanet {
		return nil
	}

	for _, p := range data.Planets {
		if p.Planet != sel.Selected {
			continue
		}

		panel := &DetailPanel{
			Planet:      p.Planet,
			Name:        string(p.Planet),
			House:       p.House,
			DegreeLabel: DegreeLabel(p.Degree),
		}
		if info, ok := ref.Planet(p.Planet); ok {
			panel.Name = info.Name
			panel.Symbol = info.Symbol
		}
		if info, ok := ref.Sign(p.Sign); ok {
			panel.SignName = info.Name
			panel.SignSymbol = info.Symbol
		} else {
			panel.SignName = unknownSignPhrase
		}
		if p.Planet == domain.PlanetMoon {
			panel.LunarPhase = moonPhase(data, p.Degree)
		}
		return panel
	}
	return nil
}

func moonPhase(data domain.ValidationResult, moonDegree float64) *ref.LunarPhaseInfo {
	for _, p := range data.Planets {
		if p.Planet != domain.PlanetSun {
			continue
		}
		// Both degrees are finite, but their difference can still
		// overflow; no phase is better than a fabricated one.
		elongation := moonDegree - p.Degree
		if math.IsInf(elongation, 0) || math.IsNaN(elongation) {
			return nil
		}
		info, ok := ref.LunarPhase(ref.PhaseFromElongation(elongation))
		if !ok {
			return nil
		}
		return &info
	}
	return nil
}
