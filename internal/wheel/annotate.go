package wheel

import (
	"fmt"

	"astroloh/internal/domain"
)

// Description summarizes the whole diagram for assistive technology: the
// count of rendered planets and, when aspect display is enabled and nonzero,
// the count of rendered aspects. It derives solely from the validated data
// set, never from hover/selection state, so identical input always yields an
// identical description.
func Description(data domain.ValidationResult, opts domain.ChartOptions) string {
	planets := fmt.Sprintf("%d planets", len(data.Planets))
	if len(data.Planets) == 1 {
		planets = "1 planet"
	}

	if opts.AspectsShown() && len(data.Aspects) > 0 {
		aspects := fmt.Sprintf("%d aspects", len(data.Aspects))
		if len(data.Aspects) == 1 {
			aspects = "1 aspect"
		}
		return fmt.Sprintf("Natal chart wheel with %s and %s", planets, aspects)
	}

	return fmt.Sprintf("Natal chart wheel with %s and no aspects displayed", planets)
}

// PlanetLabels returns the per-planet accessible sentences in render order
func PlanetLabels(data domain.ValidationResult) []string {
	labels := make([]string, 0, len(data.Planets))
	for _, p := range data.Planets {
		labels = append(labels, AccessibleLabel(p))
	}
	return labels
}
