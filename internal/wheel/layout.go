package wheel

import (
	"astroloh/internal/domain"
	"astroloh/internal/ref"
)

// Ring is one of the fixed concentric reference circles
type Ring struct {
	Center Point   `json:"center"`
	Radius float64 `json:"radius"`
}

// HouseLine is one of the twelve house-division segments, spanning from the
// inner ring to the outer ring
type HouseLine struct {
	House int   `json:"house"`
	From  Point `json:"from"`
	To    Point `json:"to"`
}

// ZodiacGlyph places one sign symbol at the midpoint of its 30-degree sector
type ZodiacGlyph struct {
	Sign     domain.SignID `json:"sign"`
	Symbol   string        `json:"symbol"`
	Name     string        `json:"name"`
	Position Point         `json:"position"`
}

// HouseNumber places one house label (1-12) in sector order
type HouseNumber struct {
	House    int   `json:"house"`
	Position Point `json:"position"`
}

// Layout is the complete derived geometry of one wheel render. It is a pure
// function of (validated data, selection state, options) and is never stored.
type Layout struct {
	Metrics      Metrics        `json:"metrics"`
	Rings        [3]Ring        `json:"rings"`
	HouseLines   []HouseLine    `json:"house_lines"`
	ZodiacGlyphs []ZodiacGlyph  `json:"zodiac_glyphs"`
	HouseNumbers []HouseNumber  `json:"house_numbers"`
	Planets      []PlanetMark   `json:"planets"`
	Aspects      []AspectLine   `json:"aspects"`
	Interactive  bool           `json:"interactive"`
	Description  string         `json:"description"`
}

// BuildLayout derives the full wheel geometry from validated data. The fixed
// structure (rings, house lines, glyphs, house numbers) never depends on the
// dynamic input: it is identical for an empty chart.
func BuildLayout(data domain.ValidationResult, sel domain.SelectionState, opts domain.ChartOptions) Layout {
	m := MetricsFor(opts.EffectiveSize())
	interactive := opts.IsInteractive()

	layout := Layout{
		Metrics:     m,
		Interactive: interactive,
		Rings: [3]Ring{
			{Center: m.Center, Radius: m.OuterRadius},
			{Center: m.Center, Radius: m.MiddleRadius},
			{Center: m.Center, Radius: m.InnerRadius},
		},
		HouseLines:   buildHouseLines(m),
		ZodiacGlyphs: buildZodiacGlyphs(m),
		HouseNumbers: buildHouseNumbers(m),
		Planets:      buildPlanetMarks(m, data.Planets, sel, interactive),
		Description:  Description(data, opts),
	}

	if opts.AspectsShown() {
		layout.Aspects = buildAspectLines(m, data)
	}

	return layout
}

func buildHouseLines(m Metrics) []HouseLine {
	lines := make([]HouseLine, 0, 12)
	for i := 0; i < 12; i++ {
		degree := float64(i) * 30
		lines = append(lines, HouseLine{
			House: i + 1,
			From:  m.PointOnWheel(degree, m.InnerRadius),
			To:    m.PointOnWheel(degree, m.OuterRadius),
		})
	}
	return lines
}

func buildZodiacGlyphs(m Metrics) []ZodiacGlyph {
	glyphs := make([]ZodiacGlyph, 0, 12)
	for i, id := range ref.SignOrder {
		info, _ := ref.Sign(id)
		midpoint := float64(i)*30 + 15
		glyphs = append(glyphs, ZodiacGlyph{
			Sign:     id,
			Symbol:   info.Symbol,
			Name:     info.Name,
			Position: m.PointOnWheel(midpoint, m.ZodiacRadius),
		})
	}
	return glyphs
}

func buildHouseNumbers(m Metrics) []HouseNumber {
	numbers := make([]HouseNumber, 0, 12)
	for i := 0; i < 12; i++ {
		midpoint := float64(i)*30 + 15
		numbers = append(numbers, HouseNumber{
			House:    i + 1,
			Position: m.PointOnWheel(midpoint, m.HouseLabelRadius),
		})
	}
	return numbers
}
