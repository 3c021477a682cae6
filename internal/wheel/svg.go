package wheel

import (
	"fmt"
	"strings"
)

// Palette for the fixed wheel structure
const (
	ringColor       = "#8d7bb5"
	houseLineColor  = "#b3a6d1"
	glyphColor      = "#5e4b8b"
	houseNumColor   = "#8d7bb5"
	markerFill      = "#f5f0ff"
	markerStroke    = "#5e4b8b"
	glowColor       = "#ffd700"
	degreeTextColor = "#6b5b95"
)

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// RenderSVG serializes a layout to SVG. Emission order fixes the z-order:
// rings and house lines first, then zodiac glyphs, house numbers, aspect
// lines, planet markers, and the center mark on top.
func RenderSVG(l Layout) string {
	m := l.Metrics

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.0f %.0f" width="%.0f" height="%.0f" role="img" aria-label="%s">`,
		m.Side, m.Side, m.Side, m.Side, xmlEscaper.Replace(l.Description)))
	sb.WriteString(fmt.Sprintf(`<title>%s</title>`, xmlEscaper.Replace(l.Description)))

	writeRings(&sb, l)
	writeZodiacGlyphs(&sb, l)
	writeHouseNumbers(&sb, l)
	writeAspectLines(&sb, l)
	writePlanetMarks(&sb, l)

	// Center mark
	sb.WriteString(fmt.Sprintf(
		`<circle cx="%.2f" cy="%.2f" r="3" fill="%s"/>`,
		m.Center.X, m.Center.Y, ringColor))

	sb.WriteString(`</svg>`)
	return sb.String()
}

func writeRings(sb *strings.Builder, l Layout) {
	sb.WriteString(`<g class="rings">`)
	for _, ring := range l.Rings {
		sb.WriteString(fmt.Sprintf(
			`<circle cx="%.2f" cy="%.2f" r="%.2f" fill="none" stroke="%s" stroke-width="1.5"/>`,
			ring.Center.X, ring.Center.Y, ring.Radius, ringColor))
	}
	for _, line := range l.HouseLines {
		sb.WriteString(fmt.Sprintf(
			`<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="1"/>`,
			line.From.X, line.From.Y, line.To.X, line.To.Y, houseLineColor))
	}
	sb.WriteString(`</g>`)
}

func writeZodiacGlyphs(sb *strings.Builder, l Layout) {
	fontSize := l.Metrics.Side * 0.045

	sb.WriteString(`<g class="zodiac">`)
	for _, glyph := range l.ZodiacGlyphs {
		sb.WriteString(fmt.Sprintf(
			`<text x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="central" font-size="%.1f" fill="%s" data-sign="%s"><title>%s</title>%s</text>`,
			glyph.Position.X, glyph.Position.Y, fontSize, glyphColor,
			glyph.Sign, xmlEscaper.Replace(glyph.Name), glyph.Symbol))
	}
	sb.WriteString(`</g>`)
}

func writeHouseNumbers(sb *strings.Builder, l Layout) {
	fontSize := l.Metrics.Side * 0.03

	sb.WriteString(`<g class="houses">`)
	for _, num := range l.HouseNumbers {
		sb.WriteString(fmt.Sprintf(
			`<text x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="central" font-size="%.1f" fill="%s">%d</text>`,
			num.Position.X, num.Position.Y, fontSize, houseNumColor, num.House))
	}
	sb.WriteString(`</g>`)
}

func writeAspectLines(sb *strings.Builder, l Layout) {
	if len(l.Aspects) == 0 {
		return
	}

	sb.WriteString(`<g class="aspects">`)
	for _, a := range l.Aspects {
		dash := ""
		if a.Dashed {
			dash = ` stroke-dasharray="6 4"`
		}
		sb.WriteString(fmt.Sprintf(
			`<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="1.5" stroke-opacity="%.2f" data-aspect="%s"%s/>`,
			a.From.X, a.From.Y, a.To.X, a.To.Y, a.Color, a.Opacity, a.Type, dash))
	}
	sb.WriteString(`</g>`)
}

func writePlanetMarks(sb *strings.Builder, l Layout) {
	m := l.Metrics
	markerRadius := m.Side * 0.03
	symbolSize := m.Side * 0.035
	labelSize := m.Side * 0.025

	sb.WriteString(`<g class="planets">`)
	for _, p := range l.Planets {
		attrs := ""
		if p.Interactive {
			attrs = ` tabindex="0" role="button" cursor="pointer"`
		}
		sb.WriteString(fmt.Sprintf(
			`<g data-planet="%s" aria-label="%s"%s>`,
			p.Planet, xmlEscaper.Replace(p.AriaLabel), attrs))

		if p.Glow {
			sb.WriteString(fmt.Sprintf(
				`<circle class="glow" cx="%.2f" cy="%.2f" r="%.2f" fill="%s" fill-opacity="0.35"/>`,
				p.Position.X, p.Position.Y, markerRadius*1.7, glowColor))
		}

		sb.WriteString(fmt.Sprintf(
			`<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s" stroke="%s" stroke-width="1.5"/>`,
			p.Position.X, p.Position.Y, markerRadius, markerFill, markerStroke))
		sb.WriteString(fmt.Sprintf(
			`<text x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="central" font-size="%.1f" fill="%s">%s</text>`,
			p.Position.X, p.Position.Y, symbolSize, glyphColor, p.Symbol))
		sb.WriteString(fmt.Sprintf(
			`<text class="degree" x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="central" font-size="%.1f" fill="%s">%s</text>`,
			p.LabelPosition.X, p.LabelPosition.Y, labelSize, degreeTextColor, p.DegreeLabel))

		sb.WriteString(`</g>`)
	}
	sb.WriteString(`</g>`)
}
