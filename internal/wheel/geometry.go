package wheel

import (
	"math"

	"astroloh/internal/domain"
)

// Point is a cartesian point on the drawing surface (y grows downward)
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Metrics fixes the drawing surface and ring radii for one size preset.
// The surface is square with the wheel center at its midpoint.
type Metrics struct {
	Side             float64 `json:"side"`
	Center           Point   `json:"center"`
	OuterRadius      float64 `json:"outer_radius"`
	ZodiacRadius     float64 `json:"zodiac_radius"`
	MiddleRadius     float64 `json:"middle_radius"`
	HouseLabelRadius float64 `json:"house_label_radius"`
	InnerRadius      float64 `json:"inner_radius"`
}

// Side lengths per size preset
const (
	sideSmall  = 300.0
	sideMedium = 400.0
	sideLarge  = 500.0
)

// Ring radii as fractions of the side length. Zodiac glyphs sit slightly
// inside the outer ring, house numbers slightly outside the inner ring.
const (
	outerFraction      = 0.45
	zodiacFraction     = 0.40
	middleFraction     = 0.34
	houseLabelFraction = 0.28
	innerFraction      = 0.24
)

// MetricsFor returns the metrics for a size preset
func MetricsFor(size domain.ChartSize) Metrics {
	side := sideMedium
	switch size {
	case domain.SizeSmall:
		side = sideSmall
	case domain.SizeLarge:
		side = sideLarge
	}

	c := side / 2
	return Metrics{
		Side:             side,
		Center:           Point{X: c, Y: c},
		OuterRadius:      side * outerFraction,
		ZodiacRadius:     side * zodiacFraction,
		MiddleRadius:     side * middleFraction,
		HouseLabelRadius: side * houseLabelFraction,
		InnerRadius:      side * innerFraction,
	}
}

// PointOnWheel maps an ecliptic degree and a radius to a point on the circle
// of that radius around the wheel center. Degree 0 is the topmost point of
// the circle and increasing degree sweeps clockwise: the conventional
// mathematical angle is rotated by -90 degrees before applying cosine/sine,
// and the screen convention (y down) makes the sweep clockwise. The mapping
// is invariant under degree += 360 and never fails for finite input.
func (m Metrics) PointOnWheel(degree, radius float64) Point {
	rad := (degree - 90) * math.Pi / 180
	return Point{
		X: m.Center.X + radius*math.Cos(rad),
		Y: m.Center.Y + radius*math.Sin(rad),
	}
}
