package wheel

import (
	"math"
	"testing"

	"astroloh/internal/domain"
)

const tolerance = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestMetricsFor(t *testing.T) {
	t.Run("presets scale the surface", func(t *testing.T) {
		small := MetricsFor(domain.SizeSmall)
		medium := MetricsFor(domain.SizeMedium)
		large := MetricsFor(domain.SizeLarge)

		if !(small.Side < medium.Side && medium.Side < large.Side) {
			t.Errorf("expected small < medium < large, got %v %v %v",
				small.Side, medium.Side, large.Side)
		}
	})

	t.Run("center is the surface midpoint", func(t *testing.T) {
		m := MetricsFor(domain.SizeMedium)

		if !approxEqual(m.Center.X, m.Side/2) || !approxEqual(m.Center.Y, m.Side/2) {
			t.Errorf("expected center at (%v, %v), got (%v, %v)",
				m.Side/2, m.Side/2, m.Center.X, m.Center.Y)
		}
	})

	t.Run("rings are ordered outer > zodiac > middle > house label > inner", func(t *testing.T) {
		m := MetricsFor(domain.SizeMedium)

		radii := []float64{m.OuterRadius, m.ZodiacRadius, m.MiddleRadius, m.HouseLabelRadius, m.InnerRadius}
		for i := 1; i < len(radii); i++ {
			if radii[i] >= radii[i-1] {
				t.Errorf("expected strictly decreasing radii, got %v", radii)
				break
			}
		}
	})
}

func TestPointOnWheelRingInvariant(t *testing.T) {
	m := MetricsFor(domain.SizeMedium)

	degrees := []float64{0, 1, 29.9, 45, 90, 123.456, 180, 270, 359.999, -15, 720.5}
	radii := []float64{0, 10, m.InnerRadius, m.MiddleRadius, m.OuterRadius}

	for _, deg := range degrees {
		for _, r := range radii {
			p := m.PointOnWheel(deg, r)
			dist := math.Hypot(p.X-m.Center.X, p.Y-m.Center.Y)
			if math.Abs(dist-r) > 1e-9 {
				t.Errorf("point at degree %v radius %v lies at distance %v from center", deg, r, dist)
			}
		}
	}
}

func TestPointOnWheelPeriodicity(t *testing.T) {
	m := MetricsFor(domain.SizeMedium)

	degrees := []float64{0, 13.7, 90, 200.25, 359}
	for _, deg := range degrees {
		for _, k := range []float64{-2, -1, 1, 3} {
			a := m.PointOnWheel(deg, m.MiddleRadius)
			b := m.PointOnWheel(deg+360*k, m.MiddleRadius)
			if math.Abs(a.X-b.X) > 1e-6 || math.Abs(a.Y-b.Y) > 1e-6 {
				t.Errorf("degree %v and %v map to different points: %+v vs %+v",
					deg, deg+360*k, a, b)
			}
		}
	}
}

func TestPointOnWheelLandmarks(t *testing.T) {
	m := MetricsFor(domain.SizeMedium)
	r := m.MiddleRadius

	t.Run("0 degrees is the topmost point", func(t *testing.T) {
		p := m.PointOnWheel(0, r)
		if !approxEqual(p.X, m.Center.X) || !approxEqual(p.Y, m.Center.Y-r) {
			t.Errorf("expected (%v, %v), got (%v, %v)", m.Center.X, m.Center.Y-r, p.X, p.Y)
		}
	})

	t.Run("90 degrees is the rightmost point", func(t *testing.T) {
		p := m.PointOnWheel(90, r)
		if !approxEqual(p.X, m.Center.X+r) || !approxEqual(p.Y, m.Center.Y) {
			t.Errorf("expected (%v, %v), got (%v, %v)", m.Center.X+r, m.Center.Y, p.X, p.Y)
		}
	})

	t.Run("180 degrees is the bottommost point", func(t *testing.T) {
		p := m.PointOnWheel(180, r)
		if !approxEqual(p.X, m.Center.X) || !approxEqual(p.Y, m.Center.Y+r) {
			t.Errorf("expected (%v, %v), got (%v, %v)", m.Center.X, m.Center.Y+r, p.X, p.Y)
		}
	})

	t.Run("270 degrees is the leftmost point", func(t *testing.T) {
		p := m.PointOnWheel(270, r)
		if !approxEqual(p.X, m.Center.X-r) || !approxEqual(p.Y, m.Center.Y) {
			t.Errorf("expected (%v, %v), got (%v, %v)", m.Center.X-r, m.Center.Y, p.X, p.Y)
		}
	})

	t.Run("landmarks form right angles around the center", func(t *testing.T) {
		points := []Point{
			m.PointOnWheel(0, r),
			m.PointOnWheel(90, r),
			m.PointOnWheel(180, r),
			m.PointOnWheel(270, r),
		}
		// Adjacent landmarks are separated by r*sqrt(2)
		want := r * math.Sqrt2
		for i := range points {
			next := points[(i+1)%4]
			d := math.Hypot(points[i].X-next.X, points[i].Y-next.Y)
			if math.Abs(d-want) > 1e-6 {
				t.Errorf("landmark %d to %d distance %v, want %v", i, (i+1)%4, d, want)
			}
		}
	})

	t.Run("zero radius collapses to the center", func(t *testing.T) {
		p := m.PointOnWheel(123.4, 0)
		if !approxEqual(p.X, m.Center.X) || !approxEqual(p.Y, m.Center.Y) {
			t.Errorf("expected center, got (%v, %v)", p.X, p.Y)
		}
	})
}
