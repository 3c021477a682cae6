package domain

import (
	"math"
	"time"
)

// PlanetID identifies a charted body (planet, luminary or node)
type PlanetID string

const (
	PlanetSun       PlanetID = "sun"
	PlanetMoon      PlanetID = "moon"
	PlanetMercury   PlanetID = "mercury"
	PlanetVenus     PlanetID = "venus"
	PlanetMars      PlanetID = "mars"
	PlanetJupiter   PlanetID = "jupiter"
	PlanetSaturn    PlanetID = "saturn"
	PlanetUranus    PlanetID = "uranus"
	PlanetNeptune   PlanetID = "neptune"
	PlanetPluto     PlanetID = "pluto"
	PlanetNorthNode PlanetID = "north_node"
	PlanetSouthNode PlanetID = "south_node"
	PlanetChiron    PlanetID = "chiron"
)

// SignID identifies one of the twelve zodiac signs
type SignID string

const (
	SignAries       SignID = "aries"
	SignTaurus      SignID = "taurus"
	SignGemini      SignID = "gemini"
	SignCancer      SignID = "cancer"
	SignLeo         SignID = "leo"
	SignVirgo       SignID = "virgo"
	SignLibra       SignID = "libra"
	SignScorpio     SignID = "scorpio"
	SignSagittarius SignID = "sagittarius"
	SignCapricorn   SignID = "capricorn"
	SignAquarius    SignID = "aquarius"
	SignPisces      SignID = "pisces"
)

// AspectType identifies a named angular relationship between two planets
type AspectType string

const (
	AspectConjunction AspectType = "conjunction"
	AspectSextile     AspectType = "sextile"
	AspectSquare      AspectType = "square"
	AspectTrine       AspectType = "trine"
	AspectOpposition  AspectType = "opposition"
	AspectQuincunx    AspectType = "quincunx"
)

// PlanetPosition places one charted body on the zodiacal circle.
// Degree is the ecliptic longitude, conventionally in [0, 360); values
// outside that range are tolerated (angle arithmetic is modular) but a
// non-finite degree disqualifies the record during validation.
type PlanetPosition struct {
	Planet PlanetID `json:"planet" yaml:"planet"`
	Sign   SignID   `json:"sign" yaml:"sign"`
	Degree float64  `json:"degree" yaml:"degree"`
	House  int      `json:"house" yaml:"house"`
}

// FiniteDegree reports whether the position's degree is a finite number
func (p PlanetPosition) FiniteDegree() bool {
	return !math.IsNaN(p.Degree) && !math.IsInf(p.Degree, 0)
}

// AspectData describes a directed-but-symmetric relationship between two
// planets. Orb is the non-negative deviation in degrees from the aspect's
// exact angle; it is clamped for visual-weight computation but never mutated.
type AspectData struct {
	Planet1 PlanetID   `json:"planet1" yaml:"planet1"`
	Planet2 PlanetID   `json:"planet2" yaml:"planet2"`
	Type    AspectType `json:"type" yaml:"type"`
	Orb     float64    `json:"orb" yaml:"orb"`
}

// ChartSize selects a fixed scale preset for the overall drawing area
type ChartSize string

const (
	SizeSmall  ChartSize = "small"
	SizeMedium ChartSize = "medium"
	SizeLarge  ChartSize = "large"
)

// ChartOptions configures how a chart is rendered.
// Nil pointer fields mean "use the default" (interactive and aspect display
// both default to enabled), mirroring how absent keys behave on decode.
type ChartOptions struct {
	Size        ChartSize `json:"size,omitempty" yaml:"size,omitempty"`
	Interactive *bool     `json:"interactive,omitempty" yaml:"interactive,omitempty"`
	ShowAspects *bool     `json:"show_aspects,omitempty" yaml:"show_aspects,omitempty"`
}

// EffectiveSize returns the size preset to use (default medium)
func (o ChartOptions) EffectiveSize() ChartSize {
	switch o.Size {
	case SizeSmall, SizeMedium, SizeLarge:
		return o.Size
	}
	return SizeMedium
}

// IsInteractive reports whether hover/selection/focus behavior is enabled
func (o ChartOptions) IsInteractive() bool {
	return o.Interactive == nil || *o.Interactive
}

// AspectsShown reports whether aspect lines are rendered
func (o ChartOptions) AspectsShown() bool {
	return o.ShowAspects == nil || *o.ShowAspects
}

// Chart is a stored natal chart: the raw input records plus render options.
// Raw records are kept as supplied; validation happens at render time.
type Chart struct {
	ID        string           `json:"id" yaml:"id"`
	Name      string           `json:"name" yaml:"name"`
	BirthDate time.Time        `json:"birth_date" yaml:"birth_date"`
	Planets   []PlanetPosition `json:"planets" yaml:"planets"`
	Aspects   []AspectData     `json:"aspects" yaml:"aspects"`
	Options   ChartOptions     `json:"options" yaml:"options"`
	CreatedAt time.Time        `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time        `json:"updated_at" yaml:"updated_at"`
}
