package domain

// Reference is the read-only lookup surface the validator needs from the
// reference tables. The tables themselves live outside the domain package;
// the validator only asks whether an identifier is known.
type Reference interface {
	KnownPlanet(id PlanetID) bool
	KnownAspect(t AspectType) bool
}

// Rejection reasons recorded on dropped records
const (
	ReasonNonFiniteDegree = "non-finite degree"
	ReasonUnknownPlanet   = "unknown planet identifier"
	ReasonUnknownAspect   = "unknown aspect type"
	ReasonMissingEndpoint = "endpoint not in accepted planet set"
)

// RejectedPlanet is a planet record dropped during validation
type RejectedPlanet struct {
	Record PlanetPosition `json:"record"`
	Reason string         `json:"reason"`
}

// RejectedAspect is an aspect record dropped during validation
type RejectedAspect struct {
	Record AspectData `json:"record"`
	Reason string     `json:"reason"`
}

// ValidationResult is the typed accepted/rejected partition of the raw input.
// Layout code only ever sees the accepted slices; the rejected slices exist
// for diagnostics and are never rendered.
type ValidationResult struct {
	Planets         []PlanetPosition `json:"planets"`
	Aspects         []AspectData     `json:"aspects"`
	RejectedPlanets []RejectedPlanet `json:"rejected_planets,omitempty"`
	RejectedAspects []RejectedAspect `json:"rejected_aspects,omitempty"`
}

// HasPlanet reports whether id is in the accepted planet set
func (v ValidationResult) HasPlanet(id PlanetID) bool {
	for _, p := range v.Planets {
		if p.Planet == id {
			return true
		}
	}
	return false
}

// Validate filters raw planet and aspect records into a render-safe set.
//
// A planet record is rejected if its degree is not finite or its planet
// identifier is unknown to the reference tables. An aspect record is rejected
// if its type is unknown or if either endpoint does not correspond to an
// accepted planet record from this same pass. No input ever makes validation
// fail: the result is always usable, down to the degenerate case of zero
// planets and zero aspects.
func Validate(planets []PlanetPosition, aspects []AspectData, ref Reference) ValidationResult {
	result := ValidationResult{
		Planets: make([]PlanetPosition, 0, len(planets)),
		Aspects: make([]AspectData, 0, len(aspects)),
	}

	accepted := make(map[PlanetID]bool, len(planets))
	for _, p := range planets {
		switch {
		case !p.FiniteDegree():
			result.RejectedPlanets = append(result.RejectedPlanets, RejectedPlanet{
				Record: p,
				Reason: ReasonNonFiniteDegree,
			})
		case !ref.KnownPlanet(p.Planet):
			result.RejectedPlanets = append(result.RejectedPlanets, RejectedPlanet{
				Record: p,
				Reason: ReasonUnknownPlanet,
			})
		default:
			result.Planets = append(result.Planets, p)
			accepted[p.Planet] = true
		}
	}

	for _, a := range aspects {
		switch {
		case !ref.KnownAspect(a.Type):
			result.RejectedAspects = append(result.RejectedAspects, RejectedAspect{
				Record: a,
				Reason: ReasonUnknownAspect,
			})
		case !accepted[a.Planet1] || !accepted[a.Planet2]:
			result.RejectedAspects = append(result.RejectedAspects, RejectedAspect{
				Record: a,
				Reason: ReasonMissingEndpoint,
			})
		default:
			result.Aspects = append(result.Aspects, a)
		}
	}

	return result
}
