// Package domain defines the core domain types for the Astroloh natal chart system.
//
// This package contains the fundamental entities and value objects that represent
// astrological chart concepts: planet positions, aspects between planets,
// chart rendering options, and the hover/selection interaction state.
//
// # Core Types
//
// PlanetPosition places one charted body on the zodiacal circle: a planet
// identifier, its sign, its ecliptic degree and its house number.
//
// AspectData describes a named angular relationship between two planets with
// an orb (the deviation in degrees from the exact aspect angle).
//
// SelectionState is the interaction state of one chart instance: at most one
// hovered planet and at most one selected planet, mutated only through pure
// transition functions.
//
// # Validation
//
// Validate partitions raw planet and aspect records into accepted and rejected
// sets before any layout code runs. Rejected records carry a reason and never
// abort rendering; layout code only ever sees accepted records.
//
// # Design Principles
//
// - Immutable value objects where possible
// - No database or external dependencies
// - Pure domain logic without infrastructure concerns
// - Rich type system with meaningful constants and enumerations
package domain
