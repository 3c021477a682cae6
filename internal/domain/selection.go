package domain

// NoPlanet is the zero value for both selection axes
const NoPlanet PlanetID = ""

// SelectionState tracks the hover and selection axes of one chart instance.
// At most one planet is hovered and at most one is selected at a time; the
// axes are independent, so a planet can be hovered and selected at once.
//
// SelectionState is a value type: transitions return a new state and never
// mutate the receiver, so the rendering step stays a pure function of
// (validated data, selection state, options).
type SelectionState struct {
	Hovered  PlanetID `json:"hovered,omitempty"`
	Selected PlanetID `json:"selected,omitempty"`
}

// NewSelectionState returns the idle state (nothing hovered or selected)
func NewSelectionState() SelectionState {
	return SelectionState{}
}

// Hover returns the state with id as the hovered planet
func (s SelectionState) Hover(id PlanetID) SelectionState {
	s.Hovered = id
	return s
}

// Unhover returns the state with no hovered planet
func (s SelectionState) Unhover() SelectionState {
	s.Hovered = NoPlanet
	return s
}

// Activate applies click/keyboard activation of id: activating the currently
// selected planet deselects it, activating any other planet switches the
// selection to it. Selection never accumulates.
func (s SelectionState) Activate(id PlanetID) SelectionState {
	if s.Selected == id {
		s.Selected = NoPlanet
	} else {
		s.Selected = id
	}
	return s
}

// IsIdle reports whether nothing is hovered or selected
func (s SelectionState) IsIdle() bool {
	return s.Hovered == NoPlanet && s.Selected == NoPlanet
}
