package ref

import "math"

// LunarPhaseID identifies one of the eight lunar phases
type LunarPhaseID string

const (
	PhaseNewMoon        LunarPhaseID = "new_moon"
	PhaseWaxingCrescent LunarPhaseID = "waxing_crescent"
	PhaseFirstQuarter   LunarPhaseID = "first_quarter"
	PhaseWaxingGibbous  LunarPhaseID = "waxing_gibbous"
	PhaseFullMoon       LunarPhaseID = "full_moon"
	PhaseWaningGibbous  LunarPhaseID = "waning_gibbous"
	PhaseLastQuarter    LunarPhaseID = "last_quarter"
	PhaseWaningCrescent LunarPhaseID = "waning_crescent"
)

// LunarPhaseInfo describes one lunar phase
type LunarPhaseInfo struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

var lunarPhases = map[LunarPhaseID]LunarPhaseInfo{
	PhaseNewMoon:        {Symbol: "🌑", Name: "New Moon"},
	PhaseWaxingCrescent: {Symbol: "🌒", Name: "Waxing Crescent"},
	PhaseFirstQuarter:   {Symbol: "🌓", Name: "First Quarter"},
	PhaseWaxingGibbous:  {Symbol: "🌔", Name: "Waxing Gibbous"},
	PhaseFullMoon:       {Symbol: "🌕", Name: "Full Moon"},
	PhaseWaningGibbous:  {Symbol: "🌖", Name: "Waning Gibbous"},
	PhaseLastQuarter:    {Symbol: "🌗", Name: "Last Quarter"},
	PhaseWaningCrescent: {Symbol: "🌘", Name: "Waning Crescent"},
}

// LunarPhase looks up a lunar phase by identifier
func LunarPhase(id LunarPhaseID) (LunarPhaseInfo, bool) {
	info, ok := lunarPhases[id]
	return info, ok
}

// phaseOrder lists the phases by increasing sun-moon elongation
var phaseOrder = [8]LunarPhaseID{
	PhaseNewMoon,
	PhaseWaxingCrescent,
	PhaseFirstQuarter,
	PhaseWaxingGibbous,
	PhaseFullMoon,
	PhaseWaningGibbous,
	PhaseLastQuarter,
	PhaseWaningCrescent,
}

// PhaseFromElongation maps the moon's elongation from the sun (in degrees)
// to its phase. Each phase covers a 45° sector centered on its exact angle:
// new moon at 0°, full moon at 180°. Non-finite input maps to the zero angle.
func PhaseFromElongation(elongation float64) LunarPhaseID {
	e := math.Mod(elongation, 360)
	if math.IsNaN(e) {
		return PhaseNewMoon
	}
	if e < 0 {
		e += 360
	}
	idx := int((e+22.5)/45) % 8
	return phaseOrder[idx]
}
