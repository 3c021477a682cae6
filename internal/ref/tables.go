// Package ref holds the shared reference tables: zodiac signs, charted
// bodies, aspect types and lunar phases. The tables are immutable for the
// process lifetime and shared read-only by every chart instance; no writer
// exists after initialization, so no locking is needed.
package ref

import (
	"astroloh/internal/domain"
)

// SignInfo describes one zodiac sign
type SignInfo struct {
	Symbol  string `json:"symbol"`
	Name    string `json:"name"`
	Element string `json:"element"`
}

// PlanetInfo describes one charted body
type PlanetInfo struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// AspectInfo describes one aspect type, including its canonical angular
// separation. The renderer does not need the angle (orb arrives on each
// record); it is reference metadata for clients.
type AspectInfo struct {
	Symbol string  `json:"symbol"`
	Name   string  `json:"name"`
	Angle  float64 `json:"angle"`
}

// SignOrder is the fixed sector order of the zodiac, index 0 at Aries.
// Sector i spans [i*30, (i+1)*30) degrees of ecliptic longitude.
var SignOrder = [12]domain.SignID{
	domain.SignAries,
	domain.SignTaurus,
	domain.SignGemini,
	domain.SignCancer,
	domain.SignLeo,
	domain.SignVirgo,
	domain.SignLibra,
	domain.SignScorpio,
	domain.SignSagittarius,
	domain.SignCapricorn,
	domain.SignAquarius,
	domain.SignPisces,
}

var signs = map[domain.SignID]SignInfo{
	domain.SignAries:       {Symbol: "♈", Name: "Aries", Element: "fire"},
	domain.SignTaurus:      {Symbol: "♉", Name: "Taurus", Element: "earth"},
	domain.SignGemini:      {Symbol: "♊", Name: "Gemini", Element: "air"},
	domain.SignCancer:      {Symbol: "♋", Name: "Cancer", Element: "water"},
	domain.SignLeo:         {Symbol: "♌", Name: "Leo", Element: "fire"},
	domain.SignVirgo:       {Symbol: "♍", Name: "Virgo", Element: "earth"},
	domain.SignLibra:       {Symbol: "♎", Name: "Libra", Element: "air"},
	domain.SignScorpio:     {Symbol: "♏", Name: "Scorpio", Element: "water"},
	domain.SignSagittarius: {Symbol: "♐", Name: "Sagittarius", Element: "fire"},
	domain.SignCapricorn:   {Symbol: "♑", Name: "Capricorn", Element: "earth"},
	domain.SignAquarius:    {Symbol: "♒", Name: "Aquarius", Element: "air"},
	domain.SignPisces:      {Symbol: "♓", Name: "Pisces", Element: "water"},
}

var planets = map[domain.PlanetID]PlanetInfo{
	domain.PlanetSun:       {Symbol: "☉", Name: "Sun"},
	domain.PlanetMoon:      {Symbol: "☽", Name: "Moon"},
	domain.PlanetMercury:   {Symbol: "☿", Name: "Mercury"},
	domain.PlanetVenus:     {Symbol: "♀", Name: "Venus"},
	domain.PlanetMars:      {Symbol: "♂", Name: "Mars"},
	domain.PlanetJupiter:   {Symbol: "♃", Name: "Jupiter"},
	domain.PlanetSaturn:    {Symbol: "♄", Name: "Saturn"},
	domain.PlanetUranus:    {Symbol: "♅", Name: "Uranus"},
	domain.PlanetNeptune:   {Symbol: "♆", Name: "Neptune"},
	domain.PlanetPluto:     {Symbol: "♇", Name: "Pluto"},
	domain.PlanetNorthNode: {Symbol: "☊", Name: "North Node"},
	domain.PlanetSouthNode: {Symbol: "☋", Name: "South Node"},
	domain.PlanetChiron:    {Symbol: "⚷", Name: "Chiron"},
}

var aspects = map[domain.AspectType]AspectInfo{
	domain.AspectConjunction: {Symbol: "☌", Name: "Conjunction", Angle: 0},
	domain.AspectSextile:     {Symbol: "⚹", Name: "Sextile", Angle: 60},
	domain.AspectSquare:      {Symbol: "□", Name: "Square", Angle: 90},
	domain.AspectTrine:       {Symbol: "△", Name: "Trine", Angle: 120},
	domain.AspectQuincunx:    {Symbol: "⚻", Name: "Quincunx", Angle: 150},
	domain.AspectOpposition:  {Symbol: "☍", Name: "Opposition", Angle: 180},
}

// Sign looks up a zodiac sign by identifier
func Sign(id domain.SignID) (SignInfo, bool) {
	info, ok := signs[id]
	return info, ok
}

// Planet looks up a charted body by identifier
func Planet(id domain.PlanetID) (PlanetInfo, bool) {
	info, ok := planets[id]
	return info, ok
}

// Aspect looks up an aspect type by identifier
func Aspect(t domain.AspectType) (AspectInfo, bool) {
	info, ok := aspects[t]
	return info, ok
}

// Tables implements domain.Reference over the process-wide tables
type Tables struct{}

// KnownPlanet reports whether id resolves in the planet table
func (Tables) KnownPlanet(id domain.PlanetID) bool {
	_, ok := planets[id]
	return ok
}

// KnownAspect reports whether t resolves in the aspect table
func (Tables) KnownAspect(t domain.AspectType) bool {
	_, ok := aspects[t]
	return ok
}
