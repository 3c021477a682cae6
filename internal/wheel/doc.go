// Package wheel renders a natal chart as a radial diagram.
//
// The wheel is drawn on a fixed square surface with the center at the
// surface's midpoint. Three concentric reference rings (outer, middle, inner)
// carry the structural elements: twelve house-division lines every 30 degrees,
// twelve zodiac glyphs at sector midpoints just inside the outer ring, and
// twelve house numbers just outside the inner ring. Validated planets are
// placed on the middle ring and aspect lines connect planet pairs across it.
//
// Ecliptic degree 0 maps to the topmost point of the circle and increasing
// degree sweeps clockwise. All layout functions are pure: building a layout
// twice from the same validated data, selection state and options yields the
// same result.
//
// BuildLayout produces a typed Layout from validated data; RenderSVG
// serializes a Layout to SVG with a fixed z-order (rings, zodiac glyphs,
// house numbers, aspect lines, planet markers, center mark).
package wheel
