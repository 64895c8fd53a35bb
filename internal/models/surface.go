package models

import (
	"fmt"
	"strings"
)

// Surface is the court type a match is played on.
type Surface string

const (
	SurfaceGrass Surface = "grass"
	SurfaceHard  Surface = "hard"
	SurfaceClay  Surface = "clay"
)

// Surfaces lists the selectable surfaces in cycle order.
var Surfaces = []Surface{SurfaceGrass, SurfaceHard, SurfaceClay}

// DefaultSurface is selected on page load.
const DefaultSurface = SurfaceGrass

// ParseSurface accepts any casing of a known surface name.
func ParseSurface(s string) (Surface, error) {
	v := Surface(strings.ToLower(strings.TrimSpace(s)))
	if !v.Valid() {
		return "", fmt.Errorf("unknown surface %q", s)
	}
	return v, nil
}

func (s Surface) Valid() bool {
	for _, known := range Surfaces {
		if s == known {
			return true
		}
	}
	return false
}

// Next returns the surface after s in cycle order. Unknown values restart the cycle.
func (s Surface) Next() Surface {
	idx := -1
	for i, known := range Surfaces {
		if s == known {
			idx = i
			break
		}
	}
	return Surfaces[(idx+1)%len(Surfaces)]
}

// Label is the capitalised display name ("Grass").
func (s Surface) Label() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// Class is the CSS class applied to surface-themed elements.
func (s Surface) Class() string {
	return "surface-" + string(s)
}

// MatchSurface maps the selector value to the surface label used in match history.
// Anything unrecognised is treated as a hard court.
func (s Surface) MatchSurface() string {
	switch s {
	case SurfaceGrass, SurfaceClay:
		return s.Label()
	default:
		return "Hard"
	}
}
