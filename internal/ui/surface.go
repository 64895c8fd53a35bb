package ui

import "github.com/courtside/tennis-predictor/internal/models"

// SurfaceSelector cycles the court surface and paints it onto the page.
type SurfaceSelector struct {
	state  *State
	button Button
	themed []Styled
}

// NewSurfaceSelector paints button and every extra element (court outline, title).
func NewSurfaceSelector(state *State, button Button, themed ...Styled) *SurfaceSelector {
	return &SurfaceSelector{state: state, button: button, themed: themed}
}

// Advance is the click handler of the surface button.
func (s *SurfaceSelector) Advance() models.Surface {
	next := s.state.advanceSurface()
	s.paint(next)
	return next
}

// Render paints the current surface. Called once at startup.
func (s *SurfaceSelector) Render() {
	s.paint(s.state.Surface())
}

func (s *SurfaceSelector) paint(current models.Surface) {
	s.button.SetLabel(current.Label())
	targets := append([]Styled{s.button}, s.themed...)
	for _, el := range targets {
		for _, surface := range models.Surfaces {
			el.SetClass(surface.Class(), surface == current)
		}
	}
}
