package terminal

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/wahmd/weatherman/internal/domain/ports"
)

const marker = "+"

type PlainMarkers struct{}

func NewPlainMarkers() PlainMarkers {
	return PlainMarkers{}
}

func (PlainMarkers) Marker(ports.MarkerKind) string {
	return marker
}

// ColorMarkers paints low temperature markers blue and high ones red.
type ColorMarkers struct {
	low  string
	high string
}

func NewColorMarkers() *ColorMarkers {
	return NewColorMarkersWithRenderer(lipgloss.DefaultRenderer())
}

// NewColorMarkersWithRenderer pre-renders both markers once; r decides the color profile.
func NewColorMarkersWithRenderer(r *lipgloss.Renderer) *ColorMarkers {
	return &ColorMarkers{
		low:  r.NewStyle().Foreground(lipgloss.Color("4")).Render(marker),
		high: r.NewStyle().Foreground(lipgloss.Color("1")).Render(marker),
	}
}

func (c *ColorMarkers) Marker(kind ports.MarkerKind) string {
	if kind == ports.MarkerHigh {
		return c.high
	}
	return c.low
}

// NewMarkers picks colored or plain markers.
func NewMarkers(color bool) ports.MarkerRenderer {
	if color {
		return NewColorMarkers()
	}
	return NewPlainMarkers()
}
