package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"mapty/internal/workout"
)

const (
	minZoom = 1
	maxZoom = 18

	// Terminal cells are roughly twice as tall as they are wide
	cellAspect = 2.0
)

type mapMarker struct {
	at    workout.Coordinate
	popup string
	class string
}

// mapPanel draws an equirectangular grid around a centre coordinate. It
// implements session.MapView.
type mapPanel struct {
	ready   bool
	center  workout.Coordinate
	zoom    int
	markers []mapMarker

	// Crosshair offset from the centre, in cells
	cx, cy int

	// Moved to a workout by an animated CenterView; cleared by manual movement
	panned bool

	width, height int
}

func newMapPanel() *mapPanel {
	return &mapPanel{width: 48, height: 15}
}

// CreateView shows the map centred on c
func (m *mapPanel) CreateView(c workout.Coordinate, zoom int) {
	m.ready = true
	m.center = c
	m.zoom = clampZoom(zoom)
	m.cx, m.cy = 0, 0
	m.panned = false
}

// PlaceMarker adds a marker. Markers are never removed.
func (m *mapPanel) PlaceMarker(at workout.Coordinate, popup, class string) {
	m.markers = append(m.markers, mapMarker{at: at, popup: popup, class: class})
}

// CenterView moves the map to c and resets the crosshair
func (m *mapPanel) CenterView(c workout.Coordinate, zoom int, animate bool) {
	m.center = c
	m.zoom = clampZoom(zoom)
	m.cx, m.cy = 0, 0
	m.panned = animate
}

func (m *mapPanel) setSize(width, height int) {
	if width > 10 {
		m.width = width
	}
	if height > 4 {
		m.height = height
	}
}

// moveCrosshair shifts the crosshair, panning the map when it leaves the grid
func (m *mapPanel) moveCrosshair(dx, dy int) {
	m.cx += dx
	m.cy += dy

	halfW, halfH := m.width/2, m.height/2
	if m.cx < -halfW || m.cx >= m.width-halfW || m.cy < -halfH || m.cy >= m.height-halfH {
		m.center = m.crosshair()
		m.cx, m.cy = 0, 0
	}
	m.panned = false
}

func (m *mapPanel) zoomBy(delta int) {
	m.panned = false
	m.center = m.crosshair()
	m.cx, m.cy = 0, 0
	m.zoom = clampZoom(m.zoom + delta)
}

// degreesPerCell returns the longitude and latitude span of one cell
func (m *mapPanel) degreesPerCell() (lng, lat float64) {
	// A 256px tile spans 360/2^zoom degrees; one cell stands in for 8px
	lng = 360 / math.Exp2(float64(m.zoom)) / 32
	lat = lng * cellAspect * math.Max(math.Cos(m.center.Lat*math.Pi/180), 0.01)
	return lng, lat
}

// crosshair returns the coordinate under the crosshair
func (m *mapPanel) crosshair() workout.Coordinate {
	dLng, dLat := m.degreesPerCell()
	return workout.Coordinate{
		Lat: clampLat(m.center.Lat - float64(m.cy)*dLat),
		Lng: wrapLng(m.center.Lng + float64(m.cx)*dLng),
	}
}

// cellOf returns the grid cell of c relative to the centre
func (m *mapPanel) cellOf(c workout.Coordinate) (col, row int) {
	dLng, dLat := m.degreesPerCell()
	col = int(math.Round(wrapLng(c.Lng-m.center.Lng) / dLng))
	row = int(math.Round(-(c.Lat - m.center.Lat) / dLat))
	return col, row
}

func (m *mapPanel) View() string {
	if !m.ready {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			helpDescStyle.Render("Waiting for your location..."))
	}

	halfW, halfH := m.width/2, m.height/2

	// Latest marker wins a shared cell
	occupied := make(map[[2]int]string)
	var visible []mapMarker
	for _, mk := range m.markers {
		col, row := m.cellOf(mk.at)
		if col < -halfW || col >= m.width-halfW || row < -halfH || row >= m.height-halfH {
			continue
		}
		occupied[[2]int{col, row}] = mk.class
		visible = append(visible, mk)
	}

	var b strings.Builder
	for row := -halfH; row < m.height-halfH; row++ {
		for col := -halfW; col < m.width-halfW; col++ {
			switch class, ok := occupied[[2]int{col, row}]; {
			case col == m.cx && row == m.cy:
				b.WriteString(crosshairStyle.Render("+"))
			case ok:
				b.WriteString(markerStyles[class].Render("●"))
			case col%4 == 0 && row%2 == 0:
				b.WriteString(mapBackgroundStyle.Render("·"))
			default:
				b.WriteString(" ")
			}
		}
		if row < m.height-halfH-1 {
			b.WriteString("\n")
		}
	}

	status := fmt.Sprintf("⌖ %s  zoom %d", m.crosshair(), m.zoom)
	if m.panned {
		status += "  ↦ moved to workout"
	}
	lines := []string{b.String(), helpDescStyle.Render(status)}

	// Popups stay open for every visible marker, newest last
	const maxPopups = 4
	if len(visible) > maxPopups {
		visible = visible[len(visible)-maxPopups:]
	}
	for _, mk := range visible {
		style, ok := popupStyles[mk.class]
		if !ok {
			style = lipgloss.NewStyle()
		}
		lines = append(lines, style.Render(mk.popup))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func clampZoom(z int) int {
	return max(minZoom, min(maxZoom, z))
}

func clampLat(lat float64) float64 {
	return math.Max(-90, math.Min(90, lat))
}

// wrapLng normalises a longitude into [-180, 180)
func wrapLng(lng float64) float64 {
	if lng >= -180 && lng < 180 {
		return lng
	}
	lng = math.Mod(lng+180, 360)
	if lng < 0 {
		lng += 360
	}
	return lng - 180
}
