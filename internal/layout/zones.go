package layout

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kmacinski/termfolio/internal/desktop"
)

// ZoneKind identifies what a clickable region does
type ZoneKind int

const (
	ZoneIcon ZoneKind = iota
	ZoneDock
	ZoneLogo
	ZoneThemeToggle
	ZonePower
	ZoneMenuItem
	ZoneButton
)

// Layer orders zones for hit testing. Overlays sit above the chrome, which
// sits above windows, which sit above the desktop.
type Layer int

const (
	LayerDesktop Layer = iota
	LayerChrome
	LayerOverlay
)

// Zone is a clickable screen region
type Zone struct {
	Kind     ZoneKind
	Layer    Layer
	ID       string
	Geometry desktop.Geometry
}

const (
	themeLabel = "◐ Theme"
	powerLabel = "⏻"
)

func (m *Manager) computeZones() []Zone {
	var zones []Zone

	// Logo swallows clicks so it never opens anything
	zones = append(zones, Zone{Kind: ZoneLogo, Layer: LayerDesktop, Geometry: m.logoGeometry()})

	for i, pos := range m.iconSlots() {
		zones = append(zones, Zone{
			Kind:  ZoneIcon,
			Layer: LayerDesktop,
			ID:    m.items[i].ID,
			Geometry: desktop.Geometry{
				Position: pos,
				Size:     desktop.Size{Width: iconWidth, Height: iconHeight - 1},
			},
		})
	}

	for i, g := range m.dockSlots() {
		zones = append(zones, Zone{Kind: ZoneDock, Layer: LayerChrome, ID: m.items[i].ID, Geometry: g})
	}

	powerWidth := lipgloss.Width(powerLabel) + 2
	themeWidth := lipgloss.Width(themeLabel+" ▾") + 2
	zones = append(zones,
		Zone{
			Kind:  ZonePower,
			Layer: LayerChrome,
			Geometry: desktop.Geometry{
				Position: desktop.Position{Left: m.width - powerWidth, Top: 0},
				Size:     desktop.Size{Width: powerWidth, Height: TopBarHeight},
			},
		},
		Zone{
			Kind:  ZoneThemeToggle,
			Layer: LayerChrome,
			Geometry: desktop.Geometry{
				Position: desktop.Position{Left: m.width - powerWidth - themeWidth, Top: 0},
				Size:     desktop.Size{Width: themeWidth, Height: TopBarHeight},
			},
		},
	)
	return zones
}

// Zones returns the static zones for the current size
func (m *Manager) Zones() []Zone {
	return m.zones
}

// HitTest returns the zone at (x, y) on the given layer, if any. Extra zones
// (menus, dialog buttons) are tested before the static ones.
func (m *Manager) HitTest(x, y int, layer Layer, extra ...Zone) (Zone, bool) {
	for _, z := range extra {
		if z.Layer == layer && z.Geometry.Contains(x, y) {
			return z, true
		}
	}
	for _, z := range m.zones {
		if z.Layer == layer && z.Geometry.Contains(x, y) {
			return z, true
		}
	}
	return Zone{}, false
}

// OverTopBar reports whether (x, y) is on the top bar, which is drawn
// above every window
func (m *Manager) OverTopBar(x, y int) bool {
	return y >= 0 && y < TopBarHeight && x >= 0 && x < m.width
}

// MenuAnchor returns where the theme menu drops down: under the toggle,
// right-aligned with it.
func (m *Manager) MenuAnchor(menuWidth int) desktop.Position {
	powerWidth := lipgloss.Width(powerLabel) + 2
	return desktop.Position{
		Left: max(0, m.width-powerWidth-menuWidth),
		Top:  TopBarHeight,
	}
}
