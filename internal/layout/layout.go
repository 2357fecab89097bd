package layout

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kmacinski/termfolio/internal/desktop"
	"github.com/kmacinski/termfolio/internal/ui"
)

// Fixed desktop chrome heights
const (
	TopBarHeight = 1
	DockHeight   = 3
)

// Icon cells on the desktop
const (
	iconWidth  = 14
	iconHeight = 3
	iconMargin = 2
)

// Placement says where desktop icons go
type Placement int

const (
	// Split puts icons in columns on both sides of the center logo
	Split Placement = iota
	// Column puts every icon in columns on the left
	Column
	// DockOnly hides desktop icons; the dock still opens windows
	DockOnly
)

// Arrangement is a named icon placement
type Arrangement struct {
	Name      string
	Placement Placement
}

// Predefined arrangements
var (
	SplitArrangement    = Arrangement{Name: "split", Placement: Split}
	ColumnArrangement   = Arrangement{Name: "column", Placement: Column}
	DockOnlyArrangement = Arrangement{Name: "dock-only", Placement: DockOnly}
)

// Breakpoint defines when to switch arrangements
type Breakpoint struct {
	MinWidth    int
	Arrangement Arrangement
}

// ResponsiveConfig defines breakpoints for responsive arrangements
type ResponsiveConfig struct {
	Breakpoints []Breakpoint
}

// DefaultResponsive is the default responsive configuration
var DefaultResponsive = ResponsiveConfig{
	Breakpoints: []Breakpoint{
		{MinWidth: 100, Arrangement: SplitArrangement},
		{MinWidth: 60, Arrangement: ColumnArrangement},
		{MinWidth: 0, Arrangement: DockOnlyArrangement},
	},
}

// GetArrangement returns the arrangement for the given width
func (r *ResponsiveConfig) GetArrangement(width int) Arrangement {
	for _, bp := range r.Breakpoints {
		if width >= bp.MinWidth {
			return bp.Arrangement
		}
	}
	return ColumnArrangement
}

// Item is a launchable panel shown as a desktop icon and a dock entry
type Item struct {
	ID    string
	Icon  string
	Label string
}

// Manager positions the desktop chrome and renders the screen layers
type Manager struct {
	responsive ResponsiveConfig
	current    Arrangement
	width      int
	height     int

	items []Item
	logo  []string
	zones []Zone
}

// NewManager creates a new layout manager
func NewManager(responsive ResponsiveConfig, items []Item, logo []string) *Manager {
	return &Manager{
		responsive: responsive,
		current:    ColumnArrangement,
		items:      items,
		logo:       logo,
	}
}

// Resize updates the layout dimensions and recomputes the static zones
func (m *Manager) Resize(width, height int) {
	m.width = width
	m.height = height
	m.current = m.responsive.GetArrangement(width)
	m.zones = m.computeZones()
}

// Size returns the current screen size
func (m *Manager) Size() (int, int) {
	return m.width, m.height
}

// CurrentArrangement returns the current arrangement
func (m *Manager) CurrentArrangement() Arrangement {
	return m.current
}

// Insets returns the chrome a maximized window must leave free
func (m *Manager) Insets(margin int) desktop.Insets {
	return desktop.Insets{Margin: margin, TopBar: TopBarHeight, Dock: DockHeight}
}

// desktopArea is the region between the top bar and the dock
func (m *Manager) desktopArea() desktop.Geometry {
	return desktop.Geometry{
		Position: desktop.Position{Left: 0, Top: TopBarHeight},
		Size: desktop.Size{
			Width:  m.width,
			Height: max(0, m.height-TopBarHeight-DockHeight),
		},
	}
}

func (m *Manager) logoGeometry() desktop.Geometry {
	area := m.desktopArea()
	w, h := maxLineWidth(m.logo), len(m.logo)
	return desktop.Geometry{
		Position: desktop.Position{
			Left: area.Left + Center(area.Width, w),
			Top:  area.Top + Center(area.Height, h),
		},
		Size: desktop.Size{Width: w, Height: h},
	}
}

// iconSlots returns the top-left cell of every icon in item order
func (m *Manager) iconSlots() []desktop.Position {
	area := m.desktopArea()
	rows := max(1, (area.Height-1)/iconHeight)

	perCol := rows
	var columns []int
	switch m.current.Placement {
	case DockOnly:
		return nil
	case Split:
		// An even number of columns, half on each side of the logo
		need := max(2, (len(m.items)+rows-1)/rows)
		need += need % 2
		perCol = max(1, (len(m.items)+need-1)/need)
		for c := 0; c < need/2; c++ {
			columns = append(columns, iconMargin+c*iconWidth)
		}
		for c := need/2 - 1; c >= 0; c-- {
			columns = append(columns, m.width-iconMargin-(c+1)*iconWidth)
		}
	case Column:
		need := (len(m.items) + rows - 1) / rows
		for c := 0; c < need; c++ {
			columns = append(columns, iconMargin+c*iconWidth)
		}
	}

	slots := make([]desktop.Position, 0, len(m.items))
	for i := range m.items {
		col := i / perCol
		if col >= len(columns) {
			break
		}
		slots = append(slots, desktop.Position{
			Left: columns[col],
			Top:  area.Top + 1 + (i%perCol)*iconHeight,
		})
	}
	return slots
}

// dockSlots returns dock entry geometries in item order
func (m *Manager) dockSlots() []desktop.Geometry {
	labels := m.dockLabels()
	total := 0
	for _, l := range labels {
		total += lipgloss.Width(l) + 2
	}
	// border and padding
	dockWidth := total + 4
	left := Center(m.width, dockWidth) + 2
	top := m.height - DockHeight + 1

	slots := make([]desktop.Geometry, len(labels))
	for i, l := range labels {
		w := lipgloss.Width(l) + 2
		slots[i] = desktop.Geometry{
			Position: desktop.Position{Left: left, Top: top},
			Size:     desktop.Size{Width: w, Height: 1},
		}
		left += w
	}
	return slots
}

func (m *Manager) dockLabels() []string {
	labels := make([]string, len(m.items))
	wide := m.width >= 100
	for i, it := range m.items {
		if wide {
			labels[i] = it.Icon + " " + it.Label
		} else {
			labels[i] = it.Icon
		}
	}
	return labels
}

// Background renders the desktop: icons and the center logo on an empty
// screen. Rows covered by the top bar and dock stay blank.
func (m *Manager) Background(styles ui.Styles) string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	canvas := strings.Join(Canvas("", m.width, m.height), "\n")

	logo := m.logoGeometry()
	canvas = Overlay(canvas, styles.CenterLogo.Render(strings.Join(m.logo, "\n")), logo.Left, logo.Top, m.width, m.height)

	for i, pos := range m.iconSlots() {
		it := m.items[i]
		icon := lipgloss.JoinVertical(lipgloss.Center,
			styles.Icon.Width(iconWidth).Align(lipgloss.Center).Render(it.Icon),
			styles.IconLabel.Width(iconWidth).Align(lipgloss.Center).Render(it.Label),
		)
		canvas = Overlay(canvas, icon, pos.Left, pos.Top, m.width, m.height)
	}
	return canvas
}

// TopBar renders the one-row bar: brand on the left, then the clock, the
// theme toggle and the power button on the right.
func (m *Manager) TopBar(styles ui.Styles, brand, clock string, menuOpen bool) string {
	arrow := "▾"
	if menuOpen {
		arrow = "▴"
	}
	right := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.TopBarItem.Render(clock),
		styles.TopBarItem.Render(themeLabel+" "+arrow),
		styles.TopBarItem.Render(powerLabel),
	)
	left := styles.Brand.Render(brand)
	gap := max(0, m.width-lipgloss.Width(left)-lipgloss.Width(right))
	return fit(left+styles.TopBar.Render(strings.Repeat(" ", gap))+right, m.width)
}

// Dock renders the launcher along the bottom edge; open windows are marked
func (m *Manager) Dock(styles ui.Styles, open func(id string) bool) string {
	labels := m.dockLabels()
	parts := make([]string, len(labels))
	for i, l := range labels {
		style := styles.DockItem
		if open(m.items[i].ID) {
			style = style.Underline(true)
		}
		parts[i] = style.Render(l)
	}
	return styles.Dock.Render(lipgloss.JoinHorizontal(lipgloss.Top, parts...))
}

// DockPosition returns the top-left cell of the rendered dock
func (m *Manager) DockPosition(dock string) desktop.Position {
	return desktop.Position{
		Left: Center(m.width, lipgloss.Width(dock)),
		Top:  m.height - DockHeight,
	}
}
