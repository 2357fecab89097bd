package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/kmacinski/termfolio/internal/desktop"
	"github.com/kmacinski/termfolio/internal/layout"
	"github.com/kmacinski/termfolio/internal/theme"
)

const (
	powerTitle    = "Power Off"
	powerQuestion = "Are you sure you want to shut down?"
	konamiTitle   = "🎮 Konami Code Activated!"
	konamiMessage = "You found the easter egg! 🎉"
	labelYes      = "[ Yes ]"
	labelNo       = "[ No ]"
	labelOK       = "[ OK ]"
)

// View renders the application
func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}
	a.overlayZones = a.overlayZones[:0]

	switch a.state.Phase {
	case PhaseBoot:
		return a.renderBoot()
	case PhaseShutdown:
		return a.renderShutdown()
	}
	return a.renderDesktop()
}

func (a *App) renderBoot() string {
	var lines []string
	for _, l := range a.profile.Logo {
		lines = append(lines, a.styles.CenterLogo.Render(l))
	}
	lines = append(lines, "", a.styles.Brand.UnsetBackground().Render(a.profile.Brand), "")

	typed := []rune(a.profile.Boot.Typing)
	n := min(a.state.BootTyped, len(typed))
	lines = append(lines, a.spinner.View()+" "+a.styles.Text.Render(string(typed[:n])))
	lines = append(lines, "")

	for _, l := range a.profile.Boot.Lines[:min(a.state.BootLines, len(a.profile.Boot.Lines))] {
		lines = append(lines, a.styles.Muted.Render(l))
	}

	block := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, block)
}

func (a *App) renderShutdown() string {
	sd := a.profile.Shutdown
	button := a.styles.MenuItemActive.Reverse(true).Render(" " + sd.Action + " ")
	block := lipgloss.JoinVertical(lipgloss.Center,
		a.styles.Heading.Render(sd.Title),
		"",
		a.styles.Text.Render(sd.Message),
		"",
		button,
	)
	left := layout.Center(a.width, lipgloss.Width(block))
	top := layout.Center(a.height, lipgloss.Height(block))
	if g, ok := locate(block, sd.Action, left, top); ok {
		a.overlayZones = append(a.overlayZones, layout.Zone{Kind: layout.ZoneButton, Layer: layout.LayerOverlay, ID: buttonReboot, Geometry: g})
	}
	return layout.Overlay("", block, left, top, a.width, a.height)
}

func (a *App) renderDesktop() string {
	screen := a.layout.Background(a.styles)

	for _, rec := range a.controller.Registry().Stack() {
		w, ok := a.windows[rec.ID]
		if !ok {
			continue
		}
		g := rec.Geometry
		cw, ch := layout.ContentSize(g.Width, g.Height)
		frame := layout.Frame(a.styles, rec.Title, w.View(cw, ch), g.Width, g.Height, rec.Active, rec.Maximized)
		screen = layout.Overlay(screen, frame, g.Left, g.Top, a.width, a.height)
	}

	screen = layout.Overlay(screen, a.layout.TopBar(a.styles, a.profile.Brand, a.now().Format(a.cfg.Clock.Format), a.state.MenuOpen), 0, 0, a.width, a.height)

	dock := a.layout.Dock(a.styles, func(id string) bool {
		rec, ok := a.controller.Registry().Lookup(id)
		return ok && rec.Visible
	})
	pos := a.layout.DockPosition(dock)
	screen = layout.Overlay(screen, dock, pos.Left, pos.Top, a.width, a.height)

	if a.statusMessage != "" {
		status := a.styles.Muted.Render(" " + a.statusMessage)
		a.statusMessage = "" // Clear after showing
		screen = layout.Overlay(screen, status, 0, a.height-1, a.width, a.height)
	}

	if a.state.MenuOpen {
		screen = a.renderMenu(screen)
	}

	switch a.state.ActiveModal {
	case ModalHelp:
		screen = a.renderWithModal(screen, a.help.View(min(64, a.width-2), min(32, a.height-2)), nil)
	case ModalPower:
		body := lipgloss.JoinVertical(lipgloss.Center,
			a.styles.ModalTitle.Render(powerTitle),
			a.styles.Text.Render(powerQuestion),
			"",
			a.styles.MenuItemActive.Render(labelYes)+"   "+a.styles.MenuItem.Render(labelNo),
		)
		screen = a.renderWithModal(screen, a.styles.Modal.Render(body), map[string]string{
			labelYes: buttonPowerYes,
			labelNo:  buttonPowerNo,
		})
	case ModalKonami:
		body := lipgloss.JoinVertical(lipgloss.Center,
			a.styles.ModalTitle.Render(konamiTitle),
			a.styles.Text.Render(konamiMessage),
			"",
			a.styles.MenuItemActive.Render(labelOK),
		)
		screen = a.renderWithModal(screen, a.styles.Modal.Render(body), map[string]string{
			labelOK: buttonKonamiOK,
		})
	}

	if a.state.FlashOn() {
		screen = a.flashBorder(screen)
	}
	return screen
}

func (a *App) renderMenu(screen string) string {
	all := theme.All()
	current := a.themes.Current().Name

	width := 0
	for _, t := range all {
		width = max(width, lipgloss.Width(t.Label)+4)
	}

	items := make([]string, len(all))
	for i, t := range all {
		marker := "  "
		if t.Name == current {
			marker = "● "
		}
		style := a.styles.MenuItem
		if i == a.state.MenuIndex {
			style = a.styles.MenuItemActive.Reverse(true)
		}
		items[i] = style.Width(width).Render(marker + t.Label)
	}
	menu := a.styles.Menu.Render(strings.Join(items, "\n"))

	anchor := a.layout.MenuAnchor(lipgloss.Width(menu))
	for i, t := range all {
		a.overlayZones = append(a.overlayZones, layout.Zone{
			Kind:  layout.ZoneMenuItem,
			Layer: layout.LayerOverlay,
			ID:    t.Name,
			Geometry: desktop.Geometry{
				Position: desktop.Position{Left: anchor.Left + 1, Top: anchor.Top + 1 + i},
				Size:     desktop.Size{Width: width, Height: 1},
			},
		})
	}
	return layout.Overlay(screen, menu, anchor.Left, anchor.Top, a.width, a.height)
}

// renderWithModal centers modal over the screen and registers a zone for
// each labelled button
func (a *App) renderWithModal(background, modal string, buttons map[string]string) string {
	left := layout.Center(a.width, lipgloss.Width(modal))
	top := layout.Center(a.height, lipgloss.Height(modal))
	for label, id := range buttons {
		if g, ok := locate(modal, label, left, top); ok {
			a.overlayZones = append(a.overlayZones, layout.Zone{Kind: layout.ZoneButton, Layer: layout.LayerOverlay, ID: id, Geometry: g})
		}
	}
	return layout.Overlay(background, modal, left, top, a.width, a.height)
}

// flashBorder draws an accent border around the whole screen
func (a *App) flashBorder(screen string) string {
	if a.width < 2 || a.height < 2 {
		return screen
	}
	style := lipgloss.NewStyle().Foreground(a.styles.Colors.Accent).Bold(true)
	lines := layout.Canvas(screen, a.width, a.height)
	lines[0] = style.Render("╭" + strings.Repeat("─", a.width-2) + "╮")
	lines[a.height-1] = style.Render("╰" + strings.Repeat("─", a.width-2) + "╯")
	for i := 1; i < a.height-1; i++ {
		lines[i] = style.Render("│") + ansi.Cut(lines[i], 1, a.width-1) + style.Render("│")
	}
	return strings.Join(lines, "\n")
}

// locate finds label inside block drawn at (left, top)
func locate(block, label string, left, top int) (desktop.Geometry, bool) {
	for i, line := range strings.Split(ansi.Strip(block), "\n") {
		if idx := strings.Index(line, label); idx >= 0 {
			return desktop.Geometry{
				Position: desktop.Position{Left: left + ansi.StringWidth(line[:idx]), Top: top + i},
				Size:     desktop.Size{Width: ansi.StringWidth(label), Height: 1},
			}, true
		}
	}
	return desktop.Geometry{}, false
}
