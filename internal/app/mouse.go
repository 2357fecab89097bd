package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kmacinski/termfolio/internal/layout"
)

// Overlay button IDs
const (
	buttonPowerYes = "power-yes"
	buttonPowerNo  = "power-no"
	buttonKonamiOK = "konami-ok"
	buttonReboot   = "reboot"
)

func (a *App) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionMotion:
		if _, dragging := a.controller.Dragging(); dragging {
			a.controller.DragTo(msg.X, msg.Y)
		}
		return a, nil

	case tea.MouseActionRelease:
		// A release anywhere ends the drag
		a.controller.EndDrag()
		return a, nil

	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
			if a.state.Phase != PhaseDesktop || a.state.ActiveModal != "" {
				return a, nil
			}
			if rec, ok := a.controller.TopAt(msg.X, msg.Y); ok {
				return a.delegateTo(rec.ID, msg)
			}
			return a, nil
		case tea.MouseButtonLeft:
			return a.click(msg.X, msg.Y)
		}
	}
	return a, nil
}

func (a *App) click(x, y int) (tea.Model, tea.Cmd) {
	switch a.state.Phase {
	case PhaseBoot:
		return a, nil
	case PhaseShutdown:
		if z, ok := a.layout.HitTest(x, y, layout.LayerOverlay, a.overlayZones...); ok && z.ID == buttonReboot {
			return a, a.reboot()
		}
		return a, nil
	}

	if a.state.ActiveModal == ModalHelp {
		a.state.CloseModal()
		return a, nil
	}
	if a.state.ActiveModal != "" {
		z, ok := a.layout.HitTest(x, y, layout.LayerOverlay, a.overlayZones...)
		if !ok {
			return a, nil
		}
		switch z.ID {
		case buttonPowerYes:
			a.shutdown()
		case buttonPowerNo, buttonKonamiOK:
			a.state.CloseModal()
		}
		return a, nil
	}

	if a.state.MenuOpen {
		if z, ok := a.layout.HitTest(x, y, layout.LayerOverlay, a.overlayZones...); ok && z.Kind == layout.ZoneMenuItem {
			a.selectTheme(z.ID)
			return a, nil
		}
		// Any click outside the menu closes it; the toggle only closes
		a.state.MenuOpen = false
		if z, ok := a.layout.HitTest(x, y, layout.LayerChrome); ok && z.Kind == layout.ZoneThemeToggle {
			return a, nil
		}
	}

	if z, ok := a.layout.HitTest(x, y, layout.LayerChrome); ok {
		switch z.Kind {
		case layout.ZoneThemeToggle:
			a.toggleMenu()
		case layout.ZonePower:
			a.state.ActiveModal = ModalPower
		case layout.ZoneDock:
			a.openWindow(z.ID)
		}
		return a, nil
	}
	if a.layout.OverTopBar(x, y) {
		return a, nil
	}

	if rec, ok := a.controller.TopAt(x, y); ok {
		id := rec.ID
		control := layout.HeaderHit(rec.Geometry, x, y)
		a.controller.Press(id)
		switch control {
		case layout.ControlMinimize:
			a.closeWindow(id, true)
		case layout.ControlMaximize:
			a.controller.ToggleMaximize(id)
		case layout.ControlClose:
			a.closeWindow(id, false)
		case layout.ControlTitle:
			a.controller.StartDrag(id, x, y, control.IsButton())
		}
		a.updateFocus()
		return a, nil
	}

	if z, ok := a.layout.HitTest(x, y, layout.LayerDesktop); ok && z.Kind == layout.ZoneIcon {
		a.openWindow(z.ID)
	}
	return a, nil
}
