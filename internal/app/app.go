package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kmacinski/termfolio/internal/config"
	"github.com/kmacinski/termfolio/internal/desktop"
	"github.com/kmacinski/termfolio/internal/keys"
	"github.com/kmacinski/termfolio/internal/layout"
	"github.com/kmacinski/termfolio/internal/profile"
	"github.com/kmacinski/termfolio/internal/terminal"
	"github.com/kmacinski/termfolio/internal/theme"
	"github.com/kmacinski/termfolio/internal/ui"
	"github.com/kmacinski/termfolio/internal/watcher"
	"github.com/kmacinski/termfolio/internal/window"
)

const (
	terminalID   = "terminal"
	bootLineStep = 400 * time.Millisecond
	flashStep    = 250 * time.Millisecond
)

// Options are the collaborators the App is built from
type Options struct {
	Config  config.Config
	Profile *profile.Profile
	Theme   *theme.Switcher
	Links   terminal.LinkOpener

	// PrefsPath is watched for external theme changes; Reload re-reads it
	PrefsPath string
	Reload    func() error

	Logger *slog.Logger
	Now    func() time.Time
}

// App is the main application model
type App struct {
	state   *State
	opts    Options
	cfg     config.Config
	profile *profile.Profile
	themes  *theme.Switcher
	layout  *layout.Manager
	styles  ui.Styles
	log     *slog.Logger
	now     func() time.Time

	// Desktop, rebuilt on reboot
	controller *desktop.Controller
	engine     *terminal.Engine
	windows    map[string]window.Window
	terminal   *window.TerminalPanel
	help       *window.Help

	spinner spinner.Model
	konami  keys.Konami

	// Clickable regions drawn by the last View on top of the desktop
	overlayZones []layout.Zone

	// Dimensions
	width  int
	height int

	// Status message
	statusMessage string

	// Commands queued by visibility observers during an update
	pending []tea.Cmd

	// File watcher
	watcher *watcher.FileWatcher
	program *tea.Program
}

// New creates a new application
func New(opts Options) *App {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	items := make([]layout.Item, 0, len(opts.Profile.Panels))
	for _, p := range opts.Profile.Panels {
		items = append(items, layout.Item{ID: p.ID, Icon: p.Icon, Label: p.Label})
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	a := &App{
		state:   NewState(),
		opts:    opts,
		cfg:     opts.Config,
		profile: opts.Profile,
		themes:  opts.Theme,
		layout:  layout.NewManager(layout.DefaultResponsive, items, opts.Profile.Logo),
		styles:  opts.Theme.Styles(),
		log:     opts.Logger,
		now:     opts.Now,
		spinner: sp,
	}
	a.help = window.NewHelp(a.styles)
	a.buildDesktop()

	if a.cfg.Boot.Skip {
		a.state.Phase = PhaseDesktop
	}
	return a
}

// windowOpener lets terminal commands open desktop windows
type windowOpener struct{ app *App }

func (o windowOpener) Open(id string) { o.app.openWindow(id) }

// buildDesktop creates fresh window records, content and terminal engine
func (a *App) buildDesktop() {
	reg := desktop.NewRegistry(a.profile.WindowSpecs())
	a.controller = desktop.NewController(reg, desktop.Options{
		CascadeStep: a.cfg.Desktop.CascadeStep,
		Insets:      a.layout.Insets(a.cfg.Desktop.MaximizeInset),
	})
	if a.width > 0 {
		a.controller.SetViewport(a.width, a.height)
	}

	a.engine = terminal.NewEngine(a.profile.TerminalContent(), windowOpener{a}, a.opts.Links,
		terminal.WithClock(a.now),
		terminal.WithLogger(a.log),
		terminal.WithVar("resolution", func() string {
			vp := a.controller.Viewport()
			return fmt.Sprintf("%dx%d", vp.Width, vp.Height)
		}),
	)

	a.windows = make(map[string]window.Window, len(a.profile.Panels))
	for _, p := range a.profile.Panels {
		switch p.Kind {
		case profile.KindSkills:
			skills := window.NewSkillsPanel(p, a.styles)
			a.windows[p.ID] = skills
			a.controller.Observe(p.ID, func(id string, visible bool) {
				if visible {
					a.pending = append(a.pending, skills.Restart())
				}
			})
		case profile.KindTerminal:
			a.terminal = window.NewTerminalPanel(p.ID, a.engine, a.styles)
			a.windows[p.ID] = a.terminal
		default:
			a.windows[p.ID] = window.NewTextPanel(p, a.styles)
		}
		a.controller.Observe(p.ID, func(id string, visible bool) {
			a.log.Debug("window visibility", "window", id, "visible", visible)
		})
	}
}

// SetProgram sets the tea.Program reference for sending messages from watcher
func (a *App) SetProgram(p *tea.Program) {
	a.program = p
	if a.opts.PrefsPath == "" {
		return
	}

	// Start file watcher with 200ms debounce
	w, err := watcher.New(200*time.Millisecond, a.opts.PrefsPath, func() {
		if a.program != nil {
			a.program.Send(PrefsChangedMsg{})
		}
	})
	if err != nil {
		a.log.Warn("prefs watcher disabled", "path", a.opts.PrefsPath, "err", err)
		return
	}
	a.watcher = w
	a.watcher.Start()
}

// Cleanup stops the watcher
func (a *App) Cleanup() {
	if a.watcher != nil {
		a.watcher.Stop()
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.tick()}
	if a.state.Phase == PhaseBoot {
		cmds = append(cmds, a.startBoot())
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := a.update(msg)
	if len(a.pending) > 0 {
		cmds := append(a.pending, cmd)
		a.pending = nil
		return model, tea.Batch(cmds...)
	}
	return model, cmd
}

func (a *App) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout.Resize(msg.Width, msg.Height)
		a.controller.SetViewport(msg.Width, msg.Height)
		return a, nil

	case TickMsg:
		return a, a.tick()

	case BootTypeMsg:
		if msg.Gen != a.state.BootGen || a.state.Phase != PhaseBoot {
			return a, nil
		}
		a.state.BootTyped++
		if a.state.BootTyped < len([]rune(a.profile.Boot.Typing)) {
			return a, a.typeNext(a.cfg.Boot.TypingDelay)
		}
		return a, a.nextBootLine()

	case BootLineMsg:
		if msg.Gen != a.state.BootGen || a.state.Phase != PhaseBoot {
			return a, nil
		}
		if a.state.BootLines < len(a.profile.Boot.Lines) {
			a.state.BootLines++
			return a, a.nextBootLine()
		}
		return a, nil

	case BootDoneMsg:
		if msg.Gen != a.state.BootGen || a.state.Phase != PhaseBoot {
			return a, nil
		}
		a.finishBoot()
		return a, nil

	case spinner.TickMsg:
		if a.state.Phase != PhaseBoot {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case FlashMsg:
		if a.state.Flash > 0 {
			a.state.Flash--
		}
		if a.state.Flash > 0 {
			return a, tea.Tick(flashStep, func(time.Time) tea.Msg { return FlashMsg{} })
		}
		return a, nil

	case PrefsChangedMsg:
		if a.opts.Reload != nil {
			if err := a.opts.Reload(); err != nil {
				a.log.Warn("reload prefs", "err", err)
				return a, nil
			}
		}
		if a.themes.Reload() {
			a.applyTheme()
			a.statusMessage = "Theme changed to " + a.themes.Current().Label
			a.log.Info("theme reloaded", "theme", a.themes.Current().Name)
		}
		return a, nil

	case ErrorMsg:
		a.statusMessage = msg.Err.Error()
		return a, nil

	case window.SkillStartMsg:
		return a.delegateTo(msg.Window, msg)

	case window.SkillFrameMsg:
		return a.delegateTo(msg.Window, msg)

	case window.TerminalSubmittedMsg:
		a.log.Debug("terminal input", "input", msg.Input)
		return a, nil

	case tea.MouseMsg:
		return a.handleMouse(msg)

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	// Cursor blink and other input-level messages
	return a.delegateTo(terminalID, msg)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Always allow quit
	if key.Matches(msg, keys.DefaultKeyMap.Quit) {
		return a, tea.Quit
	}

	switch a.state.Phase {
	case PhaseBoot:
		if key.Matches(msg, keys.DefaultKeyMap.Enter) || key.Matches(msg, keys.DefaultKeyMap.Escape) {
			a.finishBoot()
		}
		return a, nil
	case PhaseShutdown:
		if key.Matches(msg, keys.DefaultKeyMap.Enter) {
			return a, a.reboot()
		}
		return a, nil
	}

	if a.konami.Push(msg.String()) {
		return a, a.easterEgg()
	}

	// Handle modal first
	if a.state.ActiveModal != "" {
		return a.handleModalKey(msg)
	}

	if a.state.MenuOpen {
		return a.handleMenuKey(msg)
	}

	// Global keybindings
	switch {
	case key.Matches(msg, keys.DefaultKeyMap.Help):
		a.state.ToggleModal(ModalHelp)
		return a, nil

	case key.Matches(msg, keys.DefaultKeyMap.ThemeMenu):
		a.toggleMenu()
		return a, nil

	case key.Matches(msg, keys.DefaultKeyMap.Power):
		a.state.ToggleModal(ModalPower)
		return a, nil

	case key.Matches(msg, keys.DefaultKeyMap.Tab):
		a.controller.CycleFocus(false)
		a.updateFocus()
		return a, nil

	case key.Matches(msg, keys.DefaultKeyMap.ShiftTab):
		a.controller.CycleFocus(true)
		a.updateFocus()
		return a, nil

	case key.Matches(msg, keys.DefaultKeyMap.Open):
		a.openWindow(terminalID)
		return a, nil

	case key.Matches(msg, keys.DefaultKeyMap.Close):
		if id, ok := a.activeVisible(); ok {
			a.closeWindow(id, false)
		}
		return a, nil

	case key.Matches(msg, keys.DefaultKeyMap.Minimize):
		if id, ok := a.activeVisible(); ok {
			a.closeWindow(id, true)
		}
		return a, nil

	case key.Matches(msg, keys.DefaultKeyMap.Maximize):
		if id, ok := a.activeVisible(); ok {
			a.controller.ToggleMaximize(id)
		}
		return a, nil
	}

	// Delegate to focused window
	if id, ok := a.activeVisible(); ok {
		return a.delegateTo(id, msg)
	}
	return a, nil
}

func (a *App) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.state.ActiveModal {
	case ModalPower:
		switch {
		case key.Matches(msg, keys.DefaultKeyMap.Enter), msg.String() == "y":
			a.shutdown()
		case key.Matches(msg, keys.DefaultKeyMap.Escape), msg.String() == "n":
			a.state.CloseModal()
		}
		return a, nil
	case ModalHelp:
		if key.Matches(msg, keys.DefaultKeyMap.Help) || key.Matches(msg, keys.DefaultKeyMap.Escape) {
			a.state.CloseModal()
		}
		return a, nil
	default:
		if key.Matches(msg, keys.DefaultKeyMap.Enter) || key.Matches(msg, keys.DefaultKeyMap.Escape) {
			a.state.CloseModal()
		}
		return a, nil
	}
}

func (a *App) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	all := theme.All()
	switch {
	case key.Matches(msg, keys.DefaultKeyMap.Up):
		a.state.MoveMenu(-1, len(all))
	case key.Matches(msg, keys.DefaultKeyMap.Down), key.Matches(msg, keys.DefaultKeyMap.Tab):
		a.state.MoveMenu(1, len(all))
	case key.Matches(msg, keys.DefaultKeyMap.Enter):
		a.selectTheme(all[a.state.MenuIndex].Name)
	case key.Matches(msg, keys.DefaultKeyMap.Escape), key.Matches(msg, keys.DefaultKeyMap.ThemeMenu):
		a.state.MenuOpen = false
	}
	return a, nil
}

func (a *App) delegateTo(id string, msg tea.Msg) (tea.Model, tea.Cmd) {
	w, ok := a.windows[id]
	if !ok {
		return a, nil
	}
	var cmd tea.Cmd
	a.windows[id], cmd = w.Update(msg)
	return a, cmd
}

// activeVisible returns the focused window if it is still on screen
func (a *App) activeVisible() (string, bool) {
	id, ok := a.controller.Active()
	if !ok {
		return "", false
	}
	rec, ok := a.controller.Registry().Lookup(id)
	if !ok || !rec.Visible {
		return "", false
	}
	return id, true
}

func (a *App) openWindow(id string) {
	if _, ok := a.controller.Registry().Lookup(id); !ok {
		a.log.Warn("open unknown window", "window", id)
		return
	}
	a.controller.Open(id)
	a.updateFocus()
	if id == terminalID && a.terminal != nil {
		a.terminal.Refresh()
	}
}

// closeWindow hides id and hands focus to the topmost remaining window
func (a *App) closeWindow(id string, minimize bool) {
	if minimize {
		a.controller.Minimize(id)
	} else {
		a.controller.Close(id)
	}
	if stack := a.controller.Registry().Stack(); len(stack) > 0 {
		a.controller.Focus(stack[len(stack)-1].ID)
	}
	a.updateFocus()
}

func (a *App) updateFocus() {
	active, _ := a.activeVisible()
	for id, w := range a.windows {
		w.SetFocus(id == active)
	}
}

func (a *App) toggleMenu() {
	current := 0
	for i, t := range theme.All() {
		if t.Name == a.themes.Current().Name {
			current = i
		}
	}
	a.state.ToggleMenu(current)
}

func (a *App) selectTheme(name string) {
	a.state.MenuOpen = false
	if err := a.themes.Select(name); err != nil {
		a.log.Warn("select theme", "theme", name, "err", err)
		a.statusMessage = fmt.Sprintf("Theme not saved: %v", err)
	} else {
		a.log.Info("theme selected", "theme", name)
	}
	a.applyTheme()
}

func (a *App) applyTheme() {
	a.styles = a.themes.Styles()
	a.help.SetStyles(a.styles)
	for _, w := range a.windows {
		if t, ok := w.(window.Themed); ok {
			t.SetStyles(a.styles)
		}
	}
}

func (a *App) finishBoot() {
	a.state.Phase = PhaseDesktop
	a.log.Info("desktop ready")
}

func (a *App) shutdown() {
	a.state.CloseModal()
	a.state.MenuOpen = false
	a.state.Phase = PhaseShutdown
	a.log.Info("shutdown")
}

func (a *App) reboot() tea.Cmd {
	a.log.Info("reboot")
	a.buildDesktop()
	a.applyTheme()
	if a.cfg.Boot.Skip {
		a.state.StartBoot()
		a.finishBoot()
		return nil
	}
	return a.startBoot()
}

func (a *App) easterEgg() tea.Cmd {
	a.log.Info("konami code entered")
	a.state.MenuOpen = false
	a.state.ActiveModal = ModalKonami
	a.state.Pulse()
	return tea.Tick(flashStep, func(time.Time) tea.Msg { return FlashMsg{} })
}

// Commands

func (a *App) tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (a *App) startBoot() tea.Cmd {
	gen := a.state.StartBoot()
	return tea.Batch(
		a.spinner.Tick,
		a.typeNext(a.cfg.Boot.TypingStart),
		tea.Tick(a.cfg.Boot.Delay, func(time.Time) tea.Msg { return BootDoneMsg{Gen: gen} }),
	)
}

func (a *App) typeNext(d time.Duration) tea.Cmd {
	gen := a.state.BootGen
	if len(a.profile.Boot.Typing) == 0 {
		return func() tea.Msg { return BootLineMsg{Gen: gen} }
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return BootTypeMsg{Gen: gen} })
}

func (a *App) nextBootLine() tea.Cmd {
	gen := a.state.BootGen
	if a.state.BootLines >= len(a.profile.Boot.Lines) {
		return nil
	}
	return tea.Tick(bootLineStep, func(time.Time) tea.Msg { return BootLineMsg{Gen: gen} })
}
