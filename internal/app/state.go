package app

// Phase is the top-level screen being shown
type Phase int

const (
	PhaseBoot Phase = iota
	PhaseDesktop
	PhaseShutdown
)

func (p Phase) String() string {
	switch p {
	case PhaseBoot:
		return "boot"
	case PhaseDesktop:
		return "desktop"
	case PhaseShutdown:
		return "shutdown"
	default:
		return "unknown"
	}
}

// Modal names
const (
	ModalHelp    = "help"
	ModalPower   = "power"
	ModalKonami  = "konami"
	konamiPulses = 3
)

// State holds the shared application state
type State struct {
	Phase Phase

	// Boot screen progress
	BootGen   int
	BootTyped int
	BootLines int

	// Theme menu
	MenuOpen  bool
	MenuIndex int

	// UI
	ActiveModal string // empty if no modal

	// Screen border pulses left to draw, two steps per pulse
	Flash int
}

// NewState creates a new state with defaults
func NewState() *State {
	return &State{Phase: PhaseBoot}
}

// StartBoot resets the boot screen and returns the new generation
func (s *State) StartBoot() int {
	s.Phase = PhaseBoot
	s.BootGen++
	s.BootTyped = 0
	s.BootLines = 0
	s.MenuOpen = false
	s.ActiveModal = ""
	s.Flash = 0
	return s.BootGen
}

// ToggleModal toggles a modal on/off
func (s *State) ToggleModal(name string) {
	if s.ActiveModal == name {
		s.ActiveModal = ""
	} else {
		s.ActiveModal = name
	}
}

// CloseModal closes any open modal
func (s *State) CloseModal() {
	s.ActiveModal = ""
}

// ToggleMenu opens or closes the theme menu, highlighting current
func (s *State) ToggleMenu(current int) {
	s.MenuOpen = !s.MenuOpen
	s.MenuIndex = current
}

// MoveMenu moves the menu highlight, wrapping around n entries
func (s *State) MoveMenu(delta, n int) {
	if n == 0 {
		return
	}
	s.MenuIndex = ((s.MenuIndex+delta)%n + n) % n
}

// Pulse starts the konami border animation
func (s *State) Pulse() {
	s.Flash = konamiPulses * 2
}

// FlashOn reports whether the border is lit in the current step
func (s *State) FlashOn() bool {
	return s.Flash%2 == 0 && s.Flash > 0
}
