package app

import "time"

// TickMsg drives the top bar clock
type TickMsg time.Time

// BootTypeMsg reveals the next character of the boot text
type BootTypeMsg struct {
	Gen int
}

// BootLineMsg reveals the next boot status line
type BootLineMsg struct {
	Gen int
}

// BootDoneMsg ends the boot screen
type BootDoneMsg struct {
	Gen int
}

// FlashMsg advances the screen border pulse
type FlashMsg struct{}

// PrefsChangedMsg is sent when the preference file changes on disk
type PrefsChangedMsg struct{}

// ErrorMsg is sent when an error occurs
type ErrorMsg struct {
	Err error
}
