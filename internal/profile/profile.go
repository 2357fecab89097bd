// Package profile loads the portfolio content shown on the desktop: window
// panels, skills, links and the canned terminal texts.
package profile

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kmacinski/termfolio/internal/desktop"
	"github.com/kmacinski/termfolio/internal/terminal"
)

//go:embed default.yaml
var defaultYAML []byte

// ErrInvalidProfile is returned when a profile is missing required content
var ErrInvalidProfile = errors.New("invalid profile")

// Panel kinds
const (
	KindText     = "text"
	KindSkills   = "skills"
	KindTerminal = "terminal"
)

// RequiredPanels must be declared by every profile; terminal commands open them
var RequiredPanels = []string{"about", "skills", "experience", "certs", "tools", "contact", "resources", "terminal"}

// Profile is the whole portfolio
type Profile struct {
	Owner    Owner    `yaml:"owner"`
	Brand    string   `yaml:"brand"`
	Logo     []string `yaml:"logo"`
	Prompt   Prompt   `yaml:"prompt"`
	Links    Links    `yaml:"links"`
	Boot     Boot     `yaml:"boot"`
	Banner   []string `yaml:"banner"`
	Terminal Texts    `yaml:"terminal"`
	Shutdown Shutdown `yaml:"shutdown"`
	Panels   []Panel  `yaml:"panels"`
}

// Owner identifies the person behind the portfolio
type Owner struct {
	Name     string `yaml:"name"`
	Title    string `yaml:"title"`
	Location string `yaml:"location"`
}

// Prompt is the terminal identity
type Prompt struct {
	User string `yaml:"user"`
	Host string `yaml:"host"`
}

// Links are the external profiles opened by the terminal
type Links struct {
	LinkedIn string `yaml:"linkedin"`
	GitHub   string `yaml:"github"`
}

// Boot is the boot screen content
type Boot struct {
	Typing string   `yaml:"typing"`
	Lines  []string `yaml:"lines"`
}

// Texts are the canned terminal outputs
type Texts struct {
	Whoami   []string `yaml:"whoami"`
	Ls       []string `yaml:"ls"`
	Neofetch []string `yaml:"neofetch"`
	Hack     string   `yaml:"hack"`
	Sudo     string   `yaml:"sudo"`
}

// Shutdown is the shutdown screen content
type Shutdown struct {
	Title   string `yaml:"title"`
	Message string `yaml:"message"`
	Action  string `yaml:"action"`
}

// Panel is one desktop window
type Panel struct {
	ID       string    `yaml:"id"`
	Title    string    `yaml:"title"`
	Label    string    `yaml:"label"`
	Icon     string    `yaml:"icon"`
	Kind     string    `yaml:"kind"`
	Width    int       `yaml:"width"`
	Height   int       `yaml:"height"`
	Sections []Section `yaml:"sections"`
	Skills   []Skill   `yaml:"skills"`
}

// Section is a heading followed by text lines
type Section struct {
	Heading string   `yaml:"heading"`
	Lines   []string `yaml:"lines"`
}

// Skill is a named proficiency from 0 to 100
type Skill struct {
	Name  string `yaml:"name"`
	Level int    `yaml:"level"`
}

// Default returns the embedded profile
func Default() (*Profile, error) {
	return Parse(defaultYAML)
}

// Load reads a profile file, or the embedded profile when path is empty
func Load(path string) (*Profile, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes and validates a YAML profile
func Parse(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	for i := range p.Panels {
		if p.Panels[i].Kind == "" {
			p.Panels[i].Kind = KindText
		}
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks the content the desktop and terminal rely on
func (p *Profile) Validate() error {
	seen := map[string]bool{}
	for _, panel := range p.Panels {
		if panel.ID == "" {
			return fmt.Errorf("%w: panel without id", ErrInvalidProfile)
		}
		if seen[panel.ID] {
			return fmt.Errorf("%w: duplicate panel %q", ErrInvalidProfile, panel.ID)
		}
		seen[panel.ID] = true

		switch panel.Kind {
		case KindText, KindSkills, KindTerminal:
		default:
			return fmt.Errorf("%w: panel %q has unknown kind %q", ErrInvalidProfile, panel.ID, panel.Kind)
		}
		if panel.Width < 20 || panel.Height < 6 {
			return fmt.Errorf("%w: panel %q smaller than 20x6", ErrInvalidProfile, panel.ID)
		}
		for _, s := range panel.Skills {
			if s.Level < 0 || s.Level > 100 {
				return fmt.Errorf("%w: skill %q level %d outside 0-100", ErrInvalidProfile, s.Name, s.Level)
			}
		}
	}
	for _, id := range RequiredPanels {
		if !seen[id] {
			return fmt.Errorf("%w: missing panel %q", ErrInvalidProfile, id)
		}
	}
	if len(p.Banner) != 3 {
		return fmt.Errorf("%w: banner must have exactly 3 lines, got %d", ErrInvalidProfile, len(p.Banner))
	}
	if p.Prompt.User == "" || p.Prompt.Host == "" {
		return fmt.Errorf("%w: prompt user and host are required", ErrInvalidProfile)
	}
	return nil
}

// Panel returns the panel with id
func (p *Profile) Panel(id string) (Panel, bool) {
	for _, panel := range p.Panels {
		if panel.ID == id {
			return panel, true
		}
	}
	return Panel{}, false
}

// WindowSpecs declares one desktop window per panel
func (p *Profile) WindowSpecs() []desktop.Spec {
	specs := make([]desktop.Spec, 0, len(p.Panels))
	for _, panel := range p.Panels {
		specs = append(specs, desktop.Spec{
			ID:      panel.ID,
			Title:   panel.Title,
			Natural: desktop.Size{Width: panel.Width, Height: panel.Height},
		})
	}
	return specs
}

// TerminalContent returns the texts the terminal engine prints
func (p *Profile) TerminalContent() terminal.Content {
	return terminal.Content{
		User:       p.Prompt.User,
		Host:       p.Prompt.Host,
		Banner:     p.Banner,
		Whoami:     p.Terminal.Whoami,
		Ls:         p.Terminal.Ls,
		Neofetch:   p.Terminal.Neofetch,
		Hack:       p.Terminal.Hack,
		SudoDenied: p.Terminal.Sudo,
		LinkedIn:   p.Links.LinkedIn,
		GitHub:     p.Links.GitHub,
	}
}
