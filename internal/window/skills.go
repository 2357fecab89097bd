package window

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kmacinski/termfolio/internal/profile"
)

// Skill bar animation timing
const (
	SkillStagger  = 100 * time.Millisecond
	skillFrame    = 30 * time.Millisecond
	skillFillStep = 0.06
)

// SkillStartMsg starts filling one bar
type SkillStartMsg struct {
	Window string
	Gen    int
	Index  int
}

// SkillFrameMsg advances every filling bar one step
type SkillFrameMsg struct {
	Window string
	Gen    int
}

// SkillsPanel shows proficiency bars that fill from zero, one after another
type SkillsPanel struct {
	Base
	skills  []profile.Skill
	bar     progress.Model
	shown   []float64
	target  []float64
	gen     int
	ticking bool
}

// NewSkillsPanel creates a skills window for a profile panel
func NewSkillsPanel(panel profile.Panel, styles Styles) *SkillsPanel {
	s := &SkillsPanel{
		Base:   NewBase(panel.ID, styles),
		skills: panel.Skills,
		shown:  make([]float64, len(panel.Skills)),
		target: make([]float64, len(panel.Skills)),
	}
	s.bar = s.newBar()
	return s
}

func (s *SkillsPanel) newBar() progress.Model {
	return progress.New(
		progress.WithSolidFill(string(s.styles.Colors.Accent)),
		progress.WithoutPercentage(),
	)
}

// SetStyles recolors the bars
func (s *SkillsPanel) SetStyles(styles Styles) {
	s.styles = styles
	s.bar = s.newBar()
}

// Restart empties every bar and schedules them to fill with a stagger
func (s *SkillsPanel) Restart() tea.Cmd {
	s.gen++
	s.ticking = false
	for i := range s.shown {
		s.shown[i] = 0
		s.target[i] = 0
	}

	name, gen := s.name, s.gen
	cmds := make([]tea.Cmd, len(s.skills))
	for i := range s.skills {
		i := i
		cmds[i] = tea.Tick(time.Duration(i)*SkillStagger, func(time.Time) tea.Msg {
			return SkillStartMsg{Window: name, Gen: gen, Index: i}
		})
	}
	return tea.Batch(cmds...)
}

// Levels returns the currently drawn fill of each bar, 0 to 1
func (s *SkillsPanel) Levels() []float64 {
	return append([]float64(nil), s.shown...)
}

// Update handles animation messages
func (s *SkillsPanel) Update(msg tea.Msg) (Window, tea.Cmd) {
	switch msg := msg.(type) {
	case SkillStartMsg:
		if msg.Window != s.name || msg.Gen != s.gen || msg.Index >= len(s.skills) {
			return s, nil
		}
		s.target[msg.Index] = float64(s.skills[msg.Index].Level) / 100
		if s.ticking {
			return s, nil
		}
		s.ticking = true
		return s, s.frame()

	case SkillFrameMsg:
		if msg.Window != s.name || msg.Gen != s.gen {
			return s, nil
		}
		moving := false
		for i := range s.shown {
			if s.shown[i] < s.target[i] {
				s.shown[i] = min(s.target[i], s.shown[i]+skillFillStep)
			}
			if s.shown[i] < s.target[i] {
				moving = true
			}
		}
		// Keep ticking while bars are still waiting on their stagger
		for i := range s.target {
			if s.target[i] == 0 && s.skills[i].Level > 0 {
				moving = true
			}
		}
		if !moving {
			s.ticking = false
			return s, nil
		}
		return s, s.frame()
	}
	return s, nil
}

func (s *SkillsPanel) frame() tea.Cmd {
	name, gen := s.name, s.gen
	return tea.Tick(skillFrame, func(time.Time) tea.Msg {
		return SkillFrameMsg{Window: name, Gen: gen}
	})
}

// View renders one labelled bar per skill
func (s *SkillsPanel) View(width, height int) string {
	if width < 1 || height < 1 {
		return ""
	}
	labelWidth := 0
	for _, sk := range s.skills {
		labelWidth = max(labelWidth, lipgloss.Width(sk.Name))
	}
	labelWidth = min(labelWidth, width/2)

	bar := s.bar
	bar.Width = max(4, width-labelWidth-7)

	var lines []string
	for i, sk := range s.skills {
		label := s.styles.Text.Width(labelWidth).MaxWidth(labelWidth).Render(sk.Name)
		pct := s.styles.Muted.Render(fmt.Sprintf("%3d%%", int(s.shown[i]*100+0.5)))
		lines = append(lines, label+" "+bar.ViewAs(s.shown[i])+" "+pct)
		if len(lines) < height {
			lines = append(lines, "")
		}
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
