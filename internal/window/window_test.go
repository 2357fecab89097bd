package window

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmacinski/termfolio/internal/profile"
	"github.com/kmacinski/termfolio/internal/terminal"
	"github.com/kmacinski/termfolio/internal/ui"
)

func keyMsg(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func longPanel(n int) profile.Panel {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = "line"
	}
	return profile.Panel{ID: "about", Sections: []profile.Section{{Heading: "Head", Lines: lines}}}
}

func TestTextPanelFits(t *testing.T) {
	p := NewTextPanel(longPanel(3), ui.DefaultStyles)
	out := ansi.Strip(p.View(20, 10))
	assert.Equal(t, []string{"Head", "line", "line", "line"}, trimAll(strings.Split(out, "\n")))
}

func TestTextPanelScrolls(t *testing.T) {
	p := NewTextPanel(longPanel(20), ui.DefaultStyles)
	p.View(20, 5)
	p.SetFocus(true)

	p.Update(keyMsg(tea.KeyDown))
	assert.Equal(t, 1, p.Offset())

	p.Update(keyMsg(tea.KeyEnd))
	assert.Equal(t, 21-4, p.Offset())
	out := strings.Split(ansi.Strip(p.View(20, 5)), "\n")
	require.Len(t, out, 5)
	assert.Equal(t, "21/21", strings.TrimSpace(out[4]))

	p.Update(keyMsg(tea.KeyDown))
	assert.Equal(t, 17, p.Offset(), "offset is clamped at the end")

	p.Update(keyMsg(tea.KeyHome))
	assert.Equal(t, 0, p.Offset())
	p.Update(keyMsg(tea.KeyUp))
	assert.Equal(t, 0, p.Offset())
}

func TestTextPanelIgnoresKeysWhenUnfocused(t *testing.T) {
	p := NewTextPanel(longPanel(20), ui.DefaultStyles)
	p.View(20, 5)
	p.Update(keyMsg(tea.KeyDown))
	assert.Equal(t, 0, p.Offset())

	p.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown})
	assert.Equal(t, 1, p.Offset(), "wheel scrolls without focus")
}

func skillsPanel() *SkillsPanel {
	return NewSkillsPanel(profile.Panel{
		ID:     "skills",
		Kind:   profile.KindSkills,
		Skills: []profile.Skill{{Name: "Hunting", Level: 90}, {Name: "Forensics", Level: 30}},
	}, ui.DefaultStyles)
}

func TestSkillsAnimateAfterRestart(t *testing.T) {
	s := skillsPanel()
	require.NotNil(t, s.Restart())
	assert.Equal(t, []float64{0, 0}, s.Levels())

	_, cmd := s.Update(SkillStartMsg{Window: "skills", Gen: 1, Index: 0})
	require.NotNil(t, cmd, "first start begins ticking")

	_, cmd = s.Update(SkillStartMsg{Window: "skills", Gen: 1, Index: 1})
	assert.Nil(t, cmd, "already ticking")

	for i := 0; i < 100; i++ {
		_, cmd = s.Update(SkillFrameMsg{Window: "skills", Gen: 1})
		if cmd == nil {
			break
		}
	}
	assert.Nil(t, cmd)
	assert.InDeltaSlice(t, []float64{0.9, 0.3}, s.Levels(), 1e-9)
}

func TestSkillsIgnoreStaleGeneration(t *testing.T) {
	s := skillsPanel()
	s.Restart()
	s.Restart()

	_, cmd := s.Update(SkillStartMsg{Window: "skills", Gen: 1, Index: 0})
	assert.Nil(t, cmd)
	_, cmd = s.Update(SkillFrameMsg{Window: "skills", Gen: 1})
	assert.Nil(t, cmd)
	assert.Equal(t, []float64{0, 0}, s.Levels())
}

func TestSkillsRestartResetsBars(t *testing.T) {
	s := skillsPanel()
	s.Restart()
	s.Update(SkillStartMsg{Window: "skills", Gen: 1, Index: 0})
	s.Update(SkillFrameMsg{Window: "skills", Gen: 1})
	assert.Greater(t, s.Levels()[0], 0.0)

	s.Restart()
	assert.Equal(t, []float64{0, 0}, s.Levels())
}

func TestSkillsView(t *testing.T) {
	s := skillsPanel()
	out := ansi.Strip(s.View(40, 6))
	assert.Contains(t, out, "Hunting")
	assert.Contains(t, out, "Forensics")
	assert.Contains(t, out, "  0%")
	for _, l := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, ansi.StringWidth(l), 40)
	}
}

type openRecorder struct{ ids []string }

func (o *openRecorder) Open(id string) { o.ids = append(o.ids, id) }

func newTerminalPanel(t *testing.T) (*TerminalPanel, *openRecorder) {
	t.Helper()
	rec := &openRecorder{}
	engine := terminal.NewEngine(terminal.Content{
		User:   "bhart",
		Host:   "parrot",
		Banner: []string{"one", "two", "three"},
		Whoami: []string{"Bhart Verma"},
	}, rec, nil)
	p := NewTerminalPanel("terminal", engine, ui.DefaultStyles)
	p.SetFocus(true)
	p.View(60, 10)
	return p, rec
}

func typeLine(p *TerminalPanel, s string) tea.Cmd {
	p.Update(runes(s))
	_, cmd := p.Update(keyMsg(tea.KeyEnter))
	return cmd
}

func TestTerminalPanelSubmits(t *testing.T) {
	p, rec := newTerminalPanel(t)
	cmd := typeLine(p, "about")
	require.NotNil(t, cmd)
	assert.Equal(t, TerminalSubmittedMsg{Input: "about"}, cmd())
	assert.Equal(t, []string{"about"}, rec.ids)
	assert.Empty(t, p.Input())

	out := ansi.Strip(p.View(60, 10))
	assert.Contains(t, out, "bhart@parrot:~$ about")
	assert.Contains(t, out, "Opening About Me window...")
}

func TestTerminalPanelHistoryKeys(t *testing.T) {
	p, _ := newTerminalPanel(t)
	typeLine(p, "whoami")
	typeLine(p, "ls")

	p.Update(keyMsg(tea.KeyUp))
	assert.Equal(t, "ls", p.Input())
	p.Update(keyMsg(tea.KeyUp))
	assert.Equal(t, "whoami", p.Input())
	p.Update(keyMsg(tea.KeyDown))
	assert.Equal(t, "ls", p.Input())
	p.Update(keyMsg(tea.KeyDown))
	assert.Equal(t, "", p.Input())
}

func TestTerminalPanelScrollsToNewestOutput(t *testing.T) {
	p, _ := newTerminalPanel(t)
	for i := 0; i < 10; i++ {
		typeLine(p, "whoami")
	}
	lines := strings.Split(ansi.Strip(p.View(60, 10)), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, "Bhart Verma", strings.TrimSpace(lines[8]))
	assert.True(t, strings.HasPrefix(lines[9], "bhart@parrot:~$ "))
}

func TestTerminalPanelUnfocusedIgnoresKeys(t *testing.T) {
	p, rec := newTerminalPanel(t)
	p.SetFocus(false)
	typeLine(p, "about")
	assert.Empty(t, rec.ids)
}

func TestHelpListsBindings(t *testing.T) {
	out := ansi.Strip(NewHelp(ui.DefaultStyles).View(70, 30))
	for _, s := range []string{"Keybindings", "C-w", "close window", "F1", "C-t", "theme menu"} {
		assert.Contains(t, out, s)
	}
}

func trimAll(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, strings.TrimSpace(l))
	}
	return out
}
