package terminal

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWindows struct{ opened []string }

func (f *fakeWindows) Open(id string) { f.opened = append(f.opened, id) }

type fakeLinks struct {
	opened []string
	err    error
}

func (f *fakeLinks) OpenURL(url string) error {
	f.opened = append(f.opened, url)
	return f.err
}

func testContent() Content {
	return Content{
		User: "bhart",
		Host: "parrot",
		Banner: []string{
			"Welcome to the terminal",
			"Type 'help' to see available commands",
			"======================================",
		},
		Whoami:     []string{"Bhart Verma", "Threat Hunter"},
		Ls:         []string{"drwxr-xr-x  About_Me.txt"},
		Neofetch:   []string{"  (.. |  OS: Parrot", "  Uptime: {uptime}", "", "Experience: 15+ years"},
		Hack:       "Access Granted.",
		SudoDenied: "Nice try!",
		LinkedIn:   "https://example.com/in/someone",
		GitHub:     "https://example.com/someone",
	}
}

func newTestEngine(t *testing.T) (*Engine, *fakeWindows, *fakeLinks) {
	t.Helper()
	w := &fakeWindows{}
	l := &fakeLinks{}
	return NewEngine(testContent(), w, l), w, l
}

// output returns the transcript lines appended after the banner
func output(e *Engine) []Line {
	return e.Lines()[len(e.Banner()):]
}

func TestNewEngineStartsWithBanner(t *testing.T) {
	e, _, _ := newTestEngine(t)
	require.Len(t, e.Lines(), 3)
	assert.Equal(t, e.Banner(), e.Lines())
}

func TestSubmitEmptyInput(t *testing.T) {
	e, _, _ := newTestEngine(t)
	e.Submit("   \t ")
	assert.Empty(t, output(e))
	assert.Equal(t, 0, e.History().Len())
}

func TestSubmitIsCaseAndWhitespaceInsensitive(t *testing.T) {
	var results [][]Line
	for _, in := range []string{"  HELP", "help", "Help "} {
		e, _, _ := newTestEngine(t)
		e.Submit(in)
		results = append(results, output(e))
		assert.Equal(t, []string{"help"}, e.History().Entries())
	}
	assert.Equal(t, results[0], results[1])
	assert.Equal(t, results[1], results[2])
}

func TestSubmitEchoesPrompt(t *testing.T) {
	e, _, _ := newTestEngine(t)
	e.Submit("WhoAmI")
	out := output(e)
	require.NotEmpty(t, out)
	assert.Equal(t, Prompt("bhart@parrot:~$ whoami"), out[0])
	assert.Equal(t, []Line{Output("Bhart Verma"), Output("Threat Hunter")}, out[1:])
}

func TestHelpListsVisibleCommands(t *testing.T) {
	e, _, _ := newTestEngine(t)
	e.Submit("help")
	out := output(e)[1:]
	require.Equal(t, Prompt("Available Commands:"), out[0])
	assert.Len(t, out, 15)
	assert.Equal(t, Output("help        - Show this help message"), out[1])
	for _, l := range out {
		assert.NotContains(t, l.Text, "hack")
	}
}

func TestSudoRunsCommandAfterPasswordPrompt(t *testing.T) {
	plain, _, _ := newTestEngine(t)
	plain.Submit("help")
	helpOut := output(plain)[1:]

	e, _, _ := newTestEngine(t)
	e.Submit("sudo help")
	out := output(e)
	require.Equal(t, Prompt("bhart@parrot:~$ sudo help"), out[0])
	assert.Equal(t, Output("[sudo] password for bhart: ********"), out[1])
	assert.Equal(t, helpOut, out[2:])
}

func TestSudoUnknownCommand(t *testing.T) {
	e, _, _ := newTestEngine(t)
	e.Submit("sudo rm -rf")
	out := output(e)
	require.Len(t, out, 2)
	assert.Equal(t, Error("Command not found: rm -rf"), out[1])
}

func TestBareSudoIsACommand(t *testing.T) {
	e, _, _ := newTestEngine(t)
	e.Submit("sudo")
	out := output(e)
	require.Len(t, out, 2)
	assert.Equal(t, Error("Nice try!"), out[1])
}

func TestUnknownCommand(t *testing.T) {
	e, _, _ := newTestEngine(t)
	require.NotPanics(t, func() { e.Submit("frobnicate") })
	out := output(e)
	require.Len(t, out, 2)
	assert.Equal(t, LineError, out[1].Kind)
	assert.Equal(t, "Command not found: frobnicate. Type 'help' for available commands.", out[1].Text)
}

func TestUnknownCommandSuggestsCloseName(t *testing.T) {
	e, _, _ := newTestEngine(t)
	e.Submit("neofecth")
	out := output(e)
	require.Len(t, out, 2)
	assert.Contains(t, out[1].Text, "neofecth")
	assert.Contains(t, out[1].Text, "Did you mean 'neofetch'?")
}

func TestWindowCommandsOpenWindows(t *testing.T) {
	tests := []struct {
		command string
		window  string
		confirm string
	}{
		{"about", "about", "Opening About Me window..."},
		{"skills", "skills", "Opening Skills window..."},
		{"experience", "experience", "Opening Experience window..."},
		{"certs", "certs", "Opening Certifications window..."},
		{"tools", "tools", "Opening Arsenal window..."},
		{"contact", "contact", "Opening Contact window..."},
		{"projects", "resources", "Opening Resources window..."},
	}
	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			e, w, _ := newTestEngine(t)
			e.Submit(tt.command)
			assert.Equal(t, []string{tt.window}, w.opened)
			assert.Equal(t, []Line{Prompt("bhart@parrot:~$ " + tt.command), Output(tt.confirm)}, output(e))
		})
	}
}

func TestLinkCommands(t *testing.T) {
	e, _, l := newTestEngine(t)
	e.Submit("linkedin")
	e.Submit("github")
	assert.Equal(t, []string{"https://example.com/in/someone", "https://example.com/someone"}, l.opened)
	out := output(e)
	assert.Equal(t, Output("Opening LinkedIn profile..."), out[1])
	assert.Equal(t, Output("Opening GitHub profile..."), out[3])
}

func TestLinkFailureIsReported(t *testing.T) {
	e, _, l := newTestEngine(t)
	l.err = errors.New("no opener")
	e.Submit("github")
	out := output(e)
	require.Len(t, out, 3)
	assert.Equal(t, LineError, out[2].Kind)
	assert.Contains(t, out[2].Text, "https://example.com/someone")
}

func TestClearResetsToBanner(t *testing.T) {
	e, _, _ := newTestEngine(t)
	e.Submit("whoami")
	e.Submit("frobnicate")
	e.Submit("clear")
	assert.Equal(t, e.Banner(), e.Lines())
	assert.Len(t, e.Lines(), 3)

	e.Submit("sudo clear")
	assert.Equal(t, e.Banner(), e.Lines())
	assert.Equal(t, 4, e.History().Len())
}

func TestNeofetchUptime(t *testing.T) {
	start := time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC)
	now := start
	e := NewEngine(testContent(), nil, nil, WithClock(func() time.Time { return now }))
	now = start.Add(3 * time.Hour)

	e.Submit("neofetch")
	out := output(e)[1:]
	require.Len(t, out, 4)
	assert.Equal(t, Prompt("  Uptime: 3 hours"), out[1])
	assert.Equal(t, Output(""), out[2])
	assert.Equal(t, Output("Experience: 15+ years"), out[3])
}

func TestNeofetchVars(t *testing.T) {
	c := testContent()
	c.Neofetch = []string{"Resolution: {resolution}", "Left alone: {missing}"}
	e := NewEngine(c, nil, nil, WithVar("resolution", func() string { return "120x40" }))

	e.Submit("neofetch")
	out := output(e)[1:]
	assert.Equal(t, []Line{Prompt("Resolution: 120x40"), Prompt("Left alone: {missing}")}, out)
}

func TestEveryRegisteredCommandDispatches(t *testing.T) {
	for _, name := range Names {
		t.Run(name, func(t *testing.T) {
			e, _, _ := newTestEngine(t)
			_, ok := e.Lookup(name)
			require.True(t, ok)
			require.NotPanics(t, func() { e.Submit(name) })
			for _, l := range e.Lines() {
				assert.NotContains(t, l.Text, "Command not found")
			}
		})
	}
}

func TestHistoryRecall(t *testing.T) {
	e, _, _ := newTestEngine(t)
	for _, c := range []string{"a", "b", "c"} {
		e.Submit(c)
	}
	assert.Equal(t, 3, e.History().Cursor())

	v, ok := e.Previous()
	require.True(t, ok)
	assert.Equal(t, "c", v)

	v, ok = e.Previous()
	require.True(t, ok)
	assert.Equal(t, "b", v)

	assert.Equal(t, "c", e.Next())
	assert.Equal(t, "", e.Next())
	assert.Equal(t, 3, e.History().Cursor())
}
