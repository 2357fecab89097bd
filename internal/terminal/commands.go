package terminal

import (
	"fmt"
	"strings"
)

// Action is what a command does when dispatched
type Action int

const (
	ActionPrint      Action = iota // append static output
	ActionOpenWindow               // open a desktop window, then confirm
	ActionOpenLink                 // open an external URL, then confirm
	ActionClear                    // replace the transcript with the banner
)

// Command is one entry of the fixed command registry
type Command struct {
	Name    string
	Summary string // shown by help; empty hides the command
	Action  Action
	Target  string // window ID or URL
	Output  []Line
}

// Content is the portfolio-specific text the commands print
type Content struct {
	User string
	Host string

	Banner   []string
	Whoami   []string
	Ls       []string
	Neofetch []string // "{uptime}" is replaced with the session uptime

	Hack       string
	SudoDenied string

	LinkedIn string
	GitHub   string
}

// Prompt returns the shell prompt prefix, e.g. "bhart@parrot:~$"
func (c Content) Prompt() string {
	return fmt.Sprintf("%s@%s:~$", c.User, c.Host)
}

// Names lists every registered command in help order
var Names = []string{
	"help", "about", "skills", "experience", "certs", "tools", "contact",
	"projects", "linkedin", "github", "clear", "whoami", "ls", "neofetch",
	"hack", "sudo",
}

// windowCommand describes a command that opens a desktop window
type windowCommand struct {
	window string
	label  string
}

var windowCommands = map[string]windowCommand{
	"about":      {"about", "About Me"},
	"skills":     {"skills", "Skills"},
	"experience": {"experience", "Experience"},
	"certs":      {"certs", "Certifications"},
	"tools":      {"tools", "Arsenal"},
	"contact":    {"contact", "Contact"},
	"projects":   {"resources", "Resources"},
}

var summaries = map[string]string{
	"help":       "Show this help message",
	"about":      "Display about information",
	"skills":     "List technical skills",
	"experience": "Show work experience",
	"certs":      "List certifications",
	"tools":      "Display security tools",
	"contact":    "Show contact information",
	"projects":   "View GitHub projects",
	"linkedin":   "Open LinkedIn profile",
	"github":     "Open GitHub profile",
	"clear":      "Clear terminal",
	"whoami":     "Display current user",
	"ls":         "List available sections",
	"neofetch":   "System information",
}

// Commands builds the command registry for c
func Commands(c Content) map[string]Command {
	cmds := make(map[string]Command, len(Names))
	for _, name := range Names {
		cmd := Command{Name: name, Summary: summaries[name]}

		switch name {
		case "help":
			cmd.Action = ActionPrint
			cmd.Output = helpLines()
		case "linkedin":
			cmd.Action = ActionOpenLink
			cmd.Target = c.LinkedIn
			cmd.Output = []Line{Output("Opening LinkedIn profile...")}
		case "github":
			cmd.Action = ActionOpenLink
			cmd.Target = c.GitHub
			cmd.Output = []Line{Output("Opening GitHub profile...")}
		case "clear":
			cmd.Action = ActionClear
		case "whoami":
			cmd.Output = outputs(c.Whoami)
		case "ls":
			cmd.Output = outputs(c.Ls)
		case "neofetch":
			cmd.Output = neofetchLines(c.Neofetch)
		case "hack":
			cmd.Output = []Line{Output(c.Hack)}
		case "sudo":
			cmd.Output = []Line{Error(c.SudoDenied)}
		default:
			wc := windowCommands[name]
			cmd.Action = ActionOpenWindow
			cmd.Target = wc.window
			cmd.Output = []Line{Output(fmt.Sprintf("Opening %s window...", wc.label))}
		}

		cmds[name] = cmd
	}
	return cmds
}

func helpLines() []Line {
	lines := []Line{Prompt("Available Commands:")}
	for _, name := range Names {
		if s := summaries[name]; s != "" {
			lines = append(lines, Output(fmt.Sprintf("%-11s - %s", name, s)))
		}
	}
	return lines
}

// neofetchLines renders the ascii art block as prompt lines and the
// trailing facts, after the first blank line, as output lines
func neofetchLines(texts []string) []Line {
	lines := make([]Line, 0, len(texts))
	facts := false
	for _, t := range texts {
		if strings.TrimSpace(t) == "" {
			facts = true
		}
		if facts {
			lines = append(lines, Output(t))
		} else {
			lines = append(lines, Prompt(t))
		}
	}
	return lines
}
