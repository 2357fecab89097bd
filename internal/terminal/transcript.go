package terminal

// LineKind tells the renderer how to style a transcript line
type LineKind int

const (
	LinePrompt LineKind = iota
	LineOutput
	LineError
)

func (k LineKind) String() string {
	switch k {
	case LinePrompt:
		return "prompt"
	case LineOutput:
		return "output"
	case LineError:
		return "error"
	default:
		return "unknown"
	}
}

// Line is one row of terminal output
type Line struct {
	Kind LineKind
	Text string
}

// Prompt, Output and Error build lines of the matching kind
func Prompt(text string) Line { return Line{Kind: LinePrompt, Text: text} }
func Output(text string) Line { return Line{Kind: LineOutput, Text: text} }
func Error(text string) Line  { return Line{Kind: LineError, Text: text} }

func outputs(texts []string) []Line {
	lines := make([]Line, 0, len(texts))
	for _, t := range texts {
		lines = append(lines, Output(t))
	}
	return lines
}
