package keys

// KonamiSequence is matched against the most recent key presses
var KonamiSequence = []string{"up", "up", "down", "down", "left", "right", "left", "right", "b", "a"}

// Konami watches a sliding window of key names for KonamiSequence
type Konami struct {
	recent []string
}

// Push records a key name and reports whether the sequence just completed.
// The window is cleared on a match so one entry fires once.
func (k *Konami) Push(name string) bool {
	k.recent = append(k.recent, name)
	if len(k.recent) > len(KonamiSequence) {
		k.recent = k.recent[len(k.recent)-len(KonamiSequence):]
	}
	if len(k.recent) < len(KonamiSequence) {
		return false
	}
	for i, want := range KonamiSequence {
		if k.recent[i] != want {
			return false
		}
	}
	k.recent = k.recent[:0]
	return true
}

// Reset forgets recorded keys
func (k *Konami) Reset() {
	k.recent = k.recent[:0]
}
