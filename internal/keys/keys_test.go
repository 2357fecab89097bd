package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func push(k *Konami, names ...string) (fired int) {
	for _, n := range names {
		if k.Push(n) {
			fired++
		}
	}
	return fired
}

func TestKonamiExactSequence(t *testing.T) {
	var k Konami
	assert.Equal(t, 1, push(&k, KonamiSequence...))
}

func TestKonamiIgnoresLeadingNoise(t *testing.T) {
	var k Konami
	noise := []string{"x", "up", "enter", "a", "b"}
	assert.Equal(t, 1, push(&k, append(noise, KonamiSequence...)...))
}

func TestKonamiFiresOncePerEntry(t *testing.T) {
	var k Konami
	assert.Equal(t, 1, push(&k, KonamiSequence...))
	assert.Equal(t, 0, push(&k, "b", "a"))
	assert.Equal(t, 1, push(&k, KonamiSequence...))
}

func TestKonamiBrokenSequence(t *testing.T) {
	var k Konami
	broken := append([]string{}, KonamiSequence...)
	broken[4] = "right"
	assert.Equal(t, 0, push(&k, broken...))

	k.Push("up")
	k.Reset()
	assert.Equal(t, 1, push(&k, KonamiSequence...))
}

func TestBindingsMatchKeyMessages(t *testing.T) {
	tests := []struct {
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{tea.KeyMsg{Type: tea.KeyTab}, DefaultKeyMap.Tab},
		{tea.KeyMsg{Type: tea.KeyShiftTab}, DefaultKeyMap.ShiftTab},
		{tea.KeyMsg{Type: tea.KeyCtrlW}, DefaultKeyMap.Close},
		{tea.KeyMsg{Type: tea.KeyCtrlN}, DefaultKeyMap.Minimize},
		{tea.KeyMsg{Type: tea.KeyCtrlF}, DefaultKeyMap.Maximize},
		{tea.KeyMsg{Type: tea.KeyCtrlT}, DefaultKeyMap.ThemeMenu},
		{tea.KeyMsg{Type: tea.KeyCtrlP}, DefaultKeyMap.Power},
		{tea.KeyMsg{Type: tea.KeyF1}, DefaultKeyMap.Help},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, DefaultKeyMap.Quit},
		{tea.KeyMsg{Type: tea.KeyEsc}, DefaultKeyMap.Escape},
	}
	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			assert.True(t, key.Matches(tt.msg, tt.binding))
		})
	}
}
