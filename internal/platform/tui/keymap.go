package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// InputMode selects how keystrokes become commits.
type InputMode int

const (
	// InputAuto picks InputLine when a word list is loaded, InputDirect otherwise.
	InputAuto InputMode = iota
	// InputDirect treats every burst of runes as one commit. Terminal input
	// methods deliver a finished composition as a single burst.
	InputDirect
	// InputLine edits a line buffer that Enter or Space commits.
	InputLine
)

// String returns the flag spelling of the mode.
func (m InputMode) String() string {
	switch m {
	case InputAuto:
		return "auto"
	case InputDirect:
		return "direct"
	case InputLine:
		return "line"
	default:
		return "unknown"
	}
}

// ParseInputMode maps a flag value to an InputMode.
func ParseInputMode(s string) (InputMode, error) {
	switch s {
	case "", "auto":
		return InputAuto, nil
	case "direct":
		return InputDirect, nil
	case "line":
		return InputLine, nil
	default:
		return InputAuto, fmt.Errorf("tui: unknown input mode %q (want auto, direct or line)", s)
	}
}

// Resolve returns the concrete mode for auto given whether a word list is loaded.
func (m InputMode) Resolve(hasWordList bool) InputMode {
	if m != InputAuto {
		return m
	}
	if hasWordList {
		return InputLine
	}
	return InputDirect
}

// KeyMap defines the control bindings. Controls use ctrl chords so that
// every printable key stays available for typing.
type KeyMap struct {
	Quit    key.Binding
	Pause   key.Binding
	Restart key.Binding
	Commit  key.Binding
	Clear   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Commit, k.Clear, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Commit, k.Clear},
		{k.Pause, k.Restart, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings for the given input mode.
func DefaultKeyMap(mode InputMode) KeyMap {
	km := KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("C-c", "quit"),
		),
		Pause: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("C-p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("C-r", "restart"),
			key.WithDisabled(),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "fire"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear"),
		),
	}
	if mode != InputLine {
		km.Commit.SetEnabled(false)
		km.Clear.SetEnabled(false)
	}
	return km
}

// directCommit extracts the committed text from a key message in direct
// mode. Only rune bursts (typed characters, IME output, pastes) commit.
func directCommit(msg tea.KeyMsg) (string, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) == 0 {
		return "", false
	}
	return string(msg.Runes), true
}
