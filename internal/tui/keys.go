package tui

import "github.com/gdamore/tcell/v2"

// Action is a host-level command decoded from a key press.
type Action uint8

const (
	ActionNone Action = iota
	ActionLetter
	ActionDelete
	ActionSubmit
	ActionRestart
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionLetter:
		return "letter"
	case ActionDelete:
		return "delete"
	case ActionSubmit:
		return "submit"
	case ActionRestart:
		return "restart"
	case ActionQuit:
		return "quit"
	}
	return "none"
}

// ActionFor maps a key (and its rune, for KeyRune) to an Action.
// Only ASCII letters count as letters.
func ActionFor(key tcell.Key, r rune) Action {
	switch key {
	case tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return ActionQuit
	case tcell.KeyEscape:
		return ActionRestart
	case tcell.KeyEnter:
		return ActionSubmit
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return ActionDelete
	case tcell.KeyRune:
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
			return ActionLetter
		}
	}
	return ActionNone
}
