package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/autotags/internal/tags"
)

// --- Key Constants ---

func isKey(msg tea.KeyMsg, keys ...string) bool {
	for _, k := range keys {
		if msg.String() == k {
			return true
		}
	}
	return false
}

// isQuit only matches ctrl+c; every printable key is query text.
func isQuit(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyCtrlC
}

func isBack(msg tea.KeyMsg) bool {
	if msg.Type == tea.KeyEsc {
		return true
	}
	return isKey(msg, "esc", "escape", "ctrl+[")
}

func isUp(msg tea.KeyMsg) bool {
	return isKey(msg, "up", "ctrl+p")
}

func isDown(msg tea.KeyMsg) bool {
	return isKey(msg, "down", "ctrl+n")
}

func isEnter(msg tea.KeyMsg) bool {
	return isKey(msg, "enter", "return")
}

func isTab(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyTab
}

func isLeft(msg tea.KeyMsg) bool {
	return isKey(msg, "left")
}

func isRight(msg tea.KeyMsg) bool {
	return isKey(msg, "right")
}

func isDelete(msg tea.KeyMsg) bool {
	return isKey(msg, "backspace", "delete", "ctrl+h")
}

// keyOf maps a key message to the controller's key identifier.
func keyOf(msg tea.KeyMsg) tags.Key {
	if msg.Type == tea.KeyBackspace || isKey(msg, "ctrl+h") {
		return tags.KeyBackspace
	}
	return tags.Key(msg.String())
}
