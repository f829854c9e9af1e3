package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-rod/rod/lib/input"
	"github.com/theapemachine/vimnav/pkg/vim"
)

// keyNames maps bubbletea key names to the names a browser reports in
// KeyboardEvent.key.
var keyNames = map[string]string{
	"esc":       "Escape",
	"enter":     "Enter",
	"tab":       "Tab",
	"backspace": "Backspace",
	"delete":    "Delete",
	"up":        "ArrowUp",
	"down":      "ArrowDown",
	"left":      "ArrowLeft",
	"right":     "ArrowRight",
	"home":      "Home",
	"end":       "End",
	"pgup":      "PageUp",
	"pgdown":    "PageDown",
}

// pageKeys maps bubbletea key types to the keys rod can press in the page.
var pageKeys = map[tea.KeyType]input.Key{
	tea.KeyEnter:     input.Enter,
	tea.KeyTab:       input.Tab,
	tea.KeyBackspace: input.Backspace,
	tea.KeyDelete:    input.Delete,
	tea.KeyEsc:       input.Escape,
	tea.KeyUp:        input.ArrowUp,
	tea.KeyDown:      input.ArrowDown,
	tea.KeyLeft:      input.ArrowLeft,
	tea.KeyRight:     input.ArrowRight,
	tea.KeyHome:      input.Home,
	tea.KeyEnd:       input.End,
	tea.KeyPgUp:      input.PageUp,
	tea.KeyPgDown:    input.PageDown,
}

/*
translate turns a terminal key press into the event the dispatcher expects.
Aliases are looked up by the terminal's own key name first, which is how
names like "shiftg" and "gg" reach the command table.
*/
func translate(msg tea.KeyMsg, aliases map[string]string) vim.KeyEvent {
	name := msg.String()

	if alias, ok := aliases[name]; ok {
		return vim.KeyEvent{Type: vim.KeyDown, Key: alias}
	}

	if browserName, ok := keyNames[name]; ok {
		name = browserName
	}

	return vim.KeyEvent{Type: vim.KeyDown, Key: name}
}

/*
forward hands a key the dispatcher did not consume to the page. Keys the page
has no equivalent for are dropped.
*/
func forward(page Page, msg tea.KeyMsg) (bool, error) {
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt {
			return false, nil
		}

		return true, page.Type(string(msg.Runes))
	case tea.KeySpace:
		return true, page.Type(" ")
	}

	if key, ok := pageKeys[msg.Type]; ok {
		return true, page.Press(key)
	}

	return false, nil
}
