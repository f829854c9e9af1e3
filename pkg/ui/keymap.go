package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keymap lists the navigation bindings for the help line. Dispatch itself goes
// through the vim command table; only quit is matched here.
type keymap struct {
	scroll key.Binding
	page   key.Binding
	top    key.Binding
	end    key.Binding
	hints  key.Binding
	cancel key.Binding
	quit   key.Binding
}

func newKeymap() keymap {
	return keymap{
		scroll: key.NewBinding(key.WithKeys("j", "k", "h", "l"), key.WithHelp("hjkl", "scroll")),
		page:   key.NewBinding(key.WithKeys("u", "d"), key.WithHelp("u/d", "page")),
		top:    key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "top")),
		end:    key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
		hints:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "hints")),
		cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel hints")),
		quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// defaultKeymap provides a convenient globally accessible set of bindings.
var defaultKeymap = newKeymap()

func (k keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.scroll, k.page, k.top, k.end, k.hints, k.cancel, k.quit}
}

func (k keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.scroll, k.page, k.top, k.end},
		{k.hints, k.cancel, k.quit},
	}
}
