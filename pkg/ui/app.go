package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/go-rod/rod/lib/input"
	"github.com/theapemachine/vimnav/pkg/vim"
)

/*
Page is the part of the browser window the terminal host forwards to.
*/
type Page interface {
	Press(key input.Key) error
	Type(text string) error
	URL() string
}

/*
NavigatedMsg tells the model the page committed a new main-frame navigation.
It is sent from the browser's event goroutine through tea.Program.Send so the
session is only ever touched inside Update.
*/
type NavigatedMsg struct {
	URL string
}

type model struct {
	page       Page
	dispatcher *vim.Dispatcher
	aliases    map[string]string
	keys       keymap
	help       help.Model
	url        string
	last       string
}

func New(page Page, dispatcher *vim.Dispatcher, aliases map[string]string) tea.Model {
	return model{
		page:       page,
		dispatcher: dispatcher,
		aliases:    aliases,
		keys:       defaultKeymap,
		help:       help.New(),
		url:        page.URL(),
		last:       "ready",
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case NavigatedMsg:
		m.dispatcher.Navigated()
		m.url = msg.URL
		m.last = "navigated"

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.quit) {
			return m, tea.Quit
		}

		event := translate(msg, m.aliases)

		if m.dispatcher.BeforeInput(event) {
			m.last = "vim: " + strings.ToLower(event.Key)
			return m, nil
		}

		forwarded, err := forward(m.page, msg)
		switch {
		case err != nil:
			log.Warn("could not forward key", "key", msg.String(), "error", err)
			m.last = "dropped: " + msg.String()
		case forwarded:
			m.last = "page: " + msg.String()
		default:
			m.last = "ignored: " + msg.String()
		}
	}

	return m, nil
}

func (m model) View() string {
	session := m.dispatcher.Session()

	mode := normalModeStyle.Render(session.Mode().String())
	if session.Mode() == vim.ModeLabelSelect {
		mode = labelModeStyle.Render(session.Mode().String())
	}

	status := lipgloss.JoinHorizontal(
		lipgloss.Top,
		mode,
		bufferStyle.Render(session.Buffer()),
		urlStyle.Render(m.url),
		lastStyle.Render(m.last),
	)

	return lipgloss.JoinVertical(lipgloss.Left, status, m.help.View(m.keys))
}
