package vim

import (
	"unicode/utf8"

	"github.com/google/uuid"
)

/*
Mode is the active input mode of a window.
*/
type Mode int

const (
	ModeNormal Mode = iota
	ModeLabelSelect
)

func (m Mode) String() string {
	switch m {
	case ModeLabelSelect:
		return "LABELS"
	default:
		return "NORMAL"
	}
}

// LabelThreshold is the buffer length at which label selection ends.
const LabelThreshold = 2

/*
Session is the per-window input state. It lives as long as the window it is
bound to and is reset explicitly on navigation. It is not safe for concurrent
use; the host must drive it from one goroutine.
*/
type Session struct {
	ID     string
	mode   Mode
	buffer string
}

func NewSession() *Session {
	return &Session{
		ID:   uuid.New().String(),
		mode: ModeNormal,
	}
}

func (s *Session) Mode() Mode {
	return s.mode
}

func (s *Session) Buffer() string {
	return s.buffer
}

/*
Append adds a key to the label buffer and returns the buffer length in
characters.
*/
func (s *Session) Append(key string) int {
	s.buffer += key
	return utf8.RuneCountInString(s.buffer)
}

func (s *Session) Enter() {
	s.mode = ModeLabelSelect
	s.buffer = ""
}

func (s *Session) Exit() {
	s.mode = ModeNormal
	s.buffer = ""
}

// Reset puts the session back in its initial state.
func (s *Session) Reset() {
	s.Exit()
}
