/*
Package vim turns raw key events from a host window into scroll and link-hint
operations on the page it hosts.
*/
package vim

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

/*
EventType is the kind of key transition a host reports.
*/
type EventType string

const (
	KeyDown EventType = "keyDown"
	KeyUp   EventType = "keyUp"
)

/*
KeyEvent is the host's view of a single key transition.
*/
type KeyEvent struct {
	Type EventType
	Key  string
}

/*
Dispatcher routes key-downs by mode: to the command table in normal mode and
to the label buffer in label selection.
*/
type Dispatcher struct {
	session    *Session
	controller *Controller
}

func NewDispatcher(session *Session, controller *Controller) *Dispatcher {
	return &Dispatcher{
		session:    session,
		controller: controller,
	}
}

func (d *Dispatcher) Session() *Session {
	return d.session
}

/*
BeforeInput is the host hook. It sees every key transition before the page
does, ignores everything but key-downs and reports whether the event was
consumed.
*/
func (d *Dispatcher) BeforeInput(event KeyEvent) bool {
	if event.Type != KeyDown {
		return false
	}

	return d.OnKeyDown(event)
}

/*
OnKeyDown handles one key-down and reports whether the page must not see it.
*/
func (d *Dispatcher) OnKeyDown(event KeyEvent) bool {
	key := strings.ToLower(event.Key)

	if d.session.Mode() == ModeLabelSelect {
		return d.selectLabel(key)
	}

	action, ok := d.controller.Command(key)
	if !ok {
		log.Debug("key passed through", "session", d.session.ID, "key", key)
		return false
	}

	if err := action(); err != nil {
		log.Error("command failed", "session", d.session.ID, "key", key, "error", err)
	}

	return true
}

/*
Navigated resets the session after the page moved to a new document; any
overlays went away with the old one.
*/
func (d *Dispatcher) Navigated() {
	log.Debug("page navigated, resetting session", "session", d.session.ID, "mode", d.session.Mode())
	d.session.Reset()
}

func (d *Dispatcher) selectLabel(key string) bool {
	if key == "escape" {
		d.exitLabelSelect()
		return true
	}

	n := d.session.Append(key)
	log.Debug("label buffer", "session", d.session.ID, "buffer", d.session.Buffer())

	if err := d.matchLabel(d.session.Buffer()); err != nil {
		log.Error("label match failed", "session", d.session.ID, "buffer", d.session.Buffer(), "error", err)
	}

	if n >= LabelThreshold {
		d.exitLabelSelect()
	}

	return true
}

// matchLabel keeps a misbehaving injector from taking the key path down.
func (d *Dispatcher) matchLabel(buffer string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("label match panicked: %v", r)
		}
	}()

	return d.controller.TryMatchLabel(buffer)
}

func (d *Dispatcher) exitLabelSelect() {
	if err := d.controller.ExitLabelSelect(); err != nil {
		log.Error("failed to remove labels", "session", d.session.ID, "error", err)
	}
}
