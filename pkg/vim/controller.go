package vim

import (
	"github.com/charmbracelet/log"
	"github.com/theapemachine/vimnav/pkg/errors"
	"github.com/theapemachine/vimnav/pkg/script"
)

// ScrollStep is the distance in pixels a single j/k/h/l press moves.
const ScrollStep = 25

/*
Injector runs script source inside the hosted page. It does not wait for the
script to finish and reports no result.
*/
type Injector interface {
	Execute(source string) error
}

/*
Action is a zero-argument normal mode command.
*/
type Action func() error

/*
Controller owns the command table and is the only thing that talks to the
page. Injections are fire-and-forget, so two quick scrolls may reach the page
out of step with the key presses that caused them; the visual result settles
either way.
*/
type Controller struct {
	session   *Session
	injector  Injector
	selectors script.Selectors
	commands  map[string]Action
}

func NewController(session *Session, injector Injector, selectors script.Selectors) *Controller {
	ctrl := &Controller{
		session:   session,
		injector:  injector,
		selectors: selectors,
	}

	ctrl.commands = map[string]Action{
		"j":      func() error { return ctrl.Scroll(0, ScrollStep) },
		"k":      func() error { return ctrl.Scroll(0, -ScrollStep) },
		"h":      func() error { return ctrl.Scroll(-ScrollStep, 0) },
		"l":      func() error { return ctrl.Scroll(ScrollStep, 0) },
		"u":      func() error { return ctrl.Scroll(0, -ScrollStep*4) },
		"d":      func() error { return ctrl.Scroll(0, ScrollStep*4) },
		"shiftg": ctrl.ScrollToEnd,
		"gg":     ctrl.ScrollToTop,
		"f":      ctrl.EnterLabelSelect,
	}

	return ctrl
}

/*
Command looks up the action bound to a lowercase key name.
*/
func (ctrl *Controller) Command(key string) (Action, bool) {
	action, ok := ctrl.commands[key]
	return action, ok
}

func (ctrl *Controller) Scroll(dx, dy int) error {
	return ctrl.inject(script.Scroll{DX: dx, DY: dy})
}

func (ctrl *Controller) ScrollToTop() error {
	return ctrl.inject(script.ScrollToTop{})
}

func (ctrl *Controller) ScrollToEnd() error {
	return ctrl.inject(script.ScrollToEnd{})
}

/*
EnterLabelSelect overlays labels on the page and switches to label selection.
When the overlay cannot be sent the session stays in normal mode.
*/
func (ctrl *Controller) EnterLabelSelect() error {
	if ctrl.session.Mode() != ModeNormal {
		return errors.ErrWrongMode.WithMessagef("already in %s mode", ctrl.session.Mode())
	}

	if err := ctrl.inject(script.ShowLabels{}); err != nil {
		return err
	}

	ctrl.session.Enter()
	log.Debug("label mode on", "session", ctrl.session.ID)
	return nil
}

/*
ExitLabelSelect removes the overlays and returns to normal mode. The state
change happens even if the removal script could not be sent. Calling it in
normal mode does nothing.
*/
func (ctrl *Controller) ExitLabelSelect() error {
	if ctrl.session.Mode() != ModeLabelSelect {
		return nil
	}

	ctrl.session.Exit()
	log.Debug("label mode off", "session", ctrl.session.ID)

	return ctrl.inject(script.HideLabels{})
}

/*
TryMatchLabel clicks the element tagged with exactly buffer, if there is one.
*/
func (ctrl *Controller) TryMatchLabel(buffer string) error {
	if ctrl.session.Mode() != ModeLabelSelect {
		return errors.ErrWrongMode.WithMessagef("cannot match label %q in %s mode", buffer, ctrl.session.Mode())
	}

	return ctrl.inject(script.MatchLabel{Text: buffer})
}

func (ctrl *Controller) inject(msg script.Message) error {
	source, err := msg.Render(ctrl.selectors)
	if err != nil {
		return err
	}

	return ctrl.injector.Execute(source)
}
