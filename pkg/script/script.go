/*
Package script holds every piece of JavaScript vimnav injects into the hosted
page. Callers build typed messages and render them at the injection boundary,
so DOM handling never leaks into the key dispatch code.
*/
package script

import (
	"bytes"
	"encoding/json"
	"text/template"

	"github.com/theapemachine/vimnav/pkg/errors"
)

const (
	// LabelClass marks the overlay spans so they can be removed in one sweep.
	LabelClass = "vim-label"
	// LabelAttr is the data attribute an element is tagged with.
	LabelAttr = "data-vim-label"
	// Alphabet is the digit set labels are built from.
	Alphabet = "abcdefghijklmnopqrstuvwxyz"
)

/*
Selectors describes the parts of the hosted page the scripts rely on. Both
depend on the page's markup version and break when it changes.
*/
type Selectors struct {
	Scroller  string `mapstructure:"scroller"`
	Clickable string `mapstructure:"clickable"`
}

func DefaultSelectors() Selectors {
	return Selectors{
		Scroller:  ".scroller_e2e187",
		Clickable: "button, a, [role='button'], [role='listitem'], [class='link_c91bad']",
	}
}

/*
Message is one page operation. The set of variants is closed.
*/
type Message interface {
	Kind() string
	Render(sel Selectors) (string, error)
	message()
}

type Scroll struct {
	DX int
	DY int
}

type ScrollToTop struct{}

type ScrollToEnd struct{}

type ShowLabels struct{}

type HideLabels struct{}

type MatchLabel struct {
	Text string
}

func (Scroll) Kind() string      { return "scroll" }
func (ScrollToTop) Kind() string { return "top" }
func (ScrollToEnd) Kind() string { return "end" }
func (ShowLabels) Kind() string  { return "show" }
func (HideLabels) Kind() string  { return "hide" }
func (MatchLabel) Kind() string  { return "match" }

func (Scroll) message()      {}
func (ScrollToTop) message() {}
func (ScrollToEnd) message() {}
func (ShowLabels) message()  {}
func (HideLabels) message()  {}
func (MatchLabel) message()  {}

func (m Scroll) Render(sel Selectors) (string, error) {
	return render("scroll", sel, m)
}

func (m ScrollToTop) Render(sel Selectors) (string, error) {
	return render("top", sel, m)
}

func (m ScrollToEnd) Render(sel Selectors) (string, error) {
	return render("end", sel, m)
}

func (m ShowLabels) Render(sel Selectors) (string, error) {
	return render("show", sel, m)
}

func (m HideLabels) Render(sel Selectors) (string, error) {
	return render("hide", sel, m)
}

func (m MatchLabel) Render(sel Selectors) (string, error) {
	return render("match", sel, m)
}

type data struct {
	Sel      Selectors
	Msg      Message
	Alphabet string
	Class    string
	Attr     string
}

func render(name string, sel Selectors, msg Message) (string, error) {
	var buf bytes.Buffer

	if err := templates.ExecuteTemplate(&buf, name, data{
		Sel:      sel,
		Msg:      msg,
		Alphabet: Alphabet,
		Class:    LabelClass,
		Attr:     LabelAttr,
	}); err != nil {
		return "", errors.ErrRender.WithMessagef("%s: %v", name, err)
	}

	return buf.String(), nil
}

// js encodes a Go value as a JavaScript literal.
func js(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

var templates = template.Must(template.New("script").Funcs(template.FuncMap{
	"js": js,
}).Parse(source))
