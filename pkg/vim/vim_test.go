package vim

import (
	stderrors "errors"
	"strings"

	"github.com/theapemachine/vimnav/pkg/script"
)

// recorder is an Injector that keeps every script it is handed.
type recorder struct {
	sources []string
	failOn  string
	panicOn string
}

func (r *recorder) Execute(source string) error {
	if r.panicOn != "" && strings.Contains(source, r.panicOn) {
		panic("page went away")
	}

	if r.failOn != "" && strings.Contains(source, r.failOn) {
		return stderrors.New("scroll container missing")
	}

	r.sources = append(r.sources, source)
	return nil
}

func (r *recorder) reset() {
	r.sources = nil
}

func render(msg script.Message) string {
	source, err := msg.Render(script.DefaultSelectors())
	if err != nil {
		panic(err)
	}

	return source
}

func newHarness() (*Session, *recorder, *Dispatcher) {
	session := NewSession()
	rec := &recorder{}
	ctrl := NewController(session, rec, script.DefaultSelectors())
	return session, rec, NewDispatcher(session, ctrl)
}

func press(d *Dispatcher, keys ...string) []bool {
	consumed := make([]bool, 0, len(keys))

	for _, key := range keys {
		consumed = append(consumed, d.BeforeInput(KeyEvent{Type: KeyDown, Key: key}))
	}

	return consumed
}

func count(sources []string, want string) int {
	n := 0

	for _, source := range sources {
		if source == want {
			n++
		}
	}

	return n
}
