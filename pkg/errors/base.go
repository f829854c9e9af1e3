package errors

import (
	"fmt"
	"strings"
)

/*
Error collects several underlying errors and free-form messages into one.
Used where a teardown has more than one step that can fail.
*/
type Error struct {
	Errs []error
	Msgs []any
}

func NewError(errs ...any) error {
	err := &Error{}

	for _, msg := range errs {
		switch v := msg.(type) {
		case error:
			if v != nil {
				err.Errs = append(err.Errs, v)
			}
		case string:
			err.Msgs = append(err.Msgs, v)
		}
	}

	if len(err.Errs) == 0 && len(err.Msgs) == 0 {
		return nil
	}

	return err
}

func (err *Error) Error() string {
	builder := &strings.Builder{}

	for _, err := range err.Errs {
		builder.WriteString(err.Error())
		builder.WriteString("\n")
	}

	for _, msg := range err.Msgs {
		builder.WriteString(fmt.Sprintf("%v\n", msg))
	}

	return builder.String()
}

/*
Unwrap exposes the collected errors to errors.Is and errors.As.
*/
func (err *Error) Unwrap() []error {
	return err.Errs
}
