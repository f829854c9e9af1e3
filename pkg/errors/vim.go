package errors

import "fmt"

/*
VimError is a coded error raised by the navigation layer.
*/
type VimError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

/*
Error implements the error interface for VimError.
*/
func (e *VimError) Error() string {
	return fmt.Sprintf("vim error %d: %s", e.Code, e.Message)
}

/*
Is matches on the code, so copies made with WithMessagef still compare equal
to the sentinel they came from.
*/
func (e *VimError) Is(target error) bool {
	t, ok := target.(*VimError)
	return ok && t.Code == e.Code
}

var (
	ErrWindowClosed   = &VimError{Code: 100, Message: "window closed"}
	ErrQueueFull      = &VimError{Code: 101, Message: "script queue full"}
	ErrWrongMode      = &VimError{Code: 200, Message: "operation not valid in current mode"}
	ErrUnknownMessage = &VimError{Code: 300, Message: "unknown page message"}
	ErrRender         = &VimError{Code: 301, Message: "failed to render page script"}
	ErrInvalidConfig  = &VimError{Code: 400, Message: "invalid configuration"}
)

// WithMessagef creates a *copy* of a VimError with a formatted message.
// It does not modify the original error variable.
func (e *VimError) WithMessagef(format string, args ...any) *VimError {
	newErr := *e
	newErr.Message = fmt.Sprintf(format, args...)
	return &newErr
}
