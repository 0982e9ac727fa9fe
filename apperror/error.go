package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error is an error carrying the HTTP status code it should render with.
//
// The wrapped cause keeps its full chain: layers added with
// fmt.Errorf("...: %w", err) stay reachable through Unwrap, so errors.Is and
// errors.As keep working across the HTTP boundary.
type Error struct {
	status int
	err    error
}

// New returns an *Error that renders with the given status code.
// A nil err is replaced with an opaque cause so that the chain is never empty.
func New(status int, err error) *Error {
	if err == nil {
		err = errors.New("unknown error")
	}
	return &Error{status: status, err: err}
}

// Newf returns an *Error with a formatted message. The format string may use
// %w to wrap an underlying cause.
func Newf(status int, format string, args ...any) *Error {
	return &Error{status: status, err: fmt.Errorf(format, args...)}
}

// From upgrades an arbitrary error into an *Error with status 500 and the
// error as the only chain element. It is the explicit counterpart of the
// automatic conversion call sites rely on when they return plain errors:
// wrap at the boundary, not at every layer.
//
// If err is already an *Error, it is returned unchanged. If err wraps an
// *Error, the explicitly chosen status survives AND the context layers added
// above the status-choosing point stay in the chain.
func From(err error) *Error {
	if e, ok := err.(*Error); ok {
		return e
	}

	var e *Error
	if errors.As(err, &e) {
		return &Error{status: e.status, err: err}
	}

	return New(http.StatusInternalServerError, err)
}

// Error returns the compact rendering of the cause chain, outermost context
// first, layers joined with ": ".
func (e *Error) Error() string {
	return e.err.Error()
}

// Status returns the HTTP status code this error renders with.
func (e *Error) Status() int { return e.status }

// Unwrap returns the underlying cause so errors.Is / errors.As can inspect
// the full chain.
func (e *Error) Unwrap() error { return e.err }

// Chain returns the error's cause chain as separate strings, from the
// outermost added context down to the root cause.
func (e *Error) Chain() []string {
	return Chain(e.err)
}

// Chain splits an error's cause chain into its layers, outermost first.
//
// Each layer produced by fmt.Errorf("context: %w", cause) contributes just
// its own "context" part; a layer whose message does not embed its cause's
// message is kept whole. A transparent layer that reports its cause's
// message verbatim (such as *Error itself) adds no context and contributes
// no element. A nil error yields a nil slice.
func Chain(err error) []string {
	var chain []string
	for err != nil {
		msg := err.Error()
		cause := errors.Unwrap(err)
		if cause != nil {
			if msg == cause.Error() {
				err = cause
				continue
			}
			if own, ok := strings.CutSuffix(msg, ": "+cause.Error()); ok {
				msg = own
			}
		}
		chain = append(chain, msg)
		err = cause
	}
	return chain
}
