// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Ivashin

package apperror

import (
	"fmt"
	"net/http"
)

// LegacyError is the superseded error-response type. It always renders as
// status 500 and reuses one rendering for both the log and the response
// body, so operators get no more detail than clients.
//
// Deprecated: use Error, which carries a producer-chosen status code and
// separates the verbose log rendering from the compact response body. This
// type is kept only so old clients keep receiving the response shape they
// were written against.
type LegacyError struct {
	Err error
}

// Error returns the wrapped error's message.
func (e *LegacyError) Error() string { return e.Err.Error() }

// Unwrap returns the wrapped error.
func (e *LegacyError) Unwrap() error { return e.Err }

// Respond writes the superseded response shape: status 500 with the body
// "Something went wrong: <error>".
//
// Deprecated: use Respond, which honors the carried status code and logs
// the full cause chain.
func (e *LegacyError) Respond(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = fmt.Fprintf(w, "Something went wrong: %s", e.Err)
}
