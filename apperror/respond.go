package apperror

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/ivashin/servekit/logger"
)

// Respond terminates error propagation: it logs err once at error level with
// the full cause chain and writes exactly one HTTP response.
//
// The response status is the one carried by err; a plain error that is not an
// *Error is upgraded via From and renders as 500. The body is the compact
// form "<status>: <cause chain>", e.g.
//
//	404 Not Found: not found: lookup failed
//
// while the log record carries every chain layer as a separate element.
// Respond never fails; it accepts any non-nil error.
func Respond(w http.ResponseWriter, log *logger.Logger, err error) {
	e := From(err)

	log.Error().
		Int("status", e.status).
		Strs("cause_chain", e.Chain()).
		Msg(e.Error())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(e.status)
	_, _ = fmt.Fprintf(w, "%s: %s", statusLine(e.status), e.Error())
}

// statusLine renders a status code the way HTTP status lines do,
// e.g. "404 Not Found". Unknown codes render as the bare number.
func statusLine(status int) string {
	if text := http.StatusText(status); text != "" {
		return strconv.Itoa(status) + " " + text
	}
	return strconv.Itoa(status)
}
