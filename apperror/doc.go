// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Ivashin

// Package apperror converts internal failures into HTTP responses.
//
// It defines Error, an error value carrying an intended HTTP status code and
// a chain of causes, and Respond, the single boundary point where such a
// value is turned into a structured log record and an HTTP response. All
// intermediate layers are expected to wrap failures with fmt.Errorf and %w,
// adding human-readable context, and re-propagate; only Respond terminates
// propagation.
//
// Operators and clients see different renderings of the same failure:
// the log record carries the full cause chain, element by element, while the
// response body carries a compact single-line summary. Nothing beyond the
// chain's messages ever reaches the client.
package apperror
