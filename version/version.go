// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Ivashin

// Package version serves the running service's version, read from the
// project manifest at request time.
package version

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"

	"github.com/ivashin/servekit/apperror"
	"github.com/ivashin/servekit/logger"
	"github.com/ivashin/servekit/openapi"
)

// manifest is the subset of the project manifest the handler needs.
type manifest struct {
	Version string `toml:"version"`
}

// Response is the JSON body returned by the version endpoint.
type Response struct {
	Version string `json:"version"`
}

// Handler serves the application version. The manifest file is read on every
// request, so a redeploy that replaces the manifest is picked up without a
// restart.
type Handler struct {
	manifestPath string
	log          *logger.Logger
}

// NewHandler returns a Handler reading the TOML manifest at manifestPath.
func NewHandler(manifestPath string, log *logger.Logger) *Handler {
	return &Handler{
		manifestPath: manifestPath,
		log:          log,
	}
}

// ServeHTTP responds with {"version":"<semver>"} on success. Any failure to
// open or parse the manifest translates to a 500 error response.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := h.requestLogger(r)

	v, err := h.readVersion()
	if err != nil {
		apperror.Respond(w, log, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(Response{Version: v}); err != nil {
		log.Error().Err(err).Msg("encoding version response")
	}
}

// requestLogger prefers the request-scoped logger attached by the trace-ID
// middleware, so error records carry the request's trace_id. When no logger
// travels in the request context, the constructor-injected one is used.
func (h *Handler) requestLogger(r *http.Request) *logger.Logger {
	if l := logger.FromRequest(r); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return h.log
}

func (h *Handler) readVersion() (string, error) {
	raw, err := os.ReadFile(h.manifestPath)
	if err != nil {
		return "", fmt.Errorf("opening manifest: %w", err)
	}

	var m manifest
	if err := toml.Unmarshal(raw, &m); err != nil {
		return "", fmt.Errorf("parsing manifest: %w", err)
	}

	if m.Version == "" {
		return "", fmt.Errorf("parsing manifest: %w", errors.New("no version field"))
	}

	return m.Version, nil
}

// AddToSpec registers the version endpoint's path item on doc.
func (h *Handler) AddToSpec(doc *openapi.Document, path string) {
	doc.AddOperation(path, "get", openapi.Operation{
		Summary:     "Version of the server",
		OperationID: "appVersion",
		Responses: map[string]openapi.Response{
			"200": {
				Description: "Version of the server",
				Content: map[string]openapi.MediaType{
					"application/json": {
						Schema: &openapi.Schema{
							Type: "object",
							Properties: map[string]*openapi.Schema{
								"version": {Type: "string"},
							},
							Required: []string{"version"},
						},
					},
				},
			},
			"500": {
				Description: "Failed to read the server version",
				Content: map[string]openapi.MediaType{
					"text/plain": {Schema: &openapi.Schema{Type: "string"}},
				},
			},
		},
	})
}
