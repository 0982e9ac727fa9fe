// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Ivashin

// Package server runs an HTTP server with graceful shutdown.
//
// Run serves until the process receives an interrupt or termination signal
// (or the caller cancels the context), then stops accepting new connections
// and lets in-flight requests finish before returning. There is no forced
// drain timeout: handlers run to completion.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/ivashin/servekit/logger"
)

// Run serves h on ln until SIGINT or SIGTERM arrives or ctx is cancelled.
//
// On shutdown the listener is closed first, then in-flight requests are
// drained with no deadline. A fatal serve error (a broken listener, for
// example) is returned to the caller instead of terminating the process;
// a clean shutdown returns nil.
func Run(ctx context.Context, ln net.Listener, h http.Handler, log *logger.Logger) error {
	srv := &http.Server{Handler: h}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	idleConnectionsClosed := make(chan struct{})

	// listen for stop signals
	go func() {
		<-ctx.Done()

		if err := srv.Shutdown(context.Background()); err != nil {
			log.Error().Err(err).Msg("HTTP server shutdown")
		}

		close(idleConnectionsClosed)
	}()

	log.Info().Str("address", ln.Addr().String()).Msg("launching HTTP server")
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving HTTP: %w", err)
	}

	<-idleConnectionsClosed
	log.Info().Msg("server shut down gracefully")

	return nil
}
