// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/items-keeper/internal/config"
	"github.com/MKhiriev/items-keeper/internal/handler"
	"github.com/MKhiriev/items-keeper/internal/logger"
)

type server struct {
	httpServer *httpServer
	runners    []Runner

	// onListen is called with the bound address once the listener is up.
	onListen func(net.Addr)

	logger *logger.Logger
}

// NewServer builds the process server. runners (the background workers) are
// started alongside the HTTP server and stopped with it.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger, runners ...Runner) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		runners:    runners,
		logger:     logger,
	}, nil
}

func (s *server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	s.logger.Info().Msg("Launching HTTP server")
	g.Go(func() error {
		return s.httpServer.Serve(s.onListen)
	})

	for _, r := range s.runners {
		g.Go(func() error {
			return r.Run(gctx)
		})
	}

	// listen for stop signals or a failed component
	g.Go(func() error {
		<-gctx.Done()
		return s.httpServer.Shutdown()
	})

	err := g.Wait()
	if err != nil {
		s.logger.Err(err).Msg("server stopped with error")
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
