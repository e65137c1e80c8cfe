package server

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-rest-boilerplate/internal/config"
	"github.com/MKhiriev/go-rest-boilerplate/internal/handler"
	"github.com/MKhiriev/go-rest-boilerplate/internal/logger"
	"golang.org/x/sync/errgroup"
)

type server struct {
	transports      []transport
	shutdownTimeout time.Duration

	logger *logger.Logger
}

// NewServer binds the listeners of every handler in handlers. Listening
// errors are reported here rather than at RunServer.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	s := &server{
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}

	if handlers.HTTP != nil && cfg.HTTPAddress != "" {
		httpSrv, err := newHTTPServer(handlers.HTTP.Init(), cfg.HTTPAddress, logger)
		if err != nil {
			return nil, err
		}
		s.transports = append(s.transports, httpSrv)
	}
	if handlers.GRPC != nil && cfg.GRPCAddress != "" {
		grpcSrv, err := newGRPCServer(handlers.GRPC, cfg.GRPCAddress, logger)
		if err != nil {
			s.closeListeners()
			return nil, err
		}
		s.transports = append(s.transports, grpcSrv)
	}

	if len(s.transports) == 0 {
		return nil, errNoServersAreCreated
	}

	return s, nil
}

func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	// launch all created servers
	for _, t := range s.transports {
		s.logger.Info().Str("addr", t.addr()).Msgf("launching %s server", t.name())
		g.Go(t.serve)
	}

	// a stop signal, or the failure of any transport, shuts all of them down
	g.Go(func() error {
		<-gctx.Done()
		return s.shutdown()
	})

	if err := g.Wait(); err != nil {
		s.logger.Err(err).Msg("server stopped with error")
		return err
	}

	s.logger.Info().Msg("server shutdown gracefully")
	return nil
}

func (s *server) shutdown() error {
	s.logger.Info().Dur("timeout", s.shutdownTimeout).Msg("shutting down servers")

	ctx := context.Background()
	if s.shutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.shutdownTimeout)
		defer cancel()
	}

	var errs []error
	for _, t := range s.transports {
		if err := t.shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *server) closeListeners() {
	for _, t := range s.transports {
		if h, ok := t.(*httpServer); ok {
			_ = h.listener.Close()
		}
	}
}
