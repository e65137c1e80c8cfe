package server

import "context"

// Server defines the lifecycle contract of the application server.
type Server interface {
	// RunServer serves requests until ctx is cancelled or a stop signal
	// (SIGINT, SIGTERM, SIGQUIT) arrives, then shuts every transport down
	// gracefully. It returns the first transport failure, if any.
	RunServer(ctx context.Context) error
}

// transport is a single listening server managed by [Server].
type transport interface {
	name() string
	addr() string

	// serve blocks until the transport is shut down. A graceful shutdown is
	// not an error.
	serve() error
	shutdown(ctx context.Context) error
}
