package server

import (
	"context"
	"fmt"
	"net"

	myGRPC "github.com/MKhiriev/go-rest-boilerplate/internal/handler/grpc"
	"github.com/MKhiriev/go-rest-boilerplate/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, address string, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("listen gRPC on %s: %w", address, err)
	}

	server := grpc.NewServer()
	handler.Register(server)

	return &grpcServer{
		handler:         handler,
		server:          server,
		gRPCNetListener: listener,
		logger:          logger,
	}, nil
}

func (g *grpcServer) name() string { return "gRPC" }

func (g *grpcServer) addr() string { return g.gRPCNetListener.Addr().String() }

func (g *grpcServer) serve() error {
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

// shutdown reports NOT_SERVING first so that health-checking balancers stop
// routing, then drains the server. Connections still open when ctx ends are
// closed forcibly.
func (g *grpcServer) shutdown(ctx context.Context) error {
	g.handler.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		<-stopped
		return fmt.Errorf("gRPC server Shutdown: %w", ctx.Err())
	}
}
