package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/admingate/internal/engine"
	"github.com/dmitrijs2005/admingate/internal/eventlog"
	"github.com/dmitrijs2005/admingate/internal/logging"
	pb "github.com/dmitrijs2005/admingate/internal/proto"
	"github.com/dmitrijs2005/admingate/internal/server/auth"
	"google.golang.org/grpc"
)

// stopGracePeriod bounds how long a graceful stop waits for in-flight
// RPCs before the server is stopped forcibly.
const stopGracePeriod = 2 * time.Second

// Options are the request-handling knobs of the admin endpoint.
type Options struct {
	// PollInterval is the sleep between tail probes on subscription streams.
	PollInterval time.Duration
	// SyncResponses makes AddUser wait for the engine outcome instead of
	// acknowledging submission.
	SyncResponses bool
	// CommandTimeout bounds the synchronous wait.
	CommandTimeout time.Duration
}

type GRPCServer struct {
	pb.UnimplementedAdminServiceServer
	address  string
	logger   logging.Logger
	sessions *auth.SessionManager
	engine   engine.API
	events   eventlog.Log
	opts     Options
	// stopping is closed when the server context is cancelled. Long-lived
	// streams watch it: their own contexts stay live through GracefulStop,
	// which would otherwise wait on them forever.
	stopping chan struct{}
}

func NewGRPCServer(a string, l logging.Logger, sm *auth.SessionManager, eng engine.API, events eventlog.Log, opts Options) (*GRPCServer, error) {
	if opts.PollInterval <= 0 {
		opts.PollInterval = 50 * time.Millisecond
	}
	if opts.CommandTimeout <= 0 {
		opts.CommandTimeout = 5 * time.Second
	}
	return &GRPCServer{
		address:  a,
		logger:   l.With("module", "grpc_server"),
		sessions: sm,
		engine:   eng,
		events:   events,
		opts:     opts,
		stopping: make(chan struct{}),
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	// creates gRPC-server
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(s.accessTokenInterceptor),
		grpc.ChainStreamInterceptor(s.accessTokenStreamInterceptor),
	)

	// registers service
	pb.RegisterAdminServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		close(s.stopping)
		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()
		select {
		case <-stopped:
		case <-time.After(stopGracePeriod):
			srv.Stop()
		}
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
