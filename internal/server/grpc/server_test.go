package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/admingate/internal/common"
	"github.com/dmitrijs2005/admingate/internal/cryptox"
	"github.com/dmitrijs2005/admingate/internal/engine"
	"github.com/dmitrijs2005/admingate/internal/eventlog"
	"github.com/dmitrijs2005/admingate/internal/logging"
	pb "github.com/dmitrijs2005/admingate/internal/proto"
	"github.com/dmitrijs2005/admingate/internal/server/auth"
	"github.com/dmitrijs2005/admingate/internal/server/credentials"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

var testParams = cryptox.Params{Iterations: 1, MemoryKB: 16 * 1024, Parallelism: 1}

// newTestServer wires a server over in-memory components with one known
// operator account.
func newTestServer(t *testing.T, opts Options) (*GRPCServer, *auth.SessionManager, engine.API, *eventlog.MemoryLog) {
	t.Helper()

	hash, err := cryptox.HashPasswordWithParams("secret", testParams)
	require.NoError(t, err)

	store, err := credentials.Load([]credentials.User{{Username: "admin", PasswordHash: hash}})
	require.NoError(t, err)

	sm := auth.NewSessionManagerWithParams(store, testParams)
	log := eventlog.NewMemoryLog()
	eng := engine.NewSim(nil)
	t.Cleanup(eng.Stop)

	if opts.PollInterval == 0 {
		opts.PollInterval = 5 * time.Millisecond
	}
	srv, err := NewGRPCServer("127.0.0.1:0", nopLogger{}, sm, eng, log, opts)
	require.NoError(t, err)
	return srv, sm, eng, log
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv, _, _, _ := newTestServer(t, Options{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error on graceful stop: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

// freeAddr reserves a local port so the test can dial the server after Run
// binds it.
func freeAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

// A connected subscriber must not wedge shutdown: GracefulStop waits for
// in-flight RPCs, and the subscription's own context stays live until the
// client goes away.
func TestRun_StopsOnContextCancelWithOpenSubscription(t *testing.T) {
	t.Parallel()

	srv, sm, _, _ := newTestServer(t, Options{})
	srv.address = freeAddr(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	conn, err := grpc.NewClient(srv.address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	client := pb.NewAdminServiceClient(conn)

	token, err := sm.Login("admin", "secret")
	require.NoError(t, err)
	callCtx := metadata.AppendToOutgoingContext(context.Background(), common.AccessTokenHeaderName, token)

	stream, err := client.SubscribeAdminEvents(callCtx, &pb.SubscribeAdminEventsRequest{}, grpc.WaitForReady(true))
	require.NoError(t, err)

	recvErr := make(chan error, 1)
	go func() {
		_, err := stream.Recv()
		recvErr <- err
	}()

	// let the subscription settle into its tail-polling loop
	time.Sleep(100 * time.Millisecond)

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error on stop: %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop while a subscription was open")
	}

	select {
	case err := <-recvErr:
		require.Error(t, err, "subscriber must be disconnected on shutdown")
	case <-time.After(2 * time.Second):
		t.Fatal("subscriber was not disconnected after the server stopped")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	srv, _, _, _ := newTestServer(t, Options{})
	srv.address = "127.0.0.1:99999"

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := srv.Run(ctx); err == nil {
		t.Fatal("expected error from Run on bad address, got nil")
	}
}
