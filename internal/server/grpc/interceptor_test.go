package grpc

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/admingate/internal/common"
	pb "github.com/dmitrijs2005/admingate/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func TestInterceptor_LoginBypassesTokenCheck(t *testing.T) {
	s, _, _, _ := newTestServer(t, Options{})

	ctx := context.Background()
	info := &grpc.UnaryServerInfo{FullMethod: pb.AdminService_Login_FullMethodName}
	handlerCalled := false

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		handlerCalled = true
		return "ok", nil
	}

	resp, err := s.accessTokenInterceptor(ctx, nil, info, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !handlerCalled {
		t.Fatal("handler was not called")
	}
	if resp != "ok" {
		t.Fatalf("unexpected handler resp: %v", resp)
	}
}

func TestInterceptor_MissingToken(t *testing.T) {
	s, _, _, _ := newTestServer(t, Options{})

	ctx := context.Background()
	info := &grpc.UnaryServerInfo{FullMethod: pb.AdminService_AddUser_FullMethodName}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called when token missing")
		return nil, nil
	}

	_, err := s.accessTokenInterceptor(ctx, nil, info, h)
	if err == nil {
		t.Fatal("expected error")
	}
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
	if status.Convert(err).Message() != "missing token" {
		t.Fatalf("expected 'missing token', got %q", status.Convert(err).Message())
	}
}

func TestInterceptor_InvalidToken(t *testing.T) {
	s, _, _, _ := newTestServer(t, Options{})

	md := metadata.New(map[string]string{
		common.AccessTokenHeaderName: "never-issued",
	})
	ctx := metadata.NewIncomingContext(context.Background(), md)
	info := &grpc.UnaryServerInfo{FullMethod: pb.AdminService_AddUser_FullMethodName}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called for invalid token")
		return nil, nil
	}

	_, err := s.accessTokenInterceptor(ctx, nil, info, h)
	if err == nil {
		t.Fatal("expected error")
	}
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
	if status.Convert(err).Message() != "invalid token" {
		t.Fatalf("expected 'invalid token', got %q", status.Convert(err).Message())
	}
}

func TestInterceptor_ValidToken_SetsUsername(t *testing.T) {
	s, sessions, _, _ := newTestServer(t, Options{})

	token, err := sessions.Login("admin", "secret")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	md := metadata.New(map[string]string{
		common.AccessTokenHeaderName: token,
	})
	ctx := metadata.NewIncomingContext(context.Background(), md)
	info := &grpc.UnaryServerInfo{FullMethod: pb.AdminService_AddUser_FullMethodName}

	var gotUsername string
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		gotUsername, _ = UsernameFromContext(ctx)
		return "ok", nil
	}

	resp, err := s.accessTokenInterceptor(ctx, nil, info, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp != "ok" {
		t.Fatalf("unexpected handler resp: %v", resp)
	}
	if gotUsername != "admin" {
		t.Fatalf("username not propagated in context: got %q want %q", gotUsername, "admin")
	}
}

func TestInterceptor_SupersededTokenRejected(t *testing.T) {
	s, sessions, _, _ := newTestServer(t, Options{})

	first, err := sessions.Login("admin", "secret")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	// second login on another terminal revokes the first token
	if _, err := sessions.Login("admin", "secret"); err != nil {
		t.Fatalf("Login error: %v", err)
	}

	md := metadata.New(map[string]string{
		common.AccessTokenHeaderName: first,
	})
	ctx := metadata.NewIncomingContext(context.Background(), md)
	info := &grpc.UnaryServerInfo{FullMethod: pb.AdminService_Ping_FullMethodName}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called for a superseded token")
		return nil, nil
	}

	_, err = s.accessTokenInterceptor(ctx, nil, info, h)
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
}

type ctxOnlyStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *ctxOnlyStream) Context() context.Context { return s.ctx }

func TestStreamInterceptor_MissingToken(t *testing.T) {
	s, _, _, _ := newTestServer(t, Options{})

	info := &grpc.StreamServerInfo{FullMethod: pb.AdminService_SubscribeAdminEvents_FullMethodName, IsServerStream: true}
	ss := &ctxOnlyStream{ctx: context.Background()}

	h := func(srv interface{}, stream grpc.ServerStream) error {
		t.Fatal("handler should not be called when token missing")
		return nil
	}

	err := s.accessTokenStreamInterceptor(nil, ss, info, h)
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
}

func TestStreamInterceptor_ValidToken(t *testing.T) {
	s, sessions, _, _ := newTestServer(t, Options{})

	token, err := sessions.Login("admin", "secret")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	md := metadata.New(map[string]string{
		common.AccessTokenHeaderName: token,
	})
	ss := &ctxOnlyStream{ctx: metadata.NewIncomingContext(context.Background(), md)}
	info := &grpc.StreamServerInfo{FullMethod: pb.AdminService_SubscribeAdminEvents_FullMethodName, IsServerStream: true}

	var gotUsername string
	h := func(srv interface{}, stream grpc.ServerStream) error {
		gotUsername, _ = UsernameFromContext(stream.Context())
		return nil
	}

	if err := s.accessTokenStreamInterceptor(nil, ss, info, h); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotUsername != "admin" {
		t.Fatalf("username not propagated to stream context: got %q", gotUsername)
	}
}
