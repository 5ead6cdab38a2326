package grpc

import (
	"context"

	"github.com/dmitrijs2005/admingate/internal/common"
	pb "github.com/dmitrijs2005/admingate/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const usernameKey ctxKey = "username"

// UsernameFromContext returns the username bound by the auth interceptors.
func UsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(usernameKey).(string)
	return username, ok
}

// authenticate resolves the access_token metadata entry to a username and
// binds it into the context. Every failure maps to Unauthenticated.
func (s *GRPCServer) authenticate(ctx context.Context) (context.Context, error) {

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}
	if len(accessToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	username, err := s.sessions.Authenticate(accessToken)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	return context.WithValue(ctx, usernameKey, username), nil
}

// accessTokenInterceptor gates every unary method except Login.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if info.FullMethod == pb.AdminService_Login_FullMethodName {
		return handler(ctx, req)
	}

	ctx, err := s.authenticate(ctx)
	if err != nil {
		return nil, err
	}

	return handler(ctx, req)
}

// accessTokenStreamInterceptor gates streaming methods. Login is unary, so
// no stream bypasses the token check.
func (s *GRPCServer) accessTokenStreamInterceptor(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {

	ctx, err := s.authenticate(ss.Context())
	if err != nil {
		return err
	}

	return handler(srv, &wrappedStream{ServerStream: ss, ctx: ctx})
}

// wrappedStream overrides Context so handlers see the authenticated one.
type wrappedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (w *wrappedStream) Context() context.Context {
	return w.ctx
}
