package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/admingate/internal/common"
	"github.com/dmitrijs2005/admingate/internal/engine"
	"github.com/dmitrijs2005/admingate/internal/eventlog"
	"github.com/dmitrijs2005/admingate/internal/metrics"
	pb "github.com/dmitrijs2005/admingate/internal/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
)

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Message: "pong"}, nil

}

// Login verifies the credentials and opens a session. A failed attempt is a
// normal response with Success=false, not a gRPC error: the client should
// not learn whether the username or the password was wrong.
func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	token, err := s.sessions.Login(req.GetUsername(), req.GetPassword())

	if err != nil {
		metrics.RecordLogin(false)
		if errors.Is(err, common.ErrInvalidCredentials) {
			s.logger.Warn(ctx, "Login denied", "username", req.GetUsername())
			return &pb.LoginResponse{Success: false, Message: "invalid credentials"}, nil
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	metrics.RecordLogin(true)
	s.logger.Info(ctx, "Login ok", "username", req.GetUsername())
	return &pb.LoginResponse{Success: true, Token: token}, nil

}

func (s *GRPCServer) AddUser(ctx context.Context, req *pb.AddUserRequest) (*pb.AddUserResponse, error) {

	username, _ := UsernameFromContext(ctx)
	s.logger.Info(ctx, "AddUser request", "uid", req.GetUid(), "operator", username)

	future, err := s.engine.SubmitAsync(engine.AddUser{UID: req.GetUid()})
	if err != nil {
		if errors.Is(err, common.ErrEngineStopped) {
			return nil, status.Error(codes.Unavailable, "engine stopped")
		}
		return nil, status.Error(codes.Internal, err.Error())
	}

	if !s.opts.SyncResponses {
		return &pb.AddUserResponse{Success: true, Message: "ACCEPTED"}, nil
	}

	select {
	case res := <-future:
		return &pb.AddUserResponse{Success: res.Code == engine.Success, Message: res.Message}, nil
	case <-ctx.Done():
		return nil, status.FromContextError(ctx.Err()).Err()
	case <-time.After(s.opts.CommandTimeout):
		return nil, status.Error(codes.DeadlineExceeded, "command timed out")
	}

}

func (s *GRPCServer) StopEngine(ctx context.Context, req *pb.StopEngineRequest) (*pb.StopEngineResponse, error) {

	username, _ := UsernameFromContext(ctx)
	s.logger.Warn(ctx, "StopEngine request", "operator", username)

	s.engine.Stop()

	return &pb.StopEngineResponse{Success: true}, nil

}

// SubscribeAdminEvents streams durable events starting at the requested
// index (0 means the current tail) and then follows the log, probing the
// tail every PollInterval until the client goes away or the server shuts
// down.
func (s *GRPCServer) SubscribeAdminEvents(req *pb.SubscribeAdminEventsRequest, stream pb.AdminService_SubscribeAdminEventsServer) error {

	ctx := stream.Context()

	var r eventlog.Reader
	var err error
	if req.GetLastEventIndex() == 0 {
		r, err = s.events.OpenReader(ctx)
	} else {
		r, err = s.events.OpenReaderAt(ctx, req.GetLastEventIndex())
	}
	if err != nil {
		if errors.Is(err, common.ErrOutOfRange) {
			return status.Error(codes.OutOfRange, err.Error())
		}
		return status.Error(codes.Internal, err.Error())
	}
	defer func() { _ = r.Close() }()

	metrics.ActiveSubscriptions.Inc()
	defer metrics.ActiveSubscriptions.Dec()

	username, _ := UsernameFromContext(ctx)
	s.logger.Info(ctx, "Subscription opened", "operator", username, "from", req.GetLastEventIndex())

	for {
		select {
		case <-s.stopping:
			return status.Error(codes.Unavailable, "server shutting down")
		default:
		}

		rec, err := r.Next(ctx)
		if err != nil {
			if errors.Is(err, common.ErrNoRecord) {
				select {
				case <-ctx.Done():
					return status.FromContextError(ctx.Err()).Err()
				case <-s.stopping:
					return status.Error(codes.Unavailable, "server shutting down")
				case <-time.After(s.opts.PollInterval):
				}
				continue
			}
			if ctx.Err() != nil {
				return status.FromContextError(ctx.Err()).Err()
			}
			s.logger.Error(ctx, "reading event log", "error", err)
			return status.Error(codes.Internal, err.Error())
		}

		cr := &pb.CommandResult{}
		if err := proto.Unmarshal(rec.Data, cr); err != nil {
			// a corrupt record must not wedge the stream
			s.logger.Error(ctx, "decoding stored event", "index", rec.Index, "error", err)
			continue
		}

		if err := stream.Send(&pb.AdminEvent{Index: rec.Index, CommandResult: cr}); err != nil {
			return err
		}
		metrics.EventsDeliveredTotal.Inc()
	}

}
