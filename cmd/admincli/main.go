// Command admincli is a small operator console for the admin gateway.
//
// Usage:
//
//	admincli [-addr host:port] login -u <username>
//	admincli [-addr host:port] -token <token> ping
//	admincli [-addr host:port] -token <token> add-user -uid <id>
//	admincli [-addr host:port] -token <token> stop-engine
//	admincli [-addr host:port] -token <token> subscribe [-from <index>]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/admingate/internal/common"
	pb "github.com/dmitrijs2005/admingate/internal/proto"
	"golang.org/x/term"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// tokenAuth attaches the session token to every outgoing call. An empty
// token sends nothing, so login and ping work on a fresh console.
type tokenAuth struct {
	token string
}

func (a *tokenAuth) withToken(ctx context.Context) context.Context {
	if a.token == "" {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, common.AccessTokenHeaderName, a.token)
}

func (a *tokenAuth) unaryInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	return invoker(a.withToken(ctx), method, req, reply, cc, opts...)
}

func (a *tokenAuth) streamInterceptor(
	ctx context.Context,
	desc *grpc.StreamDesc,
	cc *grpc.ClientConn,
	method string,
	streamer grpc.Streamer,
	opts ...grpc.CallOption,
) (grpc.ClientStream, error) {
	return streamer(a.withToken(ctx), desc, cc, method, opts...)
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: admincli [-addr host:port] [-token token] <login|ping|add-user|stop-engine|subscribe> [args]")
	os.Exit(2)
}

func main() {

	addr := flag.String("addr", "localhost:50051", "gateway address")
	token := flag.String("token", "", "session token")
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
	}

	auth := &tokenAuth{token: *token}
	conn, err := grpc.NewClient(*addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(auth.unaryInterceptor),
		grpc.WithStreamInterceptor(auth.streamInterceptor),
	)
	if err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
	defer func() { _ = conn.Close() }()

	client := pb.NewAdminServiceClient(conn)

	ctx := context.Background()

	args := flag.Args()
	switch args[0] {
	case "login":
		err = cmdLogin(ctx, client, args[1:])
	case "ping":
		err = cmdPing(ctx, client)
	case "add-user":
		err = cmdAddUser(ctx, client, args[1:])
	case "stop-engine":
		err = cmdStopEngine(ctx, client)
	case "subscribe":
		err = cmdSubscribe(ctx, client, args[1:])
	default:
		usage()
	}

	if err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}

}

func cmdLogin(ctx context.Context, client pb.AdminServiceClient, args []string) error {

	fs := flag.NewFlagSet("login", flag.ExitOnError)
	username := fs.String("u", "", "username")
	_ = fs.Parse(args)
	if *username == "" {
		return fmt.Errorf("login: -u is required")
	}

	fmt.Println("Enter password")
	password, err := readPassword(int(os.Stdin.Fd()))
	if err != nil {
		return err
	}

	resp, err := client.Login(ctx, &pb.LoginRequest{Username: *username, Password: string(password)})
	if err != nil {
		return err
	}
	if !resp.GetSuccess() {
		return fmt.Errorf("login failed: %s", resp.GetMessage())
	}

	fmt.Println(resp.GetToken())
	return nil
}

func cmdPing(ctx context.Context, client pb.AdminServiceClient) error {
	resp, err := client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return err
	}
	fmt.Println(resp.GetMessage())
	return nil
}

func cmdAddUser(ctx context.Context, client pb.AdminServiceClient, args []string) error {

	fs := flag.NewFlagSet("add-user", flag.ExitOnError)
	uid := fs.Uint64("uid", 0, "numeric user id")
	_ = fs.Parse(args)
	if *uid == 0 {
		return fmt.Errorf("add-user: -uid is required")
	}

	resp, err := client.AddUser(ctx, &pb.AddUserRequest{Uid: *uid})
	if err != nil {
		return err
	}
	fmt.Printf("success=%v %s\n", resp.GetSuccess(), resp.GetMessage())
	return nil
}

func cmdStopEngine(ctx context.Context, client pb.AdminServiceClient) error {
	resp, err := client.StopEngine(ctx, &pb.StopEngineRequest{})
	if err != nil {
		return err
	}
	fmt.Printf("success=%v\n", resp.GetSuccess())
	return nil
}

func cmdSubscribe(ctx context.Context, client pb.AdminServiceClient, args []string) error {

	fs := flag.NewFlagSet("subscribe", flag.ExitOnError)
	from := fs.Uint64("from", 0, "first index to receive, 0 = tail only")
	_ = fs.Parse(args)

	stream, err := client.SubscribeAdminEvents(ctx, &pb.SubscribeAdminEventsRequest{LastEventIndex: *from})
	if err != nil {
		return err
	}

	for {
		event, err := stream.Recv()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		cr := event.GetCommandResult()
		fmt.Printf("#%d uid=%d %s %s\n", event.GetIndex(), cr.GetUid(), cr.GetResultCode(), cr.GetMessage())
	}
}
