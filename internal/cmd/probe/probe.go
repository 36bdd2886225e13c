// Package probe dials a connect4 server and issues a single Connect call.
package probe

import (
	"context"
	"flag"
	"fmt"
	"io"

	connect4v1 "github.com/louisbranch/connect4.space/api/gen/go/connect4/v1"
	entrypoint "github.com/louisbranch/connect4.space/internal/platform/cmd"
	platformgrpc "github.com/louisbranch/connect4.space/internal/platform/grpc"
	"github.com/louisbranch/connect4.space/internal/platform/timeouts"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
)

// Config holds probe command configuration.
type Config struct {
	Addr      string `env:"CONNECT4_ADDR" envDefault:"localhost:50051"`
	ClientID  string `env:"CONNECT4_PROBE_CLIENT_ID"`
	AccountID string `env:"CONNECT4_PROBE_ACCOUNT_ID"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "The connect4 gRPC server address")
	fs.StringVar(&cfg.ClientID, "client-id", cfg.ClientID, "The client id to connect with")
	fs.StringVar(&cfg.AccountID, "account-id", cfg.AccountID, "The account id to connect with")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run dials the server, waits for health, and issues one Connect call,
// writing the outcome to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	conn, err := platformgrpc.DialWithHealth(ctx, nil, cfg.Addr, connect4v1.Connect4Service_ServiceDesc.ServiceName, timeouts.GRPCDial, nil, platformgrpc.DefaultClientDialOptions()...)
	if err != nil {
		return fmt.Errorf("dial %s: %w", cfg.Addr, err)
	}
	defer func() { _ = conn.Close() }()

	callCtx, cancel := context.WithTimeout(ctx, timeouts.GRPCRequest)
	defer cancel()

	client := connect4v1.NewConnect4ServiceClient(conn)
	_, err = client.Connect(callCtx, &connect4v1.ConnectionRequest{
		Metadata: &connect4v1.RequestMetadata{
			ClientId:  proto.String(cfg.ClientID),
			AccountId: proto.String(cfg.AccountID),
		},
	})
	if err != nil {
		printStatus(out, err)
		return fmt.Errorf("connect %s: %w", cfg.Addr, err)
	}
	fmt.Fprintf(out, "connected to %s as client %q account %q\n", cfg.Addr, cfg.ClientID, cfg.AccountID)
	return nil
}

// printStatus renders a failed call, including structured error details.
func printStatus(out io.Writer, err error) {
	st, ok := status.FromError(err)
	if !ok {
		fmt.Fprintf(out, "connect failed: %v\n", err)
		return
	}
	fmt.Fprintf(out, "connect rejected: %s: %s\n", st.Code(), st.Message())
	for _, detail := range st.Details() {
		switch d := detail.(type) {
		case *errdetails.ErrorInfo:
			fmt.Fprintf(out, "  reason: %s (domain %s)\n", d.GetReason(), d.GetDomain())
		case *errdetails.BadRequest:
			for _, violation := range d.GetFieldViolations() {
				fmt.Fprintf(out, "  field %s: %s\n", violation.GetField(), violation.GetDescription())
			}
		}
	}
}
