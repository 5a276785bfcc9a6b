package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/subcommands"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	grpcadapter "github.com/simaogato/networth-backend/internal/adapter/grpc"
	"github.com/simaogato/networth-backend/internal/format"
)

// Commands lists every networthctl subcommand
var Commands = []subcommands.Command{
	&aggregateCmd{},
	&assetsCmd{},
	&createAssetCmd{},
	&recordCmd{},
	&chartCmd{},
	&netWorthCmd{},
	&allocationCmd{},
	&insightsCmd{},
	&widgetCmd{},
}

// remote holds the connection flags shared by the commands talking to the server
type remote struct {
	addr     string
	token    string
	currency string
	timeout  time.Duration
	out      io.Writer
}

func (r *remote) SetFlags(f *flag.FlagSet) {
	f.StringVar(&r.addr, "addr", envOr("NETWORTH_ADDR", "localhost:8080"), "gRPC server address")
	f.StringVar(&r.token, "token", envOr("API_TOKEN", "dev-token"), "API token")
	f.StringVar(&r.currency, "currency", envOr("CURRENCY_CODE", "USD"), "currency used to display amounts")
	f.DurationVar(&r.timeout, "timeout", 10*time.Second, "request timeout")
}

// call connects to the server and runs fn with an authenticated context
func (r *remote) call(ctx context.Context, fn func(ctx context.Context, client *grpcadapter.Client) error) subcommands.ExitStatus {
	conn, err := grpc.NewClient(r.addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to connect to %s: %v\n", r.addr, err)
		return subcommands.ExitFailure
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	ctx = metadata.AppendToOutgoingContext(ctx, "authorization", r.token)

	if err := fn(ctx, grpcadapter.NewClient(conn)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (r *remote) writer() io.Writer {
	if r.out == nil {
		return os.Stdout
	}
	return r.out
}

func (r *remote) formatter() format.Formatter {
	return format.New(r.currency, false)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
