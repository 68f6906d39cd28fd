package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/google/subcommands"

	"github.com/elkasimi/codecup-box/diag"
)

type serveCmd struct {
	addr string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "run the gRPC analysis server" }
func (*serveCmd) Usage() string {
	return `serve [flags]
Listen for Analyze RPCs and run one search per request, for live
introspection from an external tool rather than a match driver.
`
}

func (c *serveCmd) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.addr, "addr", ":4213", "address to listen on")
}

func (c *serveCmd) Execute(ctx context.Context, fs *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	logger := log.New(os.Stderr, "", log.LstdFlags)
	logger.Printf("listening on %s", c.addr)
	if err := diag.Serve(ctx, c.addr, &diag.Server{Logger: logger}, logger); err != nil && ctx.Err() == nil {
		logger.Printf("serve: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
