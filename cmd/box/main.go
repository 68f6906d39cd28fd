// Command box runs an autonomous player for the tile-placement game
// Box, in one of three modes: playing a live match over stdin/stdout,
// benchmarking playout throughput, or serving search introspection
// over gRPC.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&playCmd{}, "")
	subcommands.Register(&benchCmd{}, "")
	subcommands.Register(&serveCmd{}, "")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
