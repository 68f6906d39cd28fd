package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/google/subcommands"

	"github.com/elkasimi/codecup-box/box"
	"github.com/elkasimi/codecup-box/rng"
)

type benchCmd struct {
	playouts int
	seed     uint32
	color    string
}

func (*benchCmd) Name() string     { return "bench" }
func (*benchCmd) Synopsis() string { return "measure uniform-random playout throughput" }
func (*benchCmd) Usage() string {
	return `bench [flags]
Run many uniform-random playouts from the opening position and report
playouts/sec and the average expected score, the throughput figure the
search's time budget is tuned against.
`
}

func (c *benchCmd) SetFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.playouts, "playouts", 1_000_000, "number of random playouts to run")
	fs.Var(seedFlag{&c.seed}, "seed", "playout RNG seed (0 picks rng.DefaultSeed)")
	fs.StringVar(&c.color, "color", "1", "color to score playouts for")
}

func (c *benchCmd) Execute(ctx context.Context, fs *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	color := box.Color(c.color[0])
	box.InitWeights(color)

	opening, err := box.New("Hh123456h")
	if err != nil {
		fmt.Println("bench:", err)
		return subcommands.ExitFailure
	}
	opening.UpdateCandidates()

	gen := rng.NewFast(c.seed)
	start := time.Now()
	var totalScore float64
	for i := 0; i < c.playouts; i++ {
		p := opening.Clone()
		for {
			tileInfo := p.GetRandomMove(gen)
			if tileInfo == nil {
				break
			}
			p.PlayChanceMove(gen)
			p.DoTile(tileInfo)
		}
		totalScore += p.GetExpectedScore(color)
	}
	dt := time.Since(start)

	speed := 0.001 * float64(c.playouts) / dt.Seconds()
	fmt.Printf("dt=%.2f speed=%.2f Ki/s\n", dt.Seconds(), speed)
	fmt.Printf("%.6f\n", totalScore/float64(c.playouts))

	return subcommands.ExitSuccess
}

// seedFlag lets -seed bind directly to a uint32 field through
// flag.Value, since flag has no UintVar narrower than uint64.
type seedFlag struct {
	v *uint32
}

func (f seedFlag) String() string {
	if f.v == nil {
		return "0"
	}
	return fmt.Sprintf("%d", *f.v)
}

func (f seedFlag) Set(s string) error {
	var n uint32
	_, err := fmt.Sscanf(s, "%d", &n)
	if err != nil {
		return err
	}
	*f.v = n
	return nil
}
