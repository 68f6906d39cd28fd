package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/elkasimi/codecup-box/box"
	"github.com/elkasimi/codecup-box/engine"
	"github.com/elkasimi/codecup-box/matchlog"
)

type playCmd struct {
	seed      int64
	timeRatio float64
	logFile   string
	logDB     string
	matchDay  string
}

func (*playCmd) Name() string     { return "play" }
func (*playCmd) Synopsis() string { return "play one game over stdin/stdout" }
func (*playCmd) Usage() string {
	return `play [flags]
Speak the match driver's protocol: read the color byte, the starting
tile, and a chance+opponent-move token per turn, answering each with
this side's placement, until "Quit" or stdin closes.
`
}

func (c *playCmd) SetFlags(fs *flag.FlagSet) {
	fs.Int64Var(&c.seed, "seed", 0, "search RNG seed (0 picks rng.DefaultSeed)")
	fs.Float64Var(&c.timeRatio, "time-ratio", 1.0, "fraction of the 30s whole-game budget to actually spend")
	fs.StringVar(&c.logFile, "log", "", "file to append diagnostics to (default stderr)")
	fs.StringVar(&c.logDB, "log-db", "", "sqlite3 file to append the finished match to (empty disables)")
	fs.StringVar(&c.matchDay, "day", "", "day tag for -log-db rows (default: today, YYYY-MM-DD)")
}

func (c *playCmd) Execute(ctx context.Context, fs *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	logger := log.New(os.Stderr, "", log.LstdFlags)
	if c.logFile != "" {
		f, err := os.OpenFile(c.logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("play: open -log %s: %v", c.logFile, err)
			return subcommands.ExitFailure
		}
		defer f.Close()
		logger = log.New(f, "", log.LstdFlags)
	}

	e := engine.New(os.Stdin, os.Stdout, engine.Config{
		Seed:      uint32(c.seed),
		TimeRatio: c.timeRatio,
		Logger:    logger,
	})
	start := time.Now()
	err := e.Run()
	duration := time.Since(start)
	if err != nil {
		log.Printf("play: %v", err)
		return subcommands.ExitFailure
	}

	if c.logDB != "" {
		if err := c.recordMatch(e, duration); err != nil {
			log.Printf("play: -log-db: %v", err)
		}
	}
	return subcommands.ExitSuccess
}

// recordMatch persists the just-finished game to -log-db. It is best
// effort: a failure here never turns a completed game into a failed
// `play` invocation.
func (c *playCmd) recordMatch(e *engine.Engine, duration time.Duration) error {
	pos := e.Position()
	if pos == nil {
		return nil
	}
	day := c.matchDay
	if day == "" {
		day = time.Now().Format("2006-01-02")
	}
	opponentColor := box.Color('?')
	if box.OpponentColorIndex >= 0 {
		opponentColor = box.Color('1' + box.OpponentColorIndex)
	}

	repo, err := matchlog.Open(c.logDB)
	if err != nil {
		return err
	}
	defer repo.Close()

	game := matchlog.NewGame(day, int(time.Now().UnixNano()), time.Now(),
		e.Color(), opponentColor, pos.Turn(), duration, pos.GetScores())
	return repo.InsertGame(game)
}
