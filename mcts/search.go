package mcts

import (
	"log"
	"os"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/elkasimi/codecup-box/box"
	"github.com/elkasimi/codecup-box/rng"
)

const (
	maxIterations      = 100_000
	maxExtraIterations = 10_000
)

// Config configures a Searcher.
type Config struct {
	// Color is the color this searcher plays.
	Color box.Color
	// Seed seeds the search's own fast RNG (chance draws and the
	// uniform-random playout policy); zero picks rng.DefaultSeed.
	Seed uint32
	// TimeRatio scales the whole-game time budget derived in
	// getMaxTime. 1.0 (the default) spends the full 30-second
	// game clock; smaller values are useful when running many
	// searches side by side during local testing.
	TimeRatio float64
	// Logger receives one line per search diagnostic. Defaults to
	// a *log.Logger writing to os.Stderr.
	Logger *log.Logger
}

// Searcher runs best-move search against a shared sequence of
// Positions, carrying transposition state, the learned dot-color
// prior, and cumulative time spent across calls to GetBestMove within
// one game.
type Searcher struct {
	color     box.Color
	timeRatio float64
	logger    *log.Logger
	printer   *message.Printer

	rng      *rng.Fast
	dotColor dotColorStats
	store    *StateStore
	maxLevel int

	totalTime time.Duration
}

// NewSearcher returns a Searcher ready to play color.
func NewSearcher(cfg Config) *Searcher {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(os.Stderr, "", 0)
	}
	ratio := cfg.TimeRatio
	if ratio == 0 {
		ratio = 1.0
	}
	return &Searcher{
		color:     cfg.Color,
		timeRatio: ratio,
		logger:    logger,
		printer:   message.NewPrinter(language.English),
		rng:       rng.NewFast(cfg.Seed),
		store:     NewStateStore(maxIterations),
	}
}

// getMaxTime returns how long this move may think: the remaining
// whole-game budget, divided across however many of our turns are
// likely still left (estimated from how many tiles normally fit on
// the board), so early moves don't starve the endgame.
func getMaxTime(pos *box.Position, totalTime time.Duration, ratio float64) time.Duration {
	const maxTotalTime = 30 * time.Second
	const timeMargin = 500 * time.Millisecond

	r := (31 - pos.Turn()) / 2
	if r < 2 {
		r = 2
	}
	budget := time.Duration(float64(maxTotalTime) * ratio)
	margin := time.Duration(float64(timeMargin) * ratio)
	remaining := budget - margin - totalTime
	if remaining < 0 {
		remaining = 0
	}
	return remaining / time.Duration(r)
}

// GetBestMove runs warmup, tree search, and a consistency-driven
// top-up, then returns the most-visited root action's placement (the
// prior's top-rated placement if no simulation completed in time). The
// bool return reports whether a move was found at all: at a terminal
// position (no legal placement remains) it is false and the
// PlayerMove is the zero value, the sentinel callers treat as
// end-of-game rather than a move to play.
func (s *Searcher) GetBestMove(pos *box.Position) (box.PlayerMove, bool) {
	pos.UpdateCandidates()
	if pos.EndGame() {
		return box.PlayerMove{}, false
	}

	s.dotColor.reset()
	s.maxLevel = 0
	s.store = NewStateStore(maxIterations)

	start := time.Now()
	maxTime := getMaxTime(pos, s.totalTime, s.timeRatio)
	s.logger.Printf("max-time=%.2f", maxTime.Seconds())

	for w := 0; w < 1000; w++ {
		newWarmup(pos, s.color).run(s)
	}
	s.logger.Printf("warmup took %.2f sec", time.Since(start).Seconds())

	iterations := 0
	for iterations < maxIterations && time.Since(start) < maxTime {
		newSimulation(s, pos, s.color).run()
		iterations++

		mostVisited := s.store.Get(pos).SelectMostVisited()
		if 2*mostVisited.Visits > maxIterations {
			break
		}
	}

	root := s.store.Get(pos)
	if root == nil {
		// No simulation fit in the time budget: create the root and let
		// progressive unpruning expand the prior's top-rated placement.
		root, _ = s.store.TryCreateState(pos)
		root.Select(pos, &s.dotColor)
	}
	extras := 0
	for extras < maxExtraIterations && time.Since(start) < maxTime && !root.Consistent(pos, &s.dotColor) {
		newSimulation(s, pos, s.color).run()
		iterations++
		extras++
	}
	s.logger.Printf("extra=%d", extras)

	possible := pos.GetPossibleTiles()
	s.logger.Printf("c=%d ps=%.2f t=%d", len(possible), pos.GetExpectedScore(s.color), pos.Turn())

	mostVisited := root.SelectMostVisited()
	pct := 100.0 * float64(mostVisited.Visits) / float64(root.Visits)
	s.logger.Print(s.printer.Sprintf("l=%d s=%d v=%.2f n=%d p=%.2f%%",
		s.maxLevel, iterations, mostVisited.Value, mostVisited.Visits, pct))
	if useDotColorStats {
		s.logger.Printf("b=%.2f", mostVisited.Bias)
	}
	s.logger.Printf("expanded-count=%d", len(root.Actions))
	s.logger.Printf("k=%.2f", mostVisited.K)

	dt := time.Since(start)
	s.totalTime += dt
	s.logger.Printf("impact = %v", pos.Impact(mostVisited.TileInfo))

	bestMove := mostVisited.TileInfo.Move()
	s.logger.Printf("best-move=%s", bestMove.Show())
	s.store.Clear()
	s.logger.Print(strings.Repeat("-", 12))
	speed := 0.001 * float64(iterations) / dt.Seconds()
	s.logger.Printf("dt=%.2f tt=%.2f s=%.2f Ki/s", dt.Seconds(), s.totalTime.Seconds(), speed)

	return bestMove, true
}
