// Package engine implements the stdin/stdout move protocol a running
// match driver speaks to a single bot process: one color byte and a
// starting tile on setup, then one combined chance+opponent-move
// token per turn, answered with this side's placement.
package engine

import (
	"bufio"
	"fmt"
	"io"
	"log"

	"github.com/elkasimi/codecup-box/box"
	"github.com/elkasimi/codecup-box/mcts"
)

// Config configures a new Engine's search.
type Config struct {
	// Seed seeds the search's fast RNG. Zero picks rng.DefaultSeed.
	Seed uint32
	// TimeRatio is forwarded to mcts.Config.TimeRatio.
	TimeRatio float64
	// Logger receives both the protocol trace (the tokens read off
	// stdin, mirroring original_source/src/main.cc's cerr logging)
	// and the search diagnostics. Defaults to a *log.Logger over
	// io.Discard.
	Logger *log.Logger
}

// Engine drives one game from stdin to stdout.
type Engine struct {
	cfg Config
	in  *bufio.Scanner
	out io.Writer

	searcher *mcts.Searcher
	pos      *box.Position
	myColor  box.Color

	totalDeltaEvals [box.MaxColors]float64
}

// New returns an Engine reading tokens from in and writing moves to out.
func New(in io.Reader, out io.Writer, cfg Config) *Engine {
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard, "", 0)
	}
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	return &Engine{cfg: cfg, in: scanner, out: out}
}

// Position returns the current game state, valid once Run has read
// the starting tile. Callers that persist match history (matchlog)
// read final scores and move count from this once Run returns.
func (e *Engine) Position() *box.Position { return e.pos }

// Color returns the color this engine played, set once Run has read
// the color byte off stdin.
func (e *Engine) Color() box.Color { return e.myColor }

func (e *Engine) readToken() (string, bool) {
	if !e.in.Scan() {
		return "", false
	}
	return e.in.Text(), true
}

// Run plays one full game: it blocks until the opponent sends "Quit",
// stdin is closed, or a malformed token is encountered.
func (e *Engine) Run() error {
	colorTok, ok := e.readToken()
	if !ok {
		return io.ErrUnexpectedEOF
	}
	e.myColor = box.Color(colorTok[0])
	e.cfg.Logger.Printf("my-color=%c", e.myColor)
	box.InitWeights(e.myColor)
	e.searcher = mcts.NewSearcher(mcts.Config{
		Color:     e.myColor,
		Seed:      e.cfg.Seed,
		TimeRatio: e.cfg.TimeRatio,
		Logger:    e.cfg.Logger,
	})

	startTok, ok := e.readToken()
	if !ok {
		return io.ErrUnexpectedEOF
	}
	e.cfg.Logger.Printf("starting-tile=%s", startTok)
	pos, err := box.New(startTok)
	if err != nil {
		return fmt.Errorf("engine: starting tile %q: %w", startTok, err)
	}
	e.pos = pos

	for {
		tok, ok := e.readToken()
		if !ok {
			return nil
		}
		if tok == "Quit" {
			return nil
		}
		if tok != "Start" {
			e.cfg.Logger.Println(tok)
			if err := e.applyOpponentMove(tok); err != nil {
				return err
			}
		}

		chanceTok, ok := e.readToken()
		if !ok {
			return io.ErrUnexpectedEOF
		}
		e.cfg.Logger.Println(chanceTok)
		e.pos.DoChanceMove(box.ChanceMove(chanceTok))

		myMove, found := e.searcher.GetBestMove(e.pos)
		if !found {
			// No legal move exists: end of game. Write nothing and keep
			// reading, the same way a "Start" turn with nothing to apply
			// falls straight through to here — the match driver is
			// expected to send "Quit" next.
			e.cfg.Logger.Println("no legal move; waiting for Quit")
			continue
		}
		e.pos.DoMove(myMove)
		fmt.Fprintln(e.out, myMove.Show())
	}
}

// applyOpponentMove deals the tile the opponent's move consumed, rolls
// the learned per-color weights forward from how much that move
// actually helped its color over ours, then applies the placement.
func (e *Engine) applyOpponentMove(tok string) error {
	chanceMove, opponentMove, err := box.ParseMoves(tok)
	if err != nil {
		return fmt.Errorf("engine: opponent move %q: %w", tok, err)
	}
	e.pos.DoChanceMove(chanceMove)
	deltaEvals := e.pos.GetDeltaEvalsMove(opponentMove)
	for i := range e.totalDeltaEvals {
		e.totalDeltaEvals[i] += deltaEvals[i]
	}
	box.UpdateWeights(e.totalDeltaEvals, e.myColor)
	e.pos.DoMove(opponentMove)
	return nil
}
