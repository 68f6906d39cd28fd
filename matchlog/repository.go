// Package matchlog persists completed matches for offline review: one
// row per finished game, queryable by day, by color, or by outcome.
// It is a different concern from the search's own diagnostics logging
// (package mcts) — this is structured history, not a running trace.
package matchlog

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	_ "github.com/go-sql-driver/mysql" // Repository assumes mysql or sqlite
	_ "github.com/mattn/go-sqlite3"

	"github.com/elkasimi/codecup-box/box"
)

// Repository stores finished-game records in a SQL database.
type Repository struct {
	db     *sqlx.DB
	insert *sqlx.NamedStmt
}

// Game is one finished match, scored the way get_pessimist_score
// compares a color against the best of the other five rather than
// assuming a fixed two-player split.
type Game struct {
	Day           string    `db:"day"`
	ID            int       `db:"id"`
	Time          time.Time `db:"time"`
	EngineColor   string    `db:"engine_color"`
	OpponentColor string    `db:"opponent_color"`
	Moves         int       `db:"moves"`
	DurationMS    int64     `db:"duration_ms"`
	Score1        int       `db:"score1"`
	Score2        int       `db:"score2"`
	Score3        int       `db:"score3"`
	Score4        int       `db:"score4"`
	Score5        int       `db:"score5"`
	Score6        int       `db:"score6"`
	Winner        string    `db:"winner"`
	EngineWon     bool      `db:"engine_won"`
}

// NewGame builds a Game row from the final per-color scores, picking
// the highest-scoring color as the winner (ties keep the lower color
// index, the same tie-break order Evaluate iterates colors in).
func NewGame(day string, id int, when time.Time, engineColor, opponentColor box.Color, moves int, duration time.Duration, scores [box.MaxColors]int) *Game {
	winner := 0
	for i := 1; i < box.MaxColors; i++ {
		if scores[i] > scores[winner] {
			winner = i
		}
	}
	winnerColor := string([]byte{byte('1' + winner)})
	return &Game{
		Day:           day,
		ID:            id,
		Time:          when,
		EngineColor:   string(engineColor),
		OpponentColor: string(opponentColor),
		Moves:         moves,
		DurationMS:    duration.Milliseconds(),
		Score1:        scores[0],
		Score2:        scores[1],
		Score3:        scores[2],
		Score4:        scores[3],
		Score5:        scores[4],
		Score6:        scores[5],
		Winner:        winnerColor,
		EngineWon:     winnerColor == string(engineColor),
	}
}

// Open opens (creating if needed) a sqlite3 match log at path.
func Open(path string) (*Repository, error) {
	return open("sqlite3", path)
}

// OpenMySQL opens a match log against a MySQL/MariaDB server at dsn,
// an alternate backend for archiving matches from many tournament
// runners into one central database instead of per-machine files.
func OpenMySQL(dsn string) (*Repository, error) {
	return open("mysql", dsn)
}

func open(driver, dsn string) (*Repository, error) {
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(createGamesTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("matchlog: create games table: %w", err)
	}
	if _, err := db.Exec(createColorGamesView); err != nil {
		db.Close()
		return nil, fmt.Errorf("matchlog: create color_games view: %w", err)
	}

	repo := &Repository{db: db}
	repo.insert, err = db.PrepareNamed(insertGameStmt)
	if err != nil {
		repo.Close()
		return nil, fmt.Errorf("matchlog: prepare insert: %w", err)
	}
	return repo, nil
}

// InsertGame records one finished match.
func (r *Repository) InsertGame(g *Game) error {
	_, err := r.insert.Exec(g)
	return err
}

// InsertGames records several finished matches in one transaction,
// rolling back entirely if any row fails.
func (r *Repository) InsertGames(gs []*Game) error {
	txn, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer txn.Rollback()

	stmt := txn.NamedStmt(r.insert)
	for _, g := range gs {
		if _, err := stmt.Exec(g); err != nil {
			return err
		}
	}
	return txn.Commit()
}

// Games returns every recorded match for the given day, oldest first.
func (r *Repository) Games(day string) ([]*Game, error) {
	var games []*Game
	err := r.db.Select(&games, `SELECT * FROM games WHERE day = ? ORDER BY id`, day)
	return games, err
}

func (r *Repository) Close() {
	r.db.Close()
}
