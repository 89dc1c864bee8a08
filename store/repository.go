// Package store indexes finished self-play games in a SQLite database.
package store

import (
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	_ "github.com/mattn/go-sqlite3" // repository assumes sqlite
)

type Repository struct {
	db *sqlx.DB
}

type Game struct {
	Batch      string    `db:"batch"` // Self-play run the game belongs to
	ID         int       `db:"id"`
	Timestamp  time.Time `db:"time"`
	Result     string    `db:"result"`
	Winner     string    `db:"winner"` // "first", "second" or empty
	Moves      int       `db:"moves"`
	Seconds    float64   `db:"seconds"`
	Iterations int       `db:"iterations"`
	Depth      int       `db:"depth"`
}

// ResultCount aggregates the games of a batch sharing a result.
type ResultCount struct {
	Result   string  `db:"result"`
	Games    int     `db:"games"`
	AvgMoves float64 `db:"avg_moves"`
}

func Open(path string) (*Repository, error) {
	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	if _, err := db.Exec(createGameTable); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "create game table")
	}
	return &Repository{db: db}, nil
}

func (r *Repository) InsertGame(g *Game) error {
	_, err := r.db.NamedExec(insertStmt, g)
	return errors.Wrapf(err, "insert game %d", g.ID)
}

// InsertGames stores gs in a single transaction.
func (r *Repository) InsertGames(gs []*Game) error {
	txn, err := r.db.Beginx()
	if err != nil {
		return errors.Wrap(err, "begin")
	}
	defer txn.Rollback()
	for _, g := range gs {
		if _, err := txn.NamedExec(insertStmt, g); err != nil {
			return errors.Wrapf(err, "insert game %d", g.ID)
		}
	}
	return errors.Wrap(txn.Commit(), "commit")
}

// Games returns the games of batch ordered by ID.
func (r *Repository) Games(batch string) ([]Game, error) {
	var games []Game
	if err := r.db.Select(&games, selectGames, batch); err != nil {
		return nil, errors.Wrapf(err, "select games of %s", batch)
	}
	return games, nil
}

// Batches lists the stored batches in order.
func (r *Repository) Batches() ([]string, error) {
	var batches []string
	if err := r.db.Select(&batches, selectBatches); err != nil {
		return nil, errors.Wrap(err, "select batches")
	}
	return batches, nil
}

func (r *Repository) Summary(batch string) ([]ResultCount, error) {
	var counts []ResultCount
	if err := r.db.Select(&counts, selectSummary, batch); err != nil {
		return nil, errors.Wrapf(err, "summarize %s", batch)
	}
	return counts, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}
