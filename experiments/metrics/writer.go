package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

type GameRecord struct {
	ID int
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

var (
	gameHeader = []string{"game", "result", "moves", "time(sec)"}
	moveHeader = []string{"game", "step", "player", "move", "duration", "episodes", "nodes", "full_playouts", "cutoff_playouts", "truncated_playouts", "is_fallback"}
)

// Writer streams game records, and optionally move records, to CSV files.
// Every record is flushed as soon as it is written.
type Writer struct {
	games *sheet
	moves *sheet
}

type sheet struct {
	f *os.File
	w *csv.Writer
}

// NewWriter creates the report at gamesPath and writes its header. Move records
// are written to movesPath unless it is empty.
func NewWriter(gamesPath, movesPath string) (*Writer, error) {
	games, err := newSheet(gamesPath, gameHeader)
	if err != nil {
		return nil, fmt.Errorf("failed to create game records file: %w", err)
	}

	w := &Writer{games: games}
	if movesPath != "" {
		w.moves, err = newSheet(movesPath, moveHeader)
		if err != nil {
			games.f.Close()
			return nil, fmt.Errorf("failed to create move records file: %w", err)
		}
	}
	return w, nil
}

func newSheet(path string, header []string) (*sheet, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	s := &sheet{f: f, w: csv.NewWriter(f)}
	if err := s.write(header); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	return s, nil
}

func (s *sheet) write(rows ...[]string) error {
	for _, row := range rows {
		if err := s.w.Write(row); err != nil {
			return err
		}
	}
	s.w.Flush()
	return s.w.Error()
}

func (w *Writer) WriteGameRecord(record GameRecord) error {
	row := []string{
		strconv.Itoa(record.ID),
		string(record.Result),
		strconv.Itoa(record.TotalMoves),
		strconv.FormatFloat(record.Duration.Seconds(), 'f', 1, 64),
	}
	if err := w.games.write(row); err != nil {
		return fmt.Errorf("failed to write game record row: %w", err)
	}
	return nil
}

// WriteMoveRecords is a no-op when the writer has no move records file.
func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	if w.moves == nil {
		return nil
	}

	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player.String(),
			record.Move,
			record.Duration.String(),
			strconv.Itoa(record.Episodes),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.FullPlayouts),
			strconv.Itoa(record.CutoffPlayouts),
			strconv.Itoa(record.TruncatedPlayouts),
			strconv.FormatBool(record.IsFallback),
		})
	}
	if err := w.moves.write(rows...); err != nil {
		return fmt.Errorf("failed to write move record rows: %w", err)
	}
	return nil
}

func (w *Writer) Close() error {
	var err error
	for _, s := range []*sheet{w.games, w.moves} {
		if s == nil {
			continue
		}
		if e := s.f.Close(); e != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", s.f.Name(), e)
		}
	}
	return err
}
