package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"mctschess/config"
	"mctschess/experiments/metrics"
	"mctschess/game"
	"mctschess/game/gametest"
	"mctschess/store"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func smallConfig(t *testing.T) config.Config {
	cfg := config.Default()
	cfg.Games = 2
	cfg.Iterations = 3
	cfg.Depth = 2
	cfg.MaxPlies = 20
	cfg.Seed = 17
	cfg.Output = filepath.Join(t.TempDir(), "results.csv")
	return cfg
}

func TestRunSelfPlay(t *testing.T) {
	t.Run("writing one row per game", func(t *testing.T) {
		cfg := smallConfig(t)
		cfg.MovesOutput = filepath.Join(t.TempDir(), "moves.csv")

		require.NoError(t, RunSelfPlay(cfg))

		rows := readCSV(t, cfg.Output)
		require.Len(t, rows, 3)
		require.Equal(t, []string{"game", "result", "moves", "time(sec)"}, rows[0])
		for i, row := range rows[1:] {
			require.Equal(t, strconv.Itoa(i+1), row[0])
			require.Contains(t, []string{"1-0", "0-1", "1/2-1/2", "*"}, row[1])
			moves, err := strconv.Atoi(row[2])
			require.NoError(t, err)
			require.LessOrEqual(t, moves, cfg.MaxPlies)
			require.Regexp(t, `^\d+\.\d$`, row[3], "Time should have one decimal")
		}

		moveRows := readCSV(t, cfg.MovesOutput)
		total := 0
		for _, row := range rows[1:] {
			n, _ := strconv.Atoi(row[2])
			total += n
		}
		require.Len(t, moveRows, total+1, "One move row per ply plus the header")
	})

	t.Run("starting from a given position", func(t *testing.T) {
		cfg := smallConfig(t)
		cfg.Games = 1
		cfg.FEN = "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1"
		cfg.Iterations = 40
		cfg.Depth = 1

		require.NoError(t, RunSelfPlay(cfg))

		require.Equal(t, []string{"1", "1-0", "1"}, readCSV(t, cfg.Output)[1][:3], "White should mate at once")
	})

	t.Run("indexing games", func(t *testing.T) {
		cfg := smallConfig(t)
		cfg.Index = filepath.Join(t.TempDir(), "games.db")

		require.NoError(t, RunSelfPlay(cfg))

		repo, err := store.Open(cfg.Index)
		require.NoError(t, err)
		defer repo.Close()
		batches, err := repo.Batches()
		require.NoError(t, err)
		require.Len(t, batches, 1)
		games, err := repo.Games(batches[0])
		require.NoError(t, err)
		require.Len(t, games, 2)
		for i, row := range readCSV(t, cfg.Output)[1:] {
			require.Equal(t, row[1], games[i].Result)
			require.Equal(t, row[2], strconv.Itoa(games[i].Moves))
		}
	})

	t.Run("failing on an unwritable report", func(t *testing.T) {
		dir := t.TempDir()
		blocker := filepath.Join(dir, "file")
		require.NoError(t, os.WriteFile(blocker, nil, 0644))
		cfg := smallConfig(t)
		cfg.Output = filepath.Join(blocker, "results.csv")

		require.Error(t, RunSelfPlay(cfg))
	})

	t.Run("failing on an invalid config", func(t *testing.T) {
		cfg := smallConfig(t)
		cfg.Games = 0

		require.ErrorContains(t, RunSelfPlay(cfg), "invalid config")
		require.NoFileExists(t, cfg.Output, "Nothing should be written")
	})

	t.Run("failing on an invalid position", func(t *testing.T) {
		cfg := smallConfig(t)
		cfg.FEN = "not a position"

		require.Error(t, RunSelfPlay(cfg))
	})
}

func TestSelfPlay(t *testing.T) {
	newWriter := func(t *testing.T) *metrics.Writer {
		w, err := metrics.NewWriter(filepath.Join(t.TempDir(), "results.csv"), "")
		require.NoError(t, err)
		t.Cleanup(func() { w.Close() })
		return w
	}
	nim := []Option{WithInitialState(gametest.NewNim(9)), WithEvaluationFn(gametest.EvaluatePile)}

	t.Run("playing a batch of Nim", func(t *testing.T) {
		cfg := config.Default()
		cfg.Games = 4
		cfg.Iterations = 20

		records, err := NewSelfPlay(cfg, newWriter(t), nim...).Run()

		require.NoError(t, err)
		require.Len(t, records, 4)
		for i, r := range records {
			require.Equal(t, i+1, r.ID)
			require.Contains(t, []game.Outcome{game.FirstPlayerWon, game.SecondPlayerWon}, r.Result)
			require.GreaterOrEqual(t, r.TotalMoves, 5)
			require.LessOrEqual(t, r.TotalMoves, 9)
		}
	})

	t.Run("reproducing a seeded batch", func(t *testing.T) {
		cfg := config.Default()
		cfg.Games = 3
		cfg.Iterations = 5
		cfg.Seed = 99

		a, err := NewSelfPlay(cfg, newWriter(t), nim...).Run()
		require.NoError(t, err)
		b, err := NewSelfPlay(cfg, newWriter(t), nim...).Run()
		require.NoError(t, err)

		ignoreTimes := cmpopts.IgnoreFields(metrics.GameMetric{}, "StartTime", "EndTime", "Duration")
		if diff := cmp.Diff(a, b, ignoreTimes); diff != "" {
			t.Errorf("seeded batches differ (-first +second):\n%s", diff)
		}
	})

	t.Run("cutting off long games", func(t *testing.T) {
		cfg := config.Default()
		cfg.Games = 2
		cfg.Iterations = 2
		cfg.MaxPlies = 3

		records, err := NewSelfPlay(cfg, newWriter(t), WithInitialState(gametest.NewNim(50)), WithEvaluationFn(gametest.EvaluatePile)).Run()

		require.NoError(t, err)
		require.Equal(t, map[game.Outcome]int{game.NoOutcome: 2}, Summarize(records))
		for _, r := range records {
			require.Equal(t, 3, r.TotalMoves)
		}
	})

	t.Run("indexing every game", func(t *testing.T) {
		repo, err := store.Open(filepath.Join(t.TempDir(), "games.db"))
		require.NoError(t, err)
		defer repo.Close()
		cfg := config.Default()
		cfg.Games = 3
		cfg.Iterations = 10
		cfg.Depth = 4

		records, err := NewSelfPlay(cfg, newWriter(t), append(nim, WithIndex(repo, "batch-1"))...).Run()
		require.NoError(t, err)

		games, err := repo.Games("batch-1")
		require.NoError(t, err)
		require.Len(t, games, 3)
		for i, g := range games {
			require.Equal(t, records[i].ID, g.ID)
			require.Equal(t, string(records[i].Result), g.Result)
			require.Equal(t, winner(records[i].Result), g.Winner)
			require.Equal(t, records[i].TotalMoves, g.Moves)
			require.Equal(t, 10, g.Iterations)
			require.Equal(t, 4, g.Depth)
		}
	})

	t.Run("stopping when the report fails", func(t *testing.T) {
		w := newWriter(t)
		require.NoError(t, w.Close())
		cfg := config.Default()
		cfg.Games = 3
		cfg.Iterations = 2

		records, err := NewSelfPlay(cfg, w, nim...).Run()

		require.ErrorContains(t, err, "failed to write game record")
		require.Empty(t, records)
	})
}

func TestSummarize(t *testing.T) {
	records := []metrics.GameRecord{
		{ID: 1, GameMetric: metrics.GameMetric{Result: game.FirstPlayerWon}},
		{ID: 2, GameMetric: metrics.GameMetric{Result: game.Draw}},
		{ID: 3, GameMetric: metrics.GameMetric{Result: game.FirstPlayerWon}},
		{ID: 4, GameMetric: metrics.GameMetric{Result: game.NoOutcome}},
	}

	got := Summarize(records)

	want := map[game.Outcome]int{game.FirstPlayerWon: 2, game.Draw: 1, game.NoOutcome: 1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Summarize() mismatch (-want +got):\n%s", diff)
	}
	require.Empty(t, Summarize(nil))
}

func TestWinner(t *testing.T) {
	require.Equal(t, "first", winner(game.FirstPlayerWon))
	require.Equal(t, "second", winner(game.SecondPlayerWon))
	require.Empty(t, winner(game.Draw))
	require.Empty(t, winner(game.NoOutcome))
}
