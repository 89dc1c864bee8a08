package experiments

import (
	"fmt"
	"os"
	"time"

	"mctschess/config"
	"mctschess/engine"
	"mctschess/experiments/metrics"
	"mctschess/game"
	"mctschess/searcher"
	"mctschess/searcher/agent"
	"mctschess/store"

	"github.com/rs/zerolog/log"
)

type Option func(s *SelfPlay)

// SelfPlay plays a batch of games between two identically configured agents.
type SelfPlay struct {
	cfg      config.Config
	writer   *metrics.Writer
	initial  game.State
	evaluate game.Evaluate
	progress *engine.Progress
	index    *store.Repository
	batch    string
}

// WithInitialState starts every game from state instead of the standard chess position.
func WithInitialState(state game.State) Option {
	return func(s *SelfPlay) {
		s.initial = state
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *SelfPlay) {
		s.evaluate = evaluate
	}
}

func WithProgress(p *engine.Progress) Option {
	return func(s *SelfPlay) {
		s.progress = p
	}
}

// WithIndex stores every finished game in repo under batch.
func WithIndex(repo *store.Repository, batch string) Option {
	return func(s *SelfPlay) {
		s.index = repo
		s.batch = batch
	}
}

func NewSelfPlay(cfg config.Config, writer *metrics.Writer, options ...Option) *SelfPlay {
	if writer == nil {
		panic("need a writer for game records")
	}
	s := &SelfPlay{
		cfg:      cfg,
		writer:   writer,
		initial:  game.NewChessState(),
		evaluate: game.EvaluateMaterial,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// RunSelfPlay plays cfg.Games games and writes the report to cfg.Output. The
// report is created before the first game so an unwritable path fails fast.
func RunSelfPlay(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	initial, err := game.FromFEN(cfg.FEN)
	if err != nil {
		return err
	}

	writer, err := metrics.NewWriter(cfg.Output, cfg.MovesOutput)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	defer writer.Close()

	options := []Option{
		WithInitialState(initial),
		WithProgress(engine.NewProgress(os.Stdout, cfg.Verbose)),
	}
	if cfg.Index != "" {
		repo, err := store.Open(cfg.Index)
		if err != nil {
			return fmt.Errorf("failed to open game index: %w", err)
		}
		defer repo.Close()
		options = append(options, WithIndex(repo, time.Now().UTC().Format(time.RFC3339)))
	}

	if _, err := NewSelfPlay(cfg, writer, options...).Run(); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close experiment writer: %w", err)
	}
	return nil
}

// Run plays the batch, recording every game as soon as it ends. It returns
// the records written so far when a sink fails.
func (s *SelfPlay) Run() ([]metrics.GameRecord, error) {
	log.Info().Msgf("starting self-play of %d games with %d iterations and depth %d...", s.cfg.Games, s.cfg.Iterations, s.cfg.Depth)

	records := []metrics.GameRecord{}
	for i := 1; i <= s.cfg.Games; i++ {
		log.Info().Msgf("starting game %d of %d...", i, s.cfg.Games)

		gameMetric, moveMetrics := s.runGame(i)
		record := metrics.GameRecord{ID: i, GameMetric: gameMetric}
		if err := s.save(record, moveMetrics); err != nil {
			return records, err
		}
		records = append(records, record)

		s.progress.Game(i, s.cfg.Games, gameMetric)
		log.Info().Msgf("completed game %d with result: %s", i, gameMetric.Result)
	}

	counts := Summarize(records)
	log.Info().Msgf("completed self-play: %d first player wins, %d second player wins, %d draws, %d unfinished",
		counts[game.FirstPlayerWon], counts[game.SecondPlayerWon], counts[game.Draw], counts[game.NoOutcome])

	if s.index != nil {
		summary, err := s.index.Summary(s.batch)
		if err != nil {
			return records, fmt.Errorf("failed to summarize game index: %w", err)
		}
		for _, c := range summary {
			log.Info().Msgf("indexed %d games with result %s, %.1f moves on average", c.Games, c.Result, c.AvgMoves)
		}
	}
	return records, nil
}

func (s *SelfPlay) runGame(id int) (metrics.GameMetric, []metrics.MoveMetric) {
	e := engine.LocalEngine(
		s.initial,
		agent.NewEvaluationAgent(s.createMCTS(id, game.First)),
		agent.NewEvaluationAgent(s.createMCTS(id, game.Second)),
		engine.WithMaxPlies(s.cfg.MaxPlies),
		engine.WithProgress(s.progress),
	)
	return e.Run()
}

// createMCTS derives a distinct seed for every game and player from the
// configured one, so a seeded batch is reproducible.
func (s *SelfPlay) createMCTS(id int, player game.Player) *searcher.MCTS {
	options := []searcher.Option{
		searcher.WithEpisodes(s.cfg.Iterations),
		searcher.WithCutoff(s.cfg.Depth),
		searcher.WithMetrics(),
	}
	if s.cfg.Seed != 0 {
		options = append(options, searcher.WithSeed(s.cfg.Seed+uint64(2*id+int(player))))
	}
	return searcher.NewMCTS(s.evaluate, options...)
}

func (s *SelfPlay) save(record metrics.GameRecord, moveMetrics []metrics.MoveMetric) error {
	if err := s.writer.WriteGameRecord(record); err != nil {
		return fmt.Errorf("failed to write game record: %w", err)
	}

	moveRecords := make([]metrics.MoveRecord, len(moveMetrics))
	for i, mm := range moveMetrics {
		moveRecords[i] = metrics.MoveRecord{Game: record.ID, MoveMetric: mm}
	}
	if err := s.writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}

	if s.index == nil {
		return nil
	}
	err := s.index.InsertGame(&store.Game{
		Batch:      s.batch,
		ID:         record.ID,
		Timestamp:  record.EndTime,
		Result:     string(record.Result),
		Winner:     winner(record.Result),
		Moves:      record.TotalMoves,
		Seconds:    record.Duration.Seconds(),
		Iterations: s.cfg.Iterations,
		Depth:      s.cfg.Depth,
	})
	if err != nil {
		return fmt.Errorf("failed to index game: %w", err)
	}
	return nil
}

func winner(result game.Outcome) string {
	switch result {
	case game.FirstPlayerWon:
		return game.First.String()
	case game.SecondPlayerWon:
		return game.Second.String()
	default:
		return ""
	}
}

// Summarize counts the games of each result.
func Summarize(records []metrics.GameRecord) map[game.Outcome]int {
	counts := make(map[game.Outcome]int)
	for _, r := range records {
		counts[r.Result]++
	}
	return counts
}
