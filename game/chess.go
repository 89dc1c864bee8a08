package game

import (
	"fmt"

	"mctschess/utils"

	"github.com/notnil/chess"
)

// ChessState adapts a chess game to State. White is the first player.
type ChessState struct {
	game *chess.Game
}

// NewChessState returns the standard starting position.
func NewChessState() *ChessState {
	return &ChessState{game: chess.NewGame()}
}

// FromFEN returns the position described by fen. An empty string yields the standard starting position.
func FromFEN(fen string) (*ChessState, error) {
	if fen == "" {
		return NewChessState(), nil
	}
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("failed to parse FEN %q: %w", fen, err)
	}
	return &ChessState{game: chess.NewGame(opt)}, nil
}

func (s *ChessState) Player() Player {
	if s.game.Position().Turn() == chess.White {
		return First
	}
	return Second
}

func (s *ChessState) LegalMoves() []Move {
	valid := s.game.ValidMoves()
	moves := make([]Move, len(valid))
	for i, m := range valid {
		moves[i] = m
	}
	return moves
}

func (s *ChessState) Play(move Move) State {
	m, ok := move.(*chess.Move)
	if !ok {
		panic(fmt.Sprintf("unexpected move type %T", move))
	}

	next := s.game.Clone()
	if err := next.Move(m); err != nil {
		panic(fmt.Sprintf("illegal move %s: %v", m, err))
	}
	return &ChessState{game: next}
}

// IsTerminal reports checkmate, stalemate and the automatic draws (fivefold
// repetition, seventy-five move rule, insufficient material).
func (s *ChessState) IsTerminal() bool {
	return s.game.Outcome() != chess.NoOutcome
}

func (s *ChessState) Outcome() Outcome {
	switch s.game.Outcome() {
	case chess.WhiteWon:
		return FirstPlayerWon
	case chess.BlackWon:
		return SecondPlayerWon
	case chess.Draw:
		return Draw
	default:
		return NoOutcome
	}
}

// Method names how the game ended, e.g. "Checkmate"; "NoMethod" while it is running.
func (s *ChessState) Method() string {
	return fmt.Sprint(s.game.Method())
}

// FEN returns the position in Forsyth-Edwards notation.
func (s *ChessState) FEN() string {
	return s.game.Position().String()
}

func (s *ChessState) String() string {
	return s.game.Position().Board().Draw()
}

// ParseMove finds the legal move written in UCI notation (e.g. "e2e4", "e7e8q").
func (s *ChessState) ParseMove(uci string) (Move, error) {
	moves := s.game.ValidMoves()
	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = m.String()
	}
	i := utils.FindIndex(names, uci)
	if i < 0 {
		return nil, fmt.Errorf("illegal move %q in position %s", uci, s.FEN())
	}
	return moves[i], nil
}
