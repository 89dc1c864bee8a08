package game

import "github.com/notnil/chess"

// Standard relative piece values, the king is excluded
var materialValues = map[chess.PieceType]float64{
	chess.Pawn:   1,
	chess.Knight: 3,
	chess.Bishop: 3,
	chess.Rook:   5,
	chess.Queen:  9,
}

// EvaluateMaterial sums the value of each piece kind times the difference
// between white's and black's piece counts.
func EvaluateMaterial(s State) float64 {
	cs, ok := s.(*ChessState)
	if !ok {
		panic("unexpected state type")
	}

	score := 0.0
	for _, piece := range cs.game.Position().Board().SquareMap() {
		value := materialValues[piece.Type()]
		if piece.Color() == chess.White {
			score += value
		} else {
			score -= value
		}
	}
	return score
}
