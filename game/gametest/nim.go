// Package gametest provides tiny deterministic games for exercising the searcher and the self-play harness.
package gametest

import (
	"fmt"
	"strconv"
	"strings"

	"mctschess/game"
)

// MaxTake is the largest number of stones a Nim move may remove.
const MaxTake = 2

// Take removes N stones from the pile.
type Take struct {
	N int
}

func (t Take) String() string {
	return "take" + strconv.Itoa(t.N)
}

// Nim is single-pile Nim: players alternately take 1 or 2 stones, whoever takes
// the last stone wins.
type Nim struct {
	Pile   int
	ToMove game.Player
}

func NewNim(pile int) Nim {
	return Nim{Pile: pile, ToMove: game.First}
}

func (n Nim) Player() game.Player {
	return n.ToMove
}

func (n Nim) LegalMoves() []game.Move {
	var moves []game.Move
	for i := 1; i <= MaxTake && i <= n.Pile; i++ {
		moves = append(moves, Take{N: i})
	}
	return moves
}

func (n Nim) Play(move game.Move) game.State {
	t, ok := move.(Take)
	if !ok || t.N < 1 || t.N > n.Pile || t.N > MaxTake {
		panic(fmt.Sprintf("illegal move %v with pile %d", move, n.Pile))
	}
	return Nim{Pile: n.Pile - t.N, ToMove: n.ToMove.Other()}
}

func (n Nim) IsTerminal() bool {
	return n.Pile == 0
}

func (n Nim) Outcome() game.Outcome {
	if n.Pile > 0 {
		return game.NoOutcome
	}
	// The player who took the last stone is not to move
	if n.ToMove == game.Second {
		return game.FirstPlayerWon
	}
	return game.SecondPlayerWon
}

func (n Nim) String() string {
	return fmt.Sprintf("%s (%s to move)", strings.Repeat("o", n.Pile), n.ToMove)
}

// EvaluatePile scores a Nim position as the size of its pile.
func EvaluatePile(s game.State) float64 {
	return float64(s.(Nim).Pile)
}

// Stuck is a non-terminal state without legal moves.
type Stuck struct {
	ToMove game.Player
}

func (s Stuck) Player() game.Player       { return s.ToMove }
func (s Stuck) LegalMoves() []game.Move   { return nil }
func (s Stuck) Play(game.Move) game.State { panic("no legal moves") }
func (s Stuck) IsTerminal() bool          { return false }
func (s Stuck) Outcome() game.Outcome     { return game.NoOutcome }
func (s Stuck) String() string            { return "stuck" }

// Constant returns an evaluation function that scores every state as score.
func Constant(score float64) game.Evaluate {
	return func(game.State) float64 {
		return score
	}
}
