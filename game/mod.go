package game

// Player identifies a side of a two-player game. First moves from the initial position.
type Player int

const (
	First Player = iota
	Second
)

func (p Player) Other() Player {
	if p == First {
		return Second
	}
	return First
}

func (p Player) String() string {
	if p == First {
		return "first"
	}
	return "second"
}

// Outcome is a game result relative to the first player, in the game's canonical notation.
type Outcome string

const (
	NoOutcome       Outcome = "*"
	FirstPlayerWon  Outcome = "1-0"
	SecondPlayerWon Outcome = "0-1"
	Draw            Outcome = "1/2-1/2"
)

type Move interface {
	String() string
}

// State should be immutable - operations on State always return a new copy
type State interface {
	Player() Player
	// LegalMoves enumerates moves in a deterministic order
	LegalMoves() []Move
	Play(Move) State
	IsTerminal() bool
	Outcome() Outcome
	// String renders the position for humans
	String() string
}

// Evaluates a non-terminal state from the first player's perspective: the
// larger the score, the better the position is for the first player.
type Evaluate func(State) float64
