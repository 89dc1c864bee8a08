package engine

import (
	"fmt"
	"io"

	"mctschess/experiments/metrics"
	"mctschess/game"

	"github.com/muesli/termenv"
)

// Progress renders self-play on a terminal. A nil *Progress renders nothing.
type Progress struct {
	out     *termenv.Output
	verbose bool // Render the board after every ply
}

// NewProgress writes to w, coloured when w is a terminal that supports it.
func NewProgress(w io.Writer, verbose bool, opts ...termenv.OutputOption) *Progress {
	return &Progress{out: termenv.NewOutput(w, opts...), verbose: verbose}
}

func (p *Progress) Ply(ply int, player game.Player, move game.Move, state game.State) {
	if p == nil || !p.verbose {
		return
	}
	header := p.out.String(fmt.Sprintf("ply %d: %s plays %s", ply, player, move)).Bold()
	fmt.Fprintf(p.out, "%s\n%s\n", header, state)
}

// Game prints the summary line of a finished game.
func (p *Progress) Game(id, total int, m metrics.GameMetric) {
	if p == nil {
		return
	}
	result := p.out.String(string(m.Result)).Foreground(p.out.Color(resultColor(m.Result))).Bold()
	fmt.Fprintf(p.out, "game %d/%d: %s in %d moves (%.1fs)\n", id, total, result, m.TotalMoves, m.Duration.Seconds())
}

func resultColor(result game.Outcome) string {
	switch result {
	case game.FirstPlayerWon, game.SecondPlayerWon:
		return "2"
	case game.Draw:
		return "3"
	default:
		return "8"
	}
}
