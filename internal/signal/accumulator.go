package signal

import (
	"fmt"

	"github.com/nao1215/aioready/internal/model"
)

// accumulator holds the signed running score and evidence of one
// detector invocation. It is discarded once the Signal is built.
type accumulator struct {
	score    int
	evidence []string
}

func newAccumulator(prior int) *accumulator {
	return &accumulator{score: prior}
}

// add applies points and records the evidence line.
func (a *accumulator) add(points int, format string, args ...any) {
	a.score += points
	a.note(format, args...)
}

// note records evidence without changing the score.
func (a *accumulator) note(format string, args ...any) {
	if len(args) == 0 {
		a.evidence = append(a.evidence, format)
		return
	}
	a.evidence = append(a.evidence, fmt.Sprintf(format, args...))
}

// floor raises a negative running score to zero.
func (a *accumulator) floor() {
	if a.score < model.MinScore {
		a.score = model.MinScore
	}
}

// signal builds the clamped Signal.
func (a *accumulator) signal(c model.Category) model.Signal {
	return model.NewSignal(c, a.score, a.evidence)
}
