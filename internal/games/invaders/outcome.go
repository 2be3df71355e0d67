package invaders

// Outcome is the terminal result of a match.
type Outcome struct {
	Won bool
}

// OutcomeDetector decides win or loss during Playing and raises it once per match.
type OutcomeDetector struct {
	lossLine float64
	raised   bool
	outcome  Outcome
}

// NewOutcomeDetector creates a detector that reports a loss for any alien at
// or below lossLine.
func NewOutcomeDetector(lossLine float64) *OutcomeDetector {
	return &OutcomeDetector{lossLine: lossLine}
}

// Check inspects the swarm. It returns the outcome and true only on the tick
// the outcome is first raised; every later call returns false.
func (d *OutcomeDetector) Check(aliens []*Entity) (Outcome, bool) {
	if d.raised {
		return d.outcome, false
	}
	if len(aliens) == 0 {
		return d.raise(Outcome{Won: true})
	}
	for _, a := range aliens {
		if a.Pos.Y <= d.lossLine {
			return d.raise(Outcome{Won: false})
		}
	}
	return Outcome{}, false
}

func (d *OutcomeDetector) raise(o Outcome) (Outcome, bool) {
	d.raised = true
	d.outcome = o
	return o, true
}
