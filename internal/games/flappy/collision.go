package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Reason explains why a run ended.
type Reason int

const (
	ReasonNone    Reason = iota
	ReasonPipe           // Hit an obstacle
	ReasonCeiling        // Left the top of the play field
	ReasonGround         // Reached the ground line
)

func (r Reason) String() string {
	switch r {
	case ReasonPipe:
		return "pipe"
	case ReasonCeiling:
		return "ceiling"
	case ReasonGround:
		return "ground"
	default:
		return "none"
	}
}

// Outcome is the single per-tick verdict used by the state machine.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeScored
	OutcomeGameOver
)

// Evaluation holds the independent geometric facts found in one tick.
type Evaluation struct {
	Scored bool   // The actor cleared the earliest unpassed pair
	Reason Reason // Why the run ends, ReasonNone if it does not
}

// Collided reports whether the run ends this tick.
func (e Evaluation) Collided() bool {
	return e.Reason != ReasonNone
}

// Outcome folds the evaluation into one verdict; game over wins over scoring.
func (e Evaluation) Outcome() Outcome {
	switch {
	case e.Collided():
		return OutcomeGameOver
	case e.Scored:
		return OutcomeScored
	default:
		return OutcomeNone
	}
}

// Evaluate checks the actor against the obstacles and the field bounds.
//
// Scoring pops the front of the obstacle queue when the actor's left edge is
// strictly past that pair's right edge; the pair keeps scrolling. At most one
// pair is scored per call. A pair already retired from the active set is
// off-screen to the left and therefore passed.
func Evaluate(actor core.Rect, obstacles *ObstacleManager, groundY int) Evaluation {
	var ev Evaluation

	if id, ok := obstacles.NextUnpassed(); ok {
		pair, active := obstacles.Pair(id)
		if !active || actor.Left() > pair.Right() {
			obstacles.PopUnpassed()
			ev.Scored = true
		}
	}

	switch {
	case obstacles.Collides(actor):
		ev.Reason = ReasonPipe
	case actor.Top() < 0:
		ev.Reason = ReasonCeiling
	case actor.Bottom() >= groundY:
		ev.Reason = ReasonGround
	}

	return ev
}
