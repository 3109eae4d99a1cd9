package checkers

import "fmt"

type Move struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

func NewMove(from, to Position) Move {
	return Move{From: from, To: to}
}

func (m Move) String() string {
	return fmt.Sprintf("%v -> %v", m.From, m.To)
}

func (m Move) IsCapture() bool {
	return abs(m.To.X-m.From.X) == 2
}

type OutcomeKind int8

const (
	Invalid OutcomeKind = iota
	Simple
	Capture
)

func (k OutcomeKind) String() string {
	switch k {
	case Simple:
		return "Simple"
	case Capture:
		return "Capture"
	}
	return "Invalid"
}

// MoveOutcome is the result of validating a move. Removed is set only for Capture.
type MoveOutcome struct {
	Kind    OutcomeKind
	Removed Position
}

var InvalidOutcome = MoveOutcome{Kind: Invalid, Removed: NoPosition}

func SimpleOutcome() MoveOutcome {
	return MoveOutcome{Kind: Simple, Removed: NoPosition}
}

func CaptureOutcome(removed Position) MoveOutcome {
	return MoveOutcome{Kind: Capture, Removed: removed}
}

func (o MoveOutcome) Valid() bool {
	return o.Kind != Invalid
}

func (o MoveOutcome) String() string {
	if o.Kind == Capture {
		return fmt.Sprintf("Capture %v", o.Removed)
	}
	return o.Kind.String()
}

// TurnContext carries the capture chain state of the turn in progress.
type TurnContext struct {
	Chained  bool     `json:"chained"`
	LastFrom Position `json:"lastFrom"`
	LastTo   Position `json:"lastTo"`
}

func NewTurnContext() TurnContext {
	return TurnContext{LastFrom: NoPosition, LastTo: NoPosition}
}

func ChainContext(m Move) TurnContext {
	return TurnContext{Chained: true, LastFrom: m.From, LastTo: m.To}
}
