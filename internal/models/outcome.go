package models

// OutcomeResult is the terminal result of a game
type OutcomeResult string

const (
	OutcomeWin  OutcomeResult = "win"
	OutcomeLose OutcomeResult = "lose"
	OutcomePush OutcomeResult = "push"
)

// Outcome is a terminal game result with the net ledger delta
type Outcome struct {
	// Result is win, lose or push
	Result OutcomeResult

	// Amount is the net amount credited on a win or debited on a loss
	Amount int64

	// Reason is a short machine-readable cause, e.g. bust or timeout
	Reason string
}

// Win returns a win outcome crediting amount
func Win(amount int64, reason string) *Outcome {
	return &Outcome{Result: OutcomeWin, Amount: amount, Reason: reason}
}

// Lose returns a loss outcome debiting amount
func Lose(amount int64, reason string) *Outcome {
	return &Outcome{Result: OutcomeLose, Amount: amount, Reason: reason}
}

// Push returns a push outcome with no balance change
func Push(reason string) *Outcome {
	return &Outcome{Result: OutcomePush, Reason: reason}
}

// Delta returns the signed balance change the outcome asks for
func (o *Outcome) Delta() int64 {
	switch o.Result {
	case OutcomeWin:
		return o.Amount
	case OutcomeLose:
		return -o.Amount
	default:
		return 0
	}
}

// Settlement is the recorded effect of settling an outcome
type Settlement struct {
	// Outcome is what the engine decided
	Outcome *Outcome

	// Applied is the signed balance change actually applied
	Applied int64

	// Record is the user record after settlement
	Record *UserRecord
}
