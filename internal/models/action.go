package models

// ActionType is the kind of input a user sent to a session
type ActionType string

const (
	// ActionCell picks a board cell (tic-tac-toe, memory)
	ActionCell ActionType = "cell"

	// ActionChoice picks one of several options (guess, trivia, coinflip, rps)
	ActionChoice ActionType = "choice"

	ActionHit    ActionType = "hit"
	ActionStand  ActionType = "stand"
	ActionDouble ActionType = "double"

	ActionHigher  ActionType = "higher"
	ActionLower   ActionType = "lower"
	ActionCashOut ActionType = "cashout"

	// ActionAnswer carries free text (scramble)
	ActionAnswer ActionType = "answer"

	ActionAccept  ActionType = "accept"
	ActionDecline ActionType = "decline"
)

// Action is an inbound user action already parsed from the platform event
type Action struct {
	// SessionKey is the session the action targets
	SessionKey string

	// Type is the action kind
	Type ActionType

	// Index is the cell or choice index for ActionCell and ActionChoice
	Index int

	// Text is the free-text answer for ActionAnswer
	Text string
}
