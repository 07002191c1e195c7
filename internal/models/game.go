package models

// GameKind identifies a mini-game, or a non-game session such as a trade
type GameKind string

const (
	GameKindBlackjack GameKind = "blackjack"
	GameKindTicTacToe GameKind = "tictactoe"
	GameKindMemory    GameKind = "memory"
	GameKindHighLow   GameKind = "highlow"
	GameKindGuess     GameKind = "guess"
	GameKindTrivia    GameKind = "trivia"
	GameKindScramble  GameKind = "scramble"
	GameKindCoinFlip  GameKind = "coinflip"
	GameKindRPS       GameKind = "rps"
	GameKindDice      GameKind = "dice"
	GameKindSlots     GameKind = "slots"

	// GameKindTrade marks a pending trade offer held in the session registry
	GameKindTrade GameKind = "trade"
)

// String implements fmt.Stringer
func (k GameKind) String() string {
	return string(k)
}
