package discord

import (
	"fmt"
	"testing"
	"time"

	"github.com/KirkDiggler/arcade/internal/games"
	"github.com/KirkDiggler/arcade/internal/models"
	"github.com/KirkDiggler/arcade/internal/services/admin"
	"github.com/KirkDiggler/arcade/internal/services/ledger"
	"github.com/KirkDiggler/arcade/internal/services/messaging"
	"github.com/KirkDiggler/arcade/internal/services/session"
	"github.com/KirkDiggler/arcade/internal/services/shop"
	"github.com/KirkDiggler/arcade/internal/services/trade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ErrorClassificationTestSuite struct {
	suite.Suite
}

func TestErrorClassificationSuite(t *testing.T) {
	suite.Run(t, new(ErrorClassificationTestSuite))
}

func (s *ErrorClassificationTestSuite) TestBetRange() {
	input := classifyError(&games.BetRangeError{Kind: models.GameKindSlots, Min: 10, Max: 500})
	s.Equal(messaging.ErrorTypeInvalidBet, input.ErrorType)
	s.Equal(int64(10), input.MinAmount)
	s.Equal(int64(500), input.Amount)
	s.Equal(models.GameKindSlots, input.Kind)
}

func (s *ErrorClassificationTestSuite) TestInsufficientFundsCarriesShortfall() {
	input := classifyError(fmt.Errorf("start: %w", &ledger.InsufficientFundsError{Need: 50, Have: 20}))
	s.Equal(messaging.ErrorTypeInsufficientFunds, input.ErrorType)
	s.Equal(int64(30), input.Amount)
}

func (s *ErrorClassificationTestSuite) TestCooldownAndDaily() {
	input := classifyError(&ledger.CooldownError{Remaining: 7 * time.Second})
	s.Equal(messaging.ErrorTypeOnCooldown, input.ErrorType)
	s.Equal(7*time.Second, input.Remaining)

	input = classifyError(&ledger.AlreadyClaimedError{Remaining: 3 * time.Hour})
	s.Equal(messaging.ErrorTypeAlreadyClaimed, input.ErrorType)
	s.Equal(3*time.Hour, input.Remaining)
}

func (s *ErrorClassificationTestSuite) TestSessionErrors() {
	input := classifyError(&session.ActiveError{Kind: models.GameKindMemory, Key: "k"})
	s.Equal(messaging.ErrorTypeSessionActive, input.ErrorType)
	s.Equal(models.GameKindMemory, input.Kind)

	s.Equal(messaging.ErrorTypeSessionExpired, classifyError(session.ErrSessionNotFound).ErrorType)
	s.Equal(messaging.ErrorTypeNotOwner, classifyError(session.ErrNotOwner).ErrorType)
}

func (s *ErrorClassificationTestSuite) TestShopAndAdmin() {
	s.Equal(messaging.ErrorTypeItemNotFound, classifyError(shop.ErrItemNotFound).ErrorType)
	s.Equal(messaging.ErrorTypeAlreadyOwned, classifyError(shop.ErrAlreadyOwned).ErrorType)
	s.Equal(messaging.ErrorTypeAccessDenied, classifyError(admin.ErrAccessDenied).ErrorType)

	input := classifyError(admin.ErrInvalidKey)
	s.Equal(messaging.ErrorTypeAccessDenied, input.ErrorType)
	s.Equal("Invalid admin key.", input.Detail)
}

func (s *ErrorClassificationTestSuite) TestTradeErrors() {
	input := classifyError(trade.ErrSelfTrade)
	s.Equal(messaging.ErrorTypeInvalidTrade, input.ErrorType)
	s.Equal("You can't trade with yourself!", input.Detail)

	input = classifyTradeError(trade.ErrSenderFunds)
	s.Equal(messaging.ErrorTypeTradeFailed, input.ErrorType)
	s.NotEmpty(input.Detail)

	// session errors keep their own classification on accept
	s.Equal(messaging.ErrorTypeNotOwner, classifyTradeError(session.ErrNotOwner).ErrorType)
}

func (s *ErrorClassificationTestSuite) TestUnknown() {
	s.Equal(messaging.ErrorTypeUnknown, classifyError(fmt.Errorf("redis: connection refused")).ErrorType)
}

func TestIsSilent(t *testing.T) {
	assert.True(t, isSilent(games.ErrInvalidAction))
	assert.True(t, isSilent(fmt.Errorf("apply: %w", games.ErrInvalidAction)))
	assert.False(t, isSilent(session.ErrNotOwner))
}
