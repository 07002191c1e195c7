package game

import (
	"context"

	"github.com/KirkDiggler/arcade/internal/models"
	"github.com/KirkDiggler/arcade/internal/services/ledger"
	"github.com/KirkDiggler/arcade/internal/services/messaging"
	"github.com/rs/zerolog/log"
)

// handleExpired forfeits a timed-out session: the wager is lost and the message
// shows the reveal. The registry has already removed the session, so no action
// can settle it concurrently.
func (s *service) handleExpired(ctx context.Context, sess *models.Session) {
	var settlement *models.Settlement

	err := s.locks.WithLock(sess.OwnerID, func() error {
		if sess.Wager <= 0 {
			return s.ledger.StampCooldown(ctx, &ledger.StampCooldownInput{
				UserID: sess.OwnerID,
				Kind:   sess.Kind,
			})
		}

		var err error
		settlement, err = s.ledger.ApplyGameResult(ctx, &ledger.ApplyGameResultInput{
			UserID:  sess.OwnerID,
			Kind:    sess.Kind,
			Outcome: models.Lose(sess.Wager, TimeoutReason),
		})
		return err
	})
	if err != nil {
		log.Error().Err(err).
			Str("key", sess.Key).
			Str("user", sess.OwnerID).
			Msg("Failed to forfeit expired session")
		return
	}

	log.Info().
		Str("key", sess.Key).
		Str("user", sess.OwnerID).
		Str("kind", string(sess.Kind)).
		Int64("wager", sess.Wager).
		Msg("Session timed out")

	if s.notifier == nil || sess.MessageID == "" {
		return
	}

	rendered, err := s.messaging.RenderExpired(ctx, &messaging.RenderExpiredInput{
		Session:    sess,
		Settlement: settlement,
	})
	if err != nil {
		log.Error().Err(err).Str("key", sess.Key).Msg("Failed to render expired session")
		return
	}

	if err := s.notifier.Notify(ctx, &messaging.NotifyInput{
		ChannelID: sess.ChannelID,
		MessageID: sess.MessageID,
		Display:   rendered.Display,
	}); err != nil {
		log.Warn().Err(err).Str("key", sess.Key).Msg("Failed to edit expired session message")
	}
}
