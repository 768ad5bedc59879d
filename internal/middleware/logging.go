package middleware

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Logging writes one line per inbound update. Message text is logged by
// size only: notes are the users' private vocabulary.
func Logging(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if sender := c.Sender(); sender != nil {
				logger.Debug("Update received",
					zap.Int("update_id", c.Update().ID),
					zap.Int64("user_id", sender.ID),
					zap.Int("text_len", len(c.Text())))
			}
			return next(c)
		}
	}
}
