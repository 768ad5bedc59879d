package handler

import (
	tele "gopkg.in/telebot.v3"
)

// handleCallback answers stray callback queries so the client stops
// showing a loading spinner. The only inline button opens the website URL
// directly, so there is no callback data to act on.
func (h *Handler) handleCallback(c tele.Context) error {
	return c.Respond()
}
