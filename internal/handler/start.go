package handler

import (
	"fmt"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"github.com/elyorka22/-telegram-bot/internal/domain"
	"github.com/elyorka22/-telegram-bot/internal/i18n"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	sender := c.Sender()

	h.logger.Info("User started bot",
		zap.Int64("user_id", sender.ID),
		zap.String("username", sender.Username),
	)

	if !h.accounts.IsRegistered(sender.ID) {
		lang := domain.DefaultLanguage
		return c.Send(fmt.Sprintf("%s\n\n%s",
			i18n.T(lang, "welcome"),
			i18n.T(lang, "welcome_new_user"),
		))
	}

	lang := h.accounts.Language(sender.ID)
	h.accounts.TouchActivity(sender.ID)

	return c.Send(usageText(lang), mainMenu(lang))
}

// handleHelp handles /help command
func (h *Handler) handleHelp(c tele.Context) error {
	sender := c.Sender()

	if !h.accounts.IsRegistered(sender.ID) {
		return c.Send(mustRegisterReply())
	}

	lang := h.accounts.Language(sender.ID)
	h.accounts.TouchActivity(sender.ID)

	return c.Send(usageText(lang), mainMenu(lang))
}

// usageText builds the hashtag crib sheet shown by /start and /help. The
// tags themselves are fixed; only their explanations are localized.
func usageText(lang domain.Language) string {
	return fmt.Sprintf("%s\n\n%s\n\n%s\n• #заметка - %s\n• #разборка - %s\n• #фразы - %s\n• #слова - %s\n• #грамматика - %s\n\n%s",
		i18n.T(lang, "welcome"),
		i18n.T(lang, "welcome_desc"),
		i18n.T(lang, "hashtag_help"),
		i18n.T(lang, "notes"),
		i18n.T(lang, "grammar_analysis"),
		i18n.T(lang, "useful_phrases"),
		i18n.T(lang, "new_words"),
		i18n.T(lang, "grammar_rules"),
		i18n.T(lang, "example"),
	)
}

// mustRegisterReply is shown whenever an unregistered user asks for
// anything but registration.
func mustRegisterReply() string {
	lang := domain.DefaultLanguage
	return fmt.Sprintf("%s\n\n%s",
		i18n.T(lang, "profile_not_registered"),
		i18n.T(lang, "profile_register_first"),
	)
}
