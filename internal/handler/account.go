package handler

import (
	"fmt"
	"strings"

	tele "gopkg.in/telebot.v3"

	"github.com/elyorka22/-telegram-bot/internal/domain"
	"github.com/elyorka22/-telegram-bot/internal/i18n"
)

// handleRegister handles /register command
func (h *Handler) handleRegister(c tele.Context) error {
	sender := c.Sender()

	if h.accounts.IsRegistered(sender.ID) {
		lang := h.accounts.Language(sender.ID)
		return c.Send(i18n.T(lang, "user_already_registered"), mainMenu(lang))
	}

	created, synced := h.accounts.Register(sender.ID, sender.Username, sender.FirstName, sender.LastName)
	if !created {
		return c.Send("❌ Registration failed. Please try again.")
	}

	lang := domain.DefaultLanguage
	reply := fmt.Sprintf("%s\n\n%s",
		i18n.T(lang, "registration_successful"),
		i18n.T(lang, "registration_welcome"),
	)
	if synced {
		reply += "\n\n✅ " + i18n.T(lang, "user_synced_backend")
	} else {
		reply += "\n\n⚠️ " + i18n.T(lang, "user_sync_failed")
	}

	return c.Send(reply, mainMenu(lang))
}

// handleProfile handles /profile command
func (h *Handler) handleProfile(c tele.Context) error {
	sender := c.Sender()

	profile, ok := h.accounts.Profile(sender.ID)
	if !ok {
		return c.Send(mustRegisterReply())
	}

	lang := profile.Language

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", i18n.T(lang, "profile_title"))
	fmt.Fprintf(&b, "%s %s\n", i18n.T(lang, "profile_username"), orNA(profile.Username))
	fmt.Fprintf(&b, "%s %s", i18n.T(lang, "profile_name"), orNA(profile.FirstName))
	if profile.LastName != "" {
		fmt.Fprintf(&b, " %s", profile.LastName)
	}
	fmt.Fprintf(&b, "\n%s %s\n", i18n.T(lang, "profile_language"), strings.ToUpper(string(lang)))
	fmt.Fprintf(&b, "%s %s\n", i18n.T(lang, "profile_registered"), profile.RegisteredAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "(%d %s)\n\n", profile.DaysRegistered, i18n.T(lang, "profile_days"))

	fmt.Fprintf(&b, "%s\n", i18n.T(lang, "profile_stats"))
	fmt.Fprintf(&b, "• %s: %d\n", i18n.T(lang, "profile_words_saved"), profile.Stats.WordsSaved)
	fmt.Fprintf(&b, "• %s: %d\n", i18n.T(lang, "profile_hashtags_created"), profile.Stats.HashtagsCreated)
	fmt.Fprintf(&b, "• %s: %d\n", i18n.T(lang, "profile_hashtags_deleted"), profile.Stats.HashtagsDeleted)
	fmt.Fprintf(&b, "• %s: %d\n", i18n.T(lang, "profile_pdfs_generated"), profile.Stats.PDFsGenerated)
	fmt.Fprintf(&b, "• %s: %d", i18n.T(lang, "profile_total_messages"), profile.Stats.TotalMessages)

	return c.Send(b.String(), mainMenu(lang))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
