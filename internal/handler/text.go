package handler

import (
	"fmt"
	"strings"

	tele "gopkg.in/telebot.v3"

	"github.com/elyorka22/-telegram-bot/internal/domain"
	"github.com/elyorka22/-telegram-bot/internal/i18n"
)

// handleText routes plain text messages. Order matters: a pending flow
// consumes the message first (even when it matches a menu button), tagged
// notes go straight to the website next, and only then the text is matched
// against the menu buttons of the user's language.
func (h *Handler) handleText(c tele.Context) error {
	sender := c.Sender()
	text := strings.TrimSpace(c.Text())

	// Commands come through their own handlers
	if strings.HasPrefix(text, "/") {
		return nil
	}

	// Everything except registration requires an account
	if !h.accounts.IsRegistered(sender.ID) {
		if strings.EqualFold(text, i18n.T(domain.DefaultLanguage, "register")) {
			return h.handleRegister(c)
		}
		return c.Send(mustRegisterReply())
	}

	lang := h.accounts.Language(sender.ID)
	h.accounts.TouchActivity(sender.ID)

	switch h.Flow(sender.ID) {
	case domain.FlowAwaitingHashtagCreate:
		return h.finishCreateHashtag(c, lang, text)
	case domain.FlowAwaitingHashtagDelete:
		return h.finishDeleteHashtag(c, lang, text)
	case domain.FlowAwaitingCategoryImport:
		return h.finishImportList(c, lang, text)
	case domain.FlowAwaitingLanguage:
		return h.finishLanguageChoice(c, text)
	}

	if domain.FirstHashtag(text) != "" {
		return h.saveNote(c, lang, text)
	}

	switch strings.ToLower(text) {
	case menuLabel(lang, "help"):
		return h.handleHelp(c)
	case menuLabel(lang, "create_hashtag"):
		return h.startCreateHashtag(c, lang)
	case menuLabel(lang, "delete_hashtag"):
		return h.startDeleteHashtag(c, lang)
	case menuLabel(lang, "import_list"):
		return h.startImportList(c, lang)
	case menuLabel(lang, "language_button"):
		return h.startLanguageChoice(c)
	case menuLabel(lang, "open_website"):
		return h.sendWebsiteLink(c, lang)
	case menuLabel(lang, "profile"):
		return h.handleProfile(c)
	case menuLabel(lang, "register"):
		return h.handleRegister(c)
	}

	// Neither a tag nor a button: remind how notes are saved
	return c.Send(fmt.Sprintf("%s\n\n%s:\n%s",
		i18n.T(lang, "send_hashtag_message"),
		i18n.T(lang, "examples"),
		i18n.T(lang, "examples_list"),
	), mainMenu(lang))
}

// menuLabel returns the lowercased menu button caption for matching.
func menuLabel(lang domain.Language, key string) string {
	return strings.ToLower(i18n.T(lang, key))
}

// saveNote forwards a tagged note to the website and confirms the save.
func (h *Handler) saveNote(c tele.Context, lang domain.Language, text string) error {
	sender := c.Sender()

	username := sender.Username
	if username == "" {
		username = sender.FirstName
	}

	category, err := h.vocab.SaveNote(sender.ID, username, text)
	if err != nil {
		return c.Send(fmt.Sprintf("❌ %s\n\n%s",
			errorReply(err),
			i18n.T(lang, "website_not_running"),
		), mainMenu(lang))
	}

	return c.Send(fmt.Sprintf("%s\n\n%s: %s\n%s: %s\n\n%s",
		i18n.T(lang, "word_saved"),
		i18n.T(lang, "word"), text,
		i18n.T(lang, "category"), category,
		i18n.T(lang, "check_website"),
	), mainMenu(lang))
}

// sendWebsiteLink shows the website address with an open button.
func (h *Handler) sendWebsiteLink(c tele.Context, lang domain.Language) error {
	return c.Send(fmt.Sprintf("%s\n\n🔗 %s",
		i18n.T(lang, "website_link"),
		i18n.T(lang, "website_url"),
	), websiteMenu(lang))
}
