package handler

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"github.com/elyorka22/-telegram-bot/internal/domain"
	"github.com/elyorka22/-telegram-bot/internal/i18n"
)

// startCreateHashtag puts the user into hashtag creation mode.
func (h *Handler) startCreateHashtag(c tele.Context, lang domain.Language) error {
	h.SetFlow(c.Sender().ID, domain.FlowAwaitingHashtagCreate)

	return c.Send(fmt.Sprintf("%s\n\n%s\n\n%s\n\n%s\n%s\n%s\n%s",
		i18n.T(lang, "create_hashtag_mode"),
		i18n.T(lang, "send_hashtag"),
		i18n.T(lang, "format"),
		i18n.T(lang, "examples"),
		i18n.T(lang, "new_hashtag_example"),
		i18n.T(lang, "dictionary_example"),
		i18n.T(lang, "grammar_example"),
	), mainMenu(lang))
}

// finishCreateHashtag consumes the next message as "#name description".
// The flow ends regardless of the outcome; a rejected message does not
// stay in creation mode.
func (h *Handler) finishCreateHashtag(c tele.Context, lang domain.Language, text string) error {
	h.ResetFlow(c.Sender().ID)

	parts := strings.SplitN(text, " ", 2)
	name := parts[0]
	description := ""
	if len(parts) > 1 {
		description = parts[1]
	}

	if !strings.HasPrefix(name, domain.HashtagMarker) {
		return c.Send(fmt.Sprintf("%s\n\n%s",
			i18n.T(lang, "hashtag_must_start"),
			i18n.T(lang, "hashtag_example"),
		), mainMenu(lang))
	}

	if err := h.vocab.CreateHashtag(c.Sender().ID, name, description); err != nil {
		return c.Send("❌ "+errorReply(err), mainMenu(lang))
	}

	shown := description
	if shown == "" {
		shown = i18n.T(lang, "no_description")
	}

	return c.Send(fmt.Sprintf("%s\n\n%s %s\n%s %s",
		i18n.T(lang, "hashtag_created"),
		i18n.T(lang, "hashtag_name"), name,
		i18n.T(lang, "description"), shown,
	), mainMenu(lang))
}

// startDeleteHashtag lists the existing hashtags and awaits one to delete.
// The flow starts even when the list cannot be fetched: the user may know
// the name without seeing it.
func (h *Handler) startDeleteHashtag(c tele.Context, lang domain.Language) error {
	defer h.SetFlow(c.Sender().ID, domain.FlowAwaitingHashtagDelete)

	hashtags, err := h.vocab.Hashtags()
	if err != nil {
		return c.Send("❌ "+errorReply(err), mainMenu(lang))
	}
	if len(hashtags) == 0 {
		return c.Send(i18n.T(lang, "no_hashtags_found"), mainMenu(lang))
	}

	return c.Send(fmt.Sprintf("%s\n\n%s:\n%s\n\n%s\n%s",
		i18n.T(lang, "delete_hashtag_mode"),
		i18n.T(lang, "available_hashtags"),
		hashtagList(hashtags),
		i18n.T(lang, "send_hashtag_to_delete"),
		i18n.T(lang, "delete_example"),
	), mainMenu(lang))
}

// finishDeleteHashtag consumes the next message as the hashtag to delete.
func (h *Handler) finishDeleteHashtag(c tele.Context, lang domain.Language, text string) error {
	h.ResetFlow(c.Sender().ID)

	if !strings.HasPrefix(text, domain.HashtagMarker) {
		return c.Send(fmt.Sprintf("%s\n\n%s",
			i18n.T(lang, "hashtag_must_start"),
			i18n.T(lang, "delete_example"),
		), mainMenu(lang))
	}

	if err := h.vocab.DeleteHashtag(c.Sender().ID, text); err != nil {
		return c.Send("❌ "+errorReply(err), mainMenu(lang))
	}

	return c.Send(fmt.Sprintf("%s\n\n%s %s",
		i18n.T(lang, "hashtag_deleted"),
		i18n.T(lang, "deleted_hashtag"), text,
	), mainMenu(lang))
}

// startImportList lists the categories available for PDF export.
func (h *Handler) startImportList(c tele.Context, lang domain.Language) error {
	defer h.SetFlow(c.Sender().ID, domain.FlowAwaitingCategoryImport)

	hashtags, err := h.vocab.Hashtags()
	if err != nil {
		return c.Send("❌ "+errorReply(err), mainMenu(lang))
	}
	if len(hashtags) == 0 {
		return c.Send(i18n.T(lang, "no_categories_found"), mainMenu(lang))
	}

	return c.Send(fmt.Sprintf("%s\n\n%s:\n%s\n\n%s\n%s",
		i18n.T(lang, "import_list_mode"),
		i18n.T(lang, "available_categories"),
		hashtagList(hashtags),
		i18n.T(lang, "send_category_to_import"),
		i18n.T(lang, "import_example"),
	), mainMenu(lang))
}

// finishImportList renders the requested category as a PDF document.
func (h *Handler) finishImportList(c tele.Context, lang domain.Language, text string) error {
	sender := c.Sender()
	h.ResetFlow(sender.ID)

	if !strings.HasPrefix(text, domain.HashtagMarker) {
		return c.Send(fmt.Sprintf("%s\n\n%s",
			i18n.T(lang, "category_must_start"),
			i18n.T(lang, "import_example"),
		), mainMenu(lang))
	}

	pdf, count, err := h.vocab.ExportCategory(sender.ID, text)
	if err != nil {
		if isRemoteErr(err) {
			return c.Send("❌ "+errorReply(err), mainMenu(lang))
		}
		return c.Send(i18n.T(lang, "error_generating_pdf"), mainMenu(lang))
	}
	if count == 0 {
		return c.Send(fmt.Sprintf("%s %s.", i18n.T(lang, "no_words_found"), text), mainMenu(lang))
	}

	document := &tele.Document{
		File:     tele.FromReader(bytes.NewReader(pdf)),
		FileName: text + "_word_list.pdf",
		Caption: fmt.Sprintf("📄 %s %s\n\n%s: %d\n%s: %s",
			i18n.T(lang, "word_list_for"), text,
			i18n.T(lang, "total_words"), count,
			i18n.T(lang, "generated_on"), time.Now().Format("2006-01-02 15:04"),
		),
	}

	if err := c.Send(document); err != nil {
		h.logger.Error("Failed to send PDF",
			zap.Error(err),
			zap.Int64("user_id", sender.ID),
			zap.String("category", text),
		)
		return c.Send(i18n.T(lang, "error_sending_pdf"), mainMenu(lang))
	}
	return nil
}

// startLanguageChoice shows the language prompt. The prompt itself is
// repeated in every supported language.
func (h *Handler) startLanguageChoice(c tele.Context) error {
	h.SetFlow(c.Sender().ID, domain.FlowAwaitingLanguage)

	return c.Send(fmt.Sprintf("%s / %s / %s:\n\n1. %s / %s / %s\n2. %s / %s / %s\n3. %s / %s / %s\n\n%s\n%s\n%s",
		i18n.T(domain.LangEN, "choose_language"), i18n.T(domain.LangRU, "choose_language"), i18n.T(domain.LangUZ, "choose_language"),
		i18n.T(domain.LangEN, "english_option"), i18n.T(domain.LangRU, "english_option"), i18n.T(domain.LangUZ, "english_option"),
		i18n.T(domain.LangEN, "russian_option"), i18n.T(domain.LangRU, "russian_option"), i18n.T(domain.LangUZ, "russian_option"),
		i18n.T(domain.LangEN, "uzbek_option"), i18n.T(domain.LangRU, "uzbek_option"), i18n.T(domain.LangUZ, "uzbek_option"),
		i18n.T(domain.LangEN, "send_number_or_name"), i18n.T(domain.LangRU, "send_number_or_name"), i18n.T(domain.LangUZ, "send_number_or_name"),
	), mainMenu(domain.DefaultLanguage))
}

// finishLanguageChoice applies a recognized language choice, confirming in
// the chosen language. Unrecognized input keeps the prompt active so the
// user can try again.
func (h *Handler) finishLanguageChoice(c tele.Context, text string) error {
	sender := c.Sender()

	lang, ok := domain.ParseLanguage(text)
	if !ok {
		return c.Send(fmt.Sprintf("%s\n%s\n%s",
			i18n.T(domain.LangEN, "invalid_language_choice"),
			i18n.T(domain.LangRU, "invalid_language_choice"),
			i18n.T(domain.LangUZ, "invalid_language_choice"),
		), mainMenu(domain.DefaultLanguage))
	}

	h.ResetFlow(sender.ID)
	h.accounts.SetLanguage(sender.ID, lang)

	h.logger.Info("User language changed",
		zap.Int64("user_id", sender.ID),
		zap.String("language", string(lang)),
	)

	return c.Send(i18n.T(lang, languageSetKey(lang)), mainMenu(lang))
}

// languageSetKey names the confirmation message for the chosen language.
func languageSetKey(lang domain.Language) string {
	switch lang {
	case domain.LangRU:
		return "language_set_russian"
	case domain.LangUZ:
		return "language_set_uzbek"
	default:
		return "language_set_english"
	}
}

// hashtagList formats hashtags as a bulleted list, one per line.
func hashtagList(hashtags []domain.Hashtag) string {
	lines := make([]string, len(hashtags))
	for i, tag := range hashtags {
		lines[i] = "• " + tag.Name
	}
	return strings.Join(lines, "\n")
}
