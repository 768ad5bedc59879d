package handler

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"github.com/elyorka22/-telegram-bot/internal/domain"
	"github.com/elyorka22/-telegram-bot/internal/i18n"
	"github.com/elyorka22/-telegram-bot/internal/remote"
	"github.com/elyorka22/-telegram-bot/internal/service"
)

// Handler manages all bot interactions
type Handler struct {
	bot      *tele.Bot
	accounts *service.AccountService
	vocab    *service.VocabService
	logger   *zap.Logger

	// Pending conversational flows (in-memory state machine)
	flows   map[int64]domain.Flow
	flowMux sync.RWMutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	accounts *service.AccountService,
	vocab *service.VocabService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:      bot,
		accounts: accounts,
		vocab:    vocab,
		logger:   logger,
		flows:    make(map[int64]domain.Flow),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/help", h.handleHelp)
	h.bot.Handle("/register", h.handleRegister)
	h.bot.Handle("/profile", h.handleProfile)

	// Text messages: menu buttons, pending flows and tagged notes
	h.bot.Handle(tele.OnText, h.handleText)

	// Inline button presses need acknowledging even when no action follows
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// Flow returns the user's pending conversational flow
func (h *Handler) Flow(userID int64) domain.Flow {
	h.flowMux.RLock()
	defer h.flowMux.RUnlock()

	flow, exists := h.flows[userID]
	if !exists {
		return domain.FlowIdle
	}
	return flow
}

// SetFlow marks which conversation waits for the user's next message
func (h *Handler) SetFlow(userID int64, flow domain.Flow) {
	h.flowMux.Lock()
	defer h.flowMux.Unlock()
	h.flows[userID] = flow
}

// ResetFlow returns the user to the idle flow
func (h *Handler) ResetFlow(userID int64) {
	h.SetFlow(userID, domain.FlowIdle)
}

// mainMenu returns the main menu keyboard in the given language
func mainMenu(lang domain.Language) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}
	menu.Reply(
		menu.Row(menu.Text(i18n.T(lang, "create_hashtag")), menu.Text(i18n.T(lang, "delete_hashtag"))),
		menu.Row(menu.Text(i18n.T(lang, "import_list")), menu.Text(i18n.T(lang, "help"))),
		menu.Row(menu.Text(i18n.T(lang, "language_button")), menu.Text(i18n.T(lang, "open_website"))),
		menu.Row(menu.Text(i18n.T(lang, "profile")), menu.Text(i18n.T(lang, "register"))),
	)
	return menu
}

// websiteMenu returns an inline keyboard with a button opening the website
func websiteMenu(lang domain.Language) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(menu.URL(i18n.T(lang, "open_website"), i18n.T(lang, "website_url"))),
	)
	return menu
}

// errorReply converts website client errors into the short replies the bot
// shows. These mirror the messages the website itself uses and are not
// localized.
func errorReply(err error) string {
	switch {
	case errors.Is(err, remote.ErrUnavailable):
		return "Website is not running. Please start the website first."
	case errors.Is(err, remote.ErrAlreadyExists):
		return "Hashtag already exists!"
	case errors.Is(err, remote.ErrNotFound):
		return "Hashtag not found!"
	}
	var status *remote.StatusError
	if errors.As(err, &status) {
		return fmt.Sprintf("Error: %d", status.Code)
	}
	return err.Error()
}

// isRemoteErr reports whether the error came from the website client.
func isRemoteErr(err error) bool {
	var status *remote.StatusError
	return errors.Is(err, remote.ErrUnavailable) ||
		errors.Is(err, remote.ErrAlreadyExists) ||
		errors.Is(err, remote.ErrNotFound) ||
		errors.As(err, &status)
}
