package service

import (
	"go.uber.org/zap"

	"github.com/elyorka22/-telegram-bot/internal/domain"
	"github.com/elyorka22/-telegram-bot/internal/repository"
)

// AccountService handles registration and profile logic
type AccountService struct {
	users  repository.UserRepository
	api    WebsiteAPI
	logger *zap.Logger
}

// NewAccountService creates a new account service
func NewAccountService(users repository.UserRepository, api WebsiteAPI, logger *zap.Logger) *AccountService {
	return &AccountService{
		users:  users,
		api:    api,
		logger: logger,
	}
}

// Register creates the local record and mirrors it to the website. It
// reports whether a record was created and whether the mirror call
// succeeded; an unreachable website never blocks registration.
func (s *AccountService) Register(userID int64, username, firstName, lastName string) (created, synced bool) {
	if !s.users.Register(userID, username, firstName, lastName) {
		return false, false
	}

	rec, ok := s.users.Get(userID)
	if !ok {
		return true, false
	}
	if err := s.api.UpsertUser(rec); err != nil {
		s.logger.Warn("User sync to website failed",
			zap.Int64("user_id", userID),
			zap.Error(err))
		return true, false
	}
	s.logger.Info("User synced to website", zap.Int64("user_id", userID))
	return true, true
}

// IsRegistered reports whether the user has an account.
func (s *AccountService) IsRegistered(userID int64) bool {
	_, ok := s.users.Get(userID)
	return ok
}

// Language returns the user's interface language. Unknown users get the
// default so even pre-registration prompts can be rendered.
func (s *AccountService) Language(userID int64) domain.Language {
	rec, ok := s.users.Get(userID)
	if !ok {
		return domain.DefaultLanguage
	}
	return rec.Language
}

// SetLanguage switches the user's interface language.
func (s *AccountService) SetLanguage(userID int64, lang domain.Language) {
	s.users.SetLanguage(userID, lang)
}

// TouchActivity counts an inbound message for the user.
func (s *AccountService) TouchActivity(userID int64) {
	s.users.TouchActivity(userID)
}

// Profile returns the profile view for a registered user.
func (s *AccountService) Profile(userID int64) (*domain.Profile, bool) {
	return s.users.Profile(userID)
}
