package service

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/elyorka22/-telegram-bot/internal/domain"
	"github.com/elyorka22/-telegram-bot/internal/repository"
)

// ErrNoHashtag reports a note without a category marker.
var ErrNoHashtag = errors.New("note has no hashtag")

// VocabService handles notes, categories and word list exports
type VocabService struct {
	users    repository.UserRepository
	api      WebsiteAPI
	exporter Exporter
	logger   *zap.Logger
}

// NewVocabService creates a new vocabulary service
func NewVocabService(users repository.UserRepository, api WebsiteAPI, exporter Exporter, logger *zap.Logger) *VocabService {
	return &VocabService{
		users:    users,
		api:      api,
		exporter: exporter,
		logger:   logger,
	}
}

// SaveNote forwards a tagged note to the website and returns its
// category, the first hashtag. The words_saved counter moves only after
// the website accepted the note.
func (s *VocabService) SaveNote(userID int64, username, text string) (string, error) {
	hashtags := domain.ExtractHashtags(text)
	if len(hashtags) == 0 {
		return "", ErrNoHashtag
	}

	if err := s.api.PostMessage(text, hashtags, userID, username, time.Now()); err != nil {
		return "", err
	}

	s.users.IncrementStat(userID, domain.StatWordsSaved)
	return hashtags[0], nil
}

// CreateHashtag registers a category on the website and counts it on
// success.
func (s *VocabService) CreateHashtag(userID int64, name, description string) error {
	if err := s.api.CreateHashtag(name, description); err != nil {
		return err
	}
	s.users.IncrementStat(userID, domain.StatHashtagsCreated)
	return nil
}

// DeleteHashtag removes a category from the website and counts it on
// success.
func (s *VocabService) DeleteHashtag(userID int64, name string) error {
	if err := s.api.DeleteHashtag(name); err != nil {
		return err
	}
	s.users.IncrementStat(userID, domain.StatHashtagsDeleted)
	return nil
}

// Hashtags lists the categories known to the website.
func (s *VocabService) Hashtags() ([]domain.Hashtag, error) {
	return s.api.Hashtags()
}

// ExportCategory renders the category's saved words as a PDF and returns
// the document with the word count. An empty category yields (nil, 0, nil)
// so the caller can tell "nothing saved" from a failure. The
// pdfs_generated counter moves once the document is rendered, whether or
// not the upload to the chat succeeds afterwards.
func (s *VocabService) ExportCategory(userID int64, category string) ([]byte, int, error) {
	messages, err := s.api.MessagesByCategory(category)
	if err != nil {
		return nil, 0, err
	}
	if len(messages) == 0 {
		return nil, 0, nil
	}

	words := make([]domain.WordPair, len(messages))
	for i, msg := range messages {
		words[i] = domain.WordPair{Text: msg.Text, Translation: msg.Translation}
	}

	pdf, err := s.exporter.Render(category, words)
	if err != nil {
		s.logger.Error("Failed to render word list",
			zap.String("category", category),
			zap.Error(err))
		return nil, 0, err
	}

	s.users.IncrementStat(userID, domain.StatPDFsGenerated)
	return pdf, len(words), nil
}
