// Package service contains the business logic between the Telegram
// handlers and the storage, website and export layers.
package service

import (
	"time"

	"github.com/elyorka22/-telegram-bot/internal/domain"
)

// WebsiteAPI is the slice of the website client the services depend on.
type WebsiteAPI interface {
	Hashtags() ([]domain.Hashtag, error)
	CreateHashtag(name, description string) error
	DeleteHashtag(name string) error
	PostMessage(text string, hashtags []string, userID int64, username string, sentAt time.Time) error
	MessagesByCategory(category string) ([]domain.Message, error)
	UpsertUser(rec *domain.UserRecord) error
}

// Exporter renders a category word list into a downloadable document.
type Exporter interface {
	Render(category string, words []domain.WordPair) ([]byte, error)
}
