package repository

import (
	"time"

	"github.com/elyorka22/-telegram-bot/internal/domain"
)

// UserRepository defines user account storage operations
type UserRepository interface {
	// Register adds a user with default settings. It reports false when
	// the user already exists.
	Register(userID int64, username, firstName, lastName string) bool
	// Get returns a copy of the stored record.
	Get(userID int64) (*domain.UserRecord, bool)
	// SetLanguage switches the user's interface language and refreshes
	// their activity time. Unknown users are ignored.
	SetLanguage(userID int64, lang domain.Language)
	// TouchActivity refreshes the user's activity time and counts the
	// message. Unknown users are ignored.
	TouchActivity(userID int64)
	// IncrementStat bumps one of the domain.Stat* counters. Unknown users
	// and unknown counter names are ignored.
	IncrementStat(userID int64, name string)
	// SetPreference stores a preference flag. Unknown users are ignored.
	SetPreference(userID int64, name string, value bool)
	// Profile returns the derived profile view for a registered user.
	Profile(userID int64) (*domain.Profile, bool)
	// All returns copies of every stored record.
	All() []*domain.UserRecord
	// Delete removes a user and reports whether one was removed.
	Delete(userID int64) bool
	// Count returns the number of registered users.
	Count() int
	// ActiveSince returns users whose last activity is after t.
	ActiveSince(t time.Time) []*domain.UserRecord
}
