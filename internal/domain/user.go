package domain

import (
	"strings"
	"time"
)

// Language is a user interface language code.
type Language string

const (
	LangEN Language = "en"
	LangRU Language = "ru"
	LangUZ Language = "uz"
)

// DefaultLanguage is assigned to newly registered users.
const DefaultLanguage = LangEN

// languageAliases maps recognized user inputs to languages. Inputs are
// matched lowercase; the numbers follow the selection prompt order.
var languageAliases = map[string]Language{
	"1": LangEN, "en": LangEN, "english": LangEN, "английский": LangEN,
	"2": LangRU, "ru": LangRU, "russian": LangRU, "русский": LangRU,
	"3": LangUZ, "uz": LangUZ, "uzbek": LangUZ, "узбекский": LangUZ, "o'zbek": LangUZ,
}

// ParseLanguage resolves a language choice typed by the user.
func ParseLanguage(input string) (Language, bool) {
	lang, ok := languageAliases[strings.ToLower(strings.TrimSpace(input))]
	return lang, ok
}

// Valid reports whether the code belongs to the supported set.
func (l Language) Valid() bool {
	return l == LangEN || l == LangRU || l == LangUZ
}

// Stat counter names tracked per user.
const (
	StatWordsSaved      = "words_saved"
	StatHashtagsCreated = "hashtags_created"
	StatHashtagsDeleted = "hashtags_deleted"
	StatPDFsGenerated   = "pdfs_generated"
	StatTotalMessages   = "total_messages"
)

// Stats holds per-user activity counters. Counters only ever grow.
type Stats struct {
	WordsSaved      int `json:"words_saved"`
	HashtagsCreated int `json:"hashtags_created"`
	HashtagsDeleted int `json:"hashtags_deleted"`
	PDFsGenerated   int `json:"pdfs_generated"`
	TotalMessages   int `json:"total_messages"`
}

// Increment bumps the named counter by one. Unknown names are ignored and
// reported as false.
func (s *Stats) Increment(name string) bool {
	switch name {
	case StatWordsSaved:
		s.WordsSaved++
	case StatHashtagsCreated:
		s.HashtagsCreated++
	case StatHashtagsDeleted:
		s.HashtagsDeleted++
	case StatPDFsGenerated:
		s.PDFsGenerated++
	case StatTotalMessages:
		s.TotalMessages++
	default:
		return false
	}
	return true
}

// Preference flag names enabled by default at registration.
const (
	PrefAutoSave      = "auto_save"
	PrefNotifications = "notifications"
)

// UserRecord is a registered bot user with statistics and preferences.
type UserRecord struct {
	UserID       int64           `json:"user_id"`
	Username     string          `json:"username,omitempty"`
	FirstName    string          `json:"first_name,omitempty"`
	LastName     string          `json:"last_name,omitempty"`
	Language     Language        `json:"language"`
	RegisteredAt time.Time       `json:"registered_at"`
	LastActivity time.Time       `json:"last_activity"`
	Stats        Stats           `json:"stats"`
	Preferences  map[string]bool `json:"preferences"`
}

// NewUserRecord builds a record with registration defaults.
func NewUserRecord(userID int64, username, firstName, lastName string) *UserRecord {
	now := time.Now()
	return &UserRecord{
		UserID:       userID,
		Username:     username,
		FirstName:    firstName,
		LastName:     lastName,
		Language:     DefaultLanguage,
		RegisteredAt: now,
		LastActivity: now,
		Preferences: map[string]bool{
			PrefAutoSave:      true,
			PrefNotifications: true,
		},
	}
}

// Clone returns a deep copy safe to hand outside the store.
func (u *UserRecord) Clone() *UserRecord {
	cp := *u
	cp.Preferences = make(map[string]bool, len(u.Preferences))
	for k, v := range u.Preferences {
		cp.Preferences[k] = v
	}
	return &cp
}

// Profile is a user record extended with derived display fields.
type Profile struct {
	UserRecord
	DaysRegistered int `json:"days_registered"`
}

// ProfileAt derives the profile view at the given time.
func (u *UserRecord) ProfileAt(now time.Time) *Profile {
	return &Profile{
		UserRecord:     *u.Clone(),
		DaysRegistered: int(now.Sub(u.RegisteredAt).Hours() / 24),
	}
}
