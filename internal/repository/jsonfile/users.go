// Package jsonfile persists the user table in a single JSON file keyed by
// stringified Telegram user ID. Every mutation rewrites the whole file,
// which keeps the format trivially inspectable and editable by hand.
package jsonfile

import (
	"encoding/json"
	"os"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/elyorka22/-telegram-bot/internal/domain"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	path   string
	logger *zap.Logger

	mu    sync.RWMutex
	users map[string]*domain.UserRecord
}

// NewUserRepo loads the user table from path. A missing file starts an
// empty table; an unreadable or corrupt one is logged and also starts
// empty rather than refusing to boot.
func NewUserRepo(path string, logger *zap.Logger) *UserRepo {
	r := &UserRepo{
		path:   path,
		logger: logger,
		users:  make(map[string]*domain.UserRecord),
	}
	r.load()
	return r
}

func (r *UserRepo) load() {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			r.logger.Error("Failed to load users file",
				zap.String("path", r.path),
				zap.Error(err))
		}
		return
	}

	users := make(map[string]*domain.UserRecord)
	if err := json.Unmarshal(data, &users); err != nil {
		r.logger.Error("Failed to parse users file, starting empty",
			zap.String("path", r.path),
			zap.Error(err))
		return
	}
	r.users = users
}

// persist rewrites the file from memory. Callers must hold the write
// lock. Failures are logged and swallowed: memory stays authoritative
// for the rest of the process lifetime.
func (r *UserRepo) persist() {
	data, err := json.MarshalIndent(r.users, "", "  ")
	if err != nil {
		r.logger.Error("Failed to encode users", zap.Error(err))
		return
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		r.logger.Error("Failed to save users file",
			zap.String("path", r.path),
			zap.Error(err))
	}
}

func key(userID int64) string {
	return strconv.FormatInt(userID, 10)
}

// Register adds a user with default settings. It reports false when the
// user already exists.
func (r *UserRepo) Register(userID int64, username, firstName, lastName string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := key(userID)
	if _, exists := r.users[k]; exists {
		return false
	}

	r.users[k] = domain.NewUserRecord(userID, username, firstName, lastName)
	r.persist()
	r.logger.Info("New user registered", zap.Int64("user_id", userID))
	return true
}

// Get returns a copy of the stored record.
func (r *UserRepo) Get(userID int64) (*domain.UserRecord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.users[key(userID)]
	if !ok {
		return nil, false
	}
	return rec.Clone(), true
}

// SetLanguage switches the user's interface language and refreshes their
// activity time.
func (r *UserRepo) SetLanguage(userID int64, lang domain.Language) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.users[key(userID)]
	if !ok {
		return
	}
	rec.Language = lang
	rec.LastActivity = time.Now()
	r.persist()
}

// TouchActivity refreshes the user's activity time and counts the
// message.
func (r *UserRepo) TouchActivity(userID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.users[key(userID)]
	if !ok {
		return
	}
	rec.LastActivity = time.Now()
	rec.Stats.TotalMessages++
	r.persist()
}

// IncrementStat bumps one of the domain.Stat* counters. Nothing is
// written for unknown counter names.
func (r *UserRepo) IncrementStat(userID int64, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.users[key(userID)]
	if !ok {
		return
	}
	if rec.Stats.Increment(name) {
		r.persist()
	}
}

// SetPreference stores a preference flag.
func (r *UserRepo) SetPreference(userID int64, name string, value bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.users[key(userID)]
	if !ok {
		return
	}
	if rec.Preferences == nil {
		rec.Preferences = make(map[string]bool)
	}
	rec.Preferences[name] = value
	r.persist()
}

// Profile returns the derived profile view for a registered user.
func (r *UserRepo) Profile(userID int64) (*domain.Profile, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.users[key(userID)]
	if !ok {
		return nil, false
	}
	return rec.ProfileAt(time.Now()), true
}

// All returns copies of every stored record.
func (r *UserRepo) All() []*domain.UserRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.UserRecord, 0, len(r.users))
	for _, rec := range r.users {
		out = append(out, rec.Clone())
	}
	return out
}

// Delete removes a user and reports whether one was removed.
func (r *UserRepo) Delete(userID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := key(userID)
	if _, ok := r.users[k]; !ok {
		return false
	}
	delete(r.users, k)
	r.persist()
	return true
}

// Count returns the number of registered users.
func (r *UserRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.users)
}

// ActiveSince returns copies of users whose last activity is after t.
func (r *UserRepo) ActiveSince(t time.Time) []*domain.UserRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.UserRecord
	for _, rec := range r.users {
		if rec.LastActivity.After(t) {
			out = append(out, rec.Clone())
		}
	}
	return out
}
