package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/elyorka22/-telegram-bot/internal/repository"
)

// StatsService reports aggregate numbers about the user base
type StatsService struct {
	users  repository.UserRepository
	logger *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(users repository.UserRepository, logger *zap.Logger) *StatsService {
	return &StatsService{
		users:  users,
		logger: logger,
	}
}

// Count returns the number of registered users.
func (s *StatsService) Count() int {
	return s.users.Count()
}

// ActiveUsers returns how many users were active in the last N days.
func (s *StatsService) ActiveUsers(days int) int {
	cutoff := time.Now().AddDate(0, 0, -days)
	return len(s.users.ActiveSince(cutoff))
}

// LogSnapshot writes one usage line; the periodic stats job calls it.
func (s *StatsService) LogSnapshot() {
	s.logger.Info("Usage snapshot",
		zap.Int("users", s.Count()),
		zap.Int("active_last_week", s.ActiveUsers(7)))
}
