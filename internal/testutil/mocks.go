package testutil

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/elyorka22/-telegram-bot/internal/domain"
)

// MockUserRepository is a mock for repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Register(userID int64, username, firstName, lastName string) bool {
	args := m.Called(userID, username, firstName, lastName)
	return args.Bool(0)
}

func (m *MockUserRepository) Get(userID int64) (*domain.UserRecord, bool) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*domain.UserRecord), args.Bool(1)
}

func (m *MockUserRepository) SetLanguage(userID int64, lang domain.Language) {
	m.Called(userID, lang)
}

func (m *MockUserRepository) TouchActivity(userID int64) {
	m.Called(userID)
}

func (m *MockUserRepository) IncrementStat(userID int64, name string) {
	m.Called(userID, name)
}

func (m *MockUserRepository) SetPreference(userID int64, name string, value bool) {
	m.Called(userID, name, value)
}

func (m *MockUserRepository) Profile(userID int64) (*domain.Profile, bool) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*domain.Profile), args.Bool(1)
}

func (m *MockUserRepository) All() []*domain.UserRecord {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*domain.UserRecord)
}

func (m *MockUserRepository) Delete(userID int64) bool {
	args := m.Called(userID)
	return args.Bool(0)
}

func (m *MockUserRepository) Count() int {
	args := m.Called()
	return args.Int(0)
}

func (m *MockUserRepository) ActiveSince(t time.Time) []*domain.UserRecord {
	args := m.Called(t)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*domain.UserRecord)
}

// MockWebsiteAPI is a mock for service.WebsiteAPI
type MockWebsiteAPI struct {
	mock.Mock
}

func (m *MockWebsiteAPI) Hashtags() ([]domain.Hashtag, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Hashtag), args.Error(1)
}

func (m *MockWebsiteAPI) CreateHashtag(name, description string) error {
	args := m.Called(name, description)
	return args.Error(0)
}

func (m *MockWebsiteAPI) DeleteHashtag(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

func (m *MockWebsiteAPI) PostMessage(text string, hashtags []string, userID int64, username string, sentAt time.Time) error {
	args := m.Called(text, hashtags, userID, username, sentAt)
	return args.Error(0)
}

func (m *MockWebsiteAPI) MessagesByCategory(category string) ([]domain.Message, error) {
	args := m.Called(category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Message), args.Error(1)
}

func (m *MockWebsiteAPI) UpsertUser(rec *domain.UserRecord) error {
	args := m.Called(rec)
	return args.Error(0)
}

// MockExporter is a mock for service.Exporter
type MockExporter struct {
	mock.Mock
}

func (m *MockExporter) Render(category string, words []domain.WordPair) ([]byte, error) {
	args := m.Called(category, words)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
