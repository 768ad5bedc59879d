package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/elyorka22/-telegram-bot/internal/domain"
	"github.com/elyorka22/-telegram-bot/internal/testutil"
)

func TestStatsService_Count(t *testing.T) {
	mockRepo := new(testutil.MockUserRepository)
	mockRepo.On("Count").Return(7)

	svc := NewStatsService(mockRepo, testutil.NewTestLogger())

	assert.Equal(t, 7, svc.Count())
}

func TestStatsService_ActiveUsers(t *testing.T) {
	active := []*domain.UserRecord{
		domain.NewUserRecord(1, "", "", ""),
		domain.NewUserRecord(2, "", "", ""),
	}

	mockRepo := new(testutil.MockUserRepository)
	mockRepo.On("ActiveSince", mock.Anything).Return(active)

	svc := NewStatsService(mockRepo, testutil.NewTestLogger())

	assert.Equal(t, 2, svc.ActiveUsers(7))
	mockRepo.AssertExpectations(t)
}

func TestStatsService_LogSnapshot(t *testing.T) {
	mockRepo := new(testutil.MockUserRepository)
	mockRepo.On("Count").Return(3)
	mockRepo.On("ActiveSince", mock.Anything).Return([]*domain.UserRecord{})

	svc := NewStatsService(mockRepo, testutil.NewTestLogger())

	svc.LogSnapshot()
	mockRepo.AssertExpectations(t)
}
