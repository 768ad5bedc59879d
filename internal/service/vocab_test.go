package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/elyorka22/-telegram-bot/internal/domain"
	"github.com/elyorka22/-telegram-bot/internal/testutil"
)

func newVocabService(repo *testutil.MockUserRepository, api *testutil.MockWebsiteAPI, exporter *testutil.MockExporter) *VocabService {
	return NewVocabService(repo, api, exporter, testutil.NewTestLogger())
}

func TestVocabService_SaveNote(t *testing.T) {
	mockRepo := new(testutil.MockUserRepository)
	mockAPI := new(testutil.MockWebsiteAPI)
	mockAPI.On("PostMessage", "serendipity #слова", []string{"#слова"}, int64(42), "alice", mock.Anything).Return(nil)
	mockRepo.On("IncrementStat", int64(42), domain.StatWordsSaved).Return()

	svc := newVocabService(mockRepo, mockAPI, new(testutil.MockExporter))

	category, err := svc.SaveNote(42, "alice", "serendipity #слова")

	assert.NoError(t, err)
	assert.Equal(t, "#слова", category)
	mockRepo.AssertExpectations(t)
	mockAPI.AssertExpectations(t)
}

func TestVocabService_SaveNoteFirstHashtagWins(t *testing.T) {
	mockRepo := new(testutil.MockUserRepository)
	mockAPI := new(testutil.MockWebsiteAPI)
	mockAPI.On("PostMessage", "word #alpha #beta", []string{"#alpha", "#beta"}, int64(42), "alice", mock.Anything).Return(nil)
	mockRepo.On("IncrementStat", int64(42), domain.StatWordsSaved).Return()

	svc := newVocabService(mockRepo, mockAPI, new(testutil.MockExporter))

	category, err := svc.SaveNote(42, "alice", "word #alpha #beta")

	assert.NoError(t, err)
	assert.Equal(t, "#alpha", category)
}

func TestVocabService_SaveNoteNoHashtag(t *testing.T) {
	mockRepo := new(testutil.MockUserRepository)
	mockAPI := new(testutil.MockWebsiteAPI)

	svc := newVocabService(mockRepo, mockAPI, new(testutil.MockExporter))

	_, err := svc.SaveNote(42, "alice", "plain text")

	assert.ErrorIs(t, err, ErrNoHashtag)
	mockAPI.AssertNotCalled(t, "PostMessage", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestVocabService_SaveNoteWebsiteDown(t *testing.T) {
	websiteErr := errors.New("connection refused")

	mockRepo := new(testutil.MockUserRepository)
	mockAPI := new(testutil.MockWebsiteAPI)
	mockAPI.On("PostMessage", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(websiteErr)

	svc := newVocabService(mockRepo, mockAPI, new(testutil.MockExporter))

	_, err := svc.SaveNote(42, "alice", "serendipity #слова")

	assert.ErrorIs(t, err, websiteErr)
	// No counter moves for a note the website never stored.
	mockRepo.AssertNotCalled(t, "IncrementStat", int64(42), domain.StatWordsSaved)
}

func TestVocabService_CreateHashtag(t *testing.T) {
	tests := []struct {
		name        string
		apiErr      error
		expectStat  bool
		expectError bool
	}{
		{
			name:       "created",
			apiErr:     nil,
			expectStat: true,
		},
		{
			name:        "api failure",
			apiErr:      errors.New("already exists"),
			expectStat:  false,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockUserRepository)
			mockAPI := new(testutil.MockWebsiteAPI)
			mockAPI.On("CreateHashtag", "#anki", "cards").Return(tt.apiErr)
			if tt.expectStat {
				mockRepo.On("IncrementStat", int64(42), domain.StatHashtagsCreated).Return()
			}

			svc := newVocabService(mockRepo, mockAPI, new(testutil.MockExporter))

			err := svc.CreateHashtag(42, "#anki", "cards")

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestVocabService_DeleteHashtag(t *testing.T) {
	tests := []struct {
		name        string
		apiErr      error
		expectStat  bool
		expectError bool
	}{
		{
			name:       "deleted",
			apiErr:     nil,
			expectStat: true,
		},
		{
			name:        "api failure",
			apiErr:      errors.New("not found"),
			expectStat:  false,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockUserRepository)
			mockAPI := new(testutil.MockWebsiteAPI)
			mockAPI.On("DeleteHashtag", "#anki").Return(tt.apiErr)
			if tt.expectStat {
				mockRepo.On("IncrementStat", int64(42), domain.StatHashtagsDeleted).Return()
			}

			svc := newVocabService(mockRepo, mockAPI, new(testutil.MockExporter))

			err := svc.DeleteHashtag(42, "#anki")

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestVocabService_Hashtags(t *testing.T) {
	hashtags := []domain.Hashtag{{Name: "#слова"}, {Name: "#фразы"}}

	mockAPI := new(testutil.MockWebsiteAPI)
	mockAPI.On("Hashtags").Return(hashtags, nil)

	svc := newVocabService(new(testutil.MockUserRepository), mockAPI, new(testutil.MockExporter))

	got, err := svc.Hashtags()
	assert.NoError(t, err)
	assert.Equal(t, hashtags, got)
}

func TestVocabService_ExportCategory(t *testing.T) {
	messages := []domain.Message{
		{Text: "serendipity #слова", Translation: "случайность", Category: "#слова"},
		{Text: "ubiquitous #слова", Category: "#слова"},
	}
	expectedWords := []domain.WordPair{
		{Text: "serendipity #слова", Translation: "случайность"},
		{Text: "ubiquitous #слова"},
	}

	mockRepo := new(testutil.MockUserRepository)
	mockAPI := new(testutil.MockWebsiteAPI)
	mockExporter := new(testutil.MockExporter)
	mockAPI.On("MessagesByCategory", "#слова").Return(messages, nil)
	mockExporter.On("Render", "#слова", expectedWords).Return([]byte("%PDF-fake"), nil)
	mockRepo.On("IncrementStat", int64(42), domain.StatPDFsGenerated).Return()

	svc := newVocabService(mockRepo, mockAPI, mockExporter)

	pdf, count, err := svc.ExportCategory(42, "#слова")

	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), pdf)
	assert.Equal(t, 2, count)
	mockRepo.AssertExpectations(t)
	mockExporter.AssertExpectations(t)
}

func TestVocabService_ExportCategoryEmpty(t *testing.T) {
	mockRepo := new(testutil.MockUserRepository)
	mockAPI := new(testutil.MockWebsiteAPI)
	mockExporter := new(testutil.MockExporter)
	mockAPI.On("MessagesByCategory", "#пусто").Return([]domain.Message{}, nil)

	svc := newVocabService(mockRepo, mockAPI, mockExporter)

	pdf, count, err := svc.ExportCategory(42, "#пусто")

	assert.NoError(t, err)
	assert.Nil(t, pdf)
	assert.Equal(t, 0, count)
	// Nothing to render means the exporter is never invoked.
	mockExporter.AssertNotCalled(t, "Render", mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "IncrementStat", int64(42), domain.StatPDFsGenerated)
}

func TestVocabService_ExportCategoryFetchError(t *testing.T) {
	websiteErr := errors.New("boom")

	mockAPI := new(testutil.MockWebsiteAPI)
	mockAPI.On("MessagesByCategory", "#слова").Return(nil, websiteErr)

	svc := newVocabService(new(testutil.MockUserRepository), mockAPI, new(testutil.MockExporter))

	_, _, err := svc.ExportCategory(42, "#слова")

	assert.ErrorIs(t, err, websiteErr)
}

func TestVocabService_ExportCategoryRenderError(t *testing.T) {
	renderErr := errors.New("render failed")

	mockRepo := new(testutil.MockUserRepository)
	mockAPI := new(testutil.MockWebsiteAPI)
	mockExporter := new(testutil.MockExporter)
	mockAPI.On("MessagesByCategory", "#слова").Return([]domain.Message{{Text: "x", Category: "#слова"}}, nil)
	mockExporter.On("Render", "#слова", mock.Anything).Return(nil, renderErr)

	svc := newVocabService(mockRepo, mockAPI, mockExporter)

	_, _, err := svc.ExportCategory(42, "#слова")

	assert.ErrorIs(t, err, renderErr)
	mockRepo.AssertNotCalled(t, "IncrementStat", int64(42), domain.StatPDFsGenerated)
}
