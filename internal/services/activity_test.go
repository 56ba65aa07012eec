package services

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/linguadex-backend/internal/activity"
	"github.com/yungbote/linguadex-backend/internal/logger"
	"github.com/yungbote/linguadex-backend/internal/types"
)

type stubCompletionClient struct {
	mu      sync.Mutex
	reply   string
	err     error
	lastReq CompletionRequest
	calls   int
}

func (s *stubCompletionClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastReq = req
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func (s *stubCompletionClient) Model() string {
	return "test-model"
}

type noopCallLogger struct{}

func (noopCallLogger) Record(ctx context.Context, userID *uuid.UUID, callType, prompt, response string, callErr error) {
}

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	require.NoError(t, err)
	return log
}

func testUser() *types.User {
	return &types.User{
		ID:             uuid.New(),
		Username:       "mika",
		TargetLanguage: "es",
		NativeLanguage: "en",
		CurrentLevel:   "Beginner",
	}
}

func TestGenerateRejectsUnknownType(t *testing.T) {
	client := &stubCompletionClient{}
	svc := NewActivityService(newTestLogger(t), client, noopCallLogger{}, rand.New(rand.NewSource(1)))

	_, err := svc.Generate(context.Background(), testUser(), "karaoke", "")
	require.Error(t, err)
	assert.Zero(t, client.calls)
}

func TestGenerateCompletesModelOutput(t *testing.T) {
	client := &stubCompletionClient{reply: `{"title": "Ordering Tapas", "key_vocabulary": ["tapa", "ración"]}`}
	svc := NewActivityService(newTestLogger(t), client, noopCallLogger{}, rand.New(rand.NewSource(1)))

	result, err := svc.Generate(context.Background(), testUser(), activity.TypeConversation, "Food")
	require.NoError(t, err)

	assert.Equal(t, "Ordering Tapas", result["title"])
	for _, field := range activity.Shape(activity.TypeConversation) {
		assert.Contains(t, result, field)
	}
	vocab := result["key_vocabulary"].([]interface{})
	assert.Equal(t, "tapa", vocab[0])
	assert.GreaterOrEqual(t, len(vocab), activity.MinListLength)
}

func TestGenerateUsesActivityParameters(t *testing.T) {
	client := &stubCompletionClient{reply: `{"title": "x"}`}
	svc := NewActivityService(newTestLogger(t), client, noopCallLogger{}, rand.New(rand.NewSource(1)))

	_, err := svc.Generate(context.Background(), testUser(), activity.TypeReading, "Food")
	require.NoError(t, err)

	assert.Equal(t, 0.7, client.lastReq.Temperature)
	assert.Equal(t, 1024, client.lastReq.MaxTokens)
	assert.Contains(t, client.lastReq.User, "Topic: Food")
}

// Generate runs under gin's concurrent handlers, so a nil rng must stay
// safe when parallel requests all draw a random topic.
func TestGenerateConcurrentRequestsWithRandomTopic(t *testing.T) {
	client := &stubCompletionClient{reply: `{"title": "x"}`}
	svc := NewActivityService(newTestLogger(t), client, noopCallLogger{}, nil)
	user := testUser()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				result, err := svc.Generate(context.Background(), user, activity.TypeConversation, "")
				assert.NoError(t, err)
				assert.Contains(t, result, "title")
			}
		}()
	}
	wg.Wait()
}

func TestGenerateFallsBackOnCompletionFailure(t *testing.T) {
	client := &stubCompletionClient{err: &CompletionError{StatusCode: 502, Err: fmt.Errorf("bad gateway")}}
	svc := NewActivityService(newTestLogger(t), client, noopCallLogger{}, rand.New(rand.NewSource(1)))
	user := testUser()

	result, err := svc.Generate(context.Background(), user, activity.TypeConversation, "Travel")
	require.NoError(t, err)
	assert.Equal(t, activity.Fallback(activity.TypeConversation, "es", "en", "Beginner", "Travel"), result)
	assert.Equal(t, 1, client.calls)
}

func TestGenerateFallsBackOnUnparseableOutput(t *testing.T) {
	client := &stubCompletionClient{reply: "Sure! Here is your activity:"}
	svc := NewActivityService(newTestLogger(t), client, noopCallLogger{}, rand.New(rand.NewSource(1)))
	user := testUser()

	result, err := svc.Generate(context.Background(), user, activity.TypeReading, "Travel")
	require.NoError(t, err)
	assert.Equal(t, activity.Fallback(activity.TypeReading, "es", "en", "Beginner", "Travel"), result)
}

func TestTranslateStripsWrappingQuotes(t *testing.T) {
	client := &stubCompletionClient{reply: `"Hola, mundo"`}
	svc := NewTranslationService(newTestLogger(t), client, noopCallLogger{})

	translation, err := svc.Translate(context.Background(), "Hello, world", "en", "es")
	require.NoError(t, err)
	assert.Equal(t, "Hola, mundo", translation)
	assert.Equal(t, 0.3, client.lastReq.Temperature)
}

func TestTranslateRequiresText(t *testing.T) {
	client := &stubCompletionClient{}
	svc := NewTranslationService(newTestLogger(t), client, noopCallLogger{})

	_, err := svc.Translate(context.Background(), "   ", "en", "es")
	require.Error(t, err)
	assert.Zero(t, client.calls)
}

func TestTranslatePropagatesCompletionFailure(t *testing.T) {
	client := &stubCompletionClient{err: &CompletionError{Err: fmt.Errorf("timeout")}}
	svc := NewTranslationService(newTestLogger(t), client, noopCallLogger{})

	_, err := svc.Translate(context.Background(), "Hello", "en", "es")
	require.Error(t, err)
}

func TestSuggestVocabularyParsesList(t *testing.T) {
	client := &stubCompletionClient{reply: "```json\n{\"vocabulary\": [{\"word\": \"pan\", \"translation\": \"bread\"}]}\n```"}
	svc := NewVocabularyService(nil, newTestLogger(t), client, noopCallLogger{}, nil, nil)

	suggestions, err := svc.SuggestVocabulary(context.Background(), testUser(), "food", 5)
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	record := suggestions[0].(map[string]interface{})
	assert.Equal(t, "pan", record["word"])
}

func TestSuggestVocabularyDegradesToEmpty(t *testing.T) {
	tests := []struct {
		name   string
		client *stubCompletionClient
	}{
		{name: "completion failure", client: &stubCompletionClient{err: &CompletionError{Err: fmt.Errorf("down")}}},
		{name: "unparseable output", client: &stubCompletionClient{reply: "no json here"}},
		{name: "missing vocabulary key", client: &stubCompletionClient{reply: `{"words": []}`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewVocabularyService(nil, newTestLogger(t), tt.client, noopCallLogger{}, nil, nil)
			suggestions, err := svc.SuggestVocabulary(context.Background(), testUser(), "", 5)
			require.NoError(t, err)
			assert.Empty(t, suggestions)
		})
	}
}
