package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/yungbote/linguadex-backend/internal/types"
)

// openTestDB provides a real transaction scope; all table access in these
// tests goes through the stub repos.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db
}

type stubVocabularyRepo struct {
	existing *types.Vocabulary
	created  []*types.Vocabulary
}

func (s *stubVocabularyRepo) Create(ctx context.Context, tx *gorm.DB, words []*types.Vocabulary) ([]*types.Vocabulary, error) {
	s.created = append(s.created, words...)
	return words, nil
}

func (s *stubVocabularyRepo) GetByID(ctx context.Context, tx *gorm.DB, wordID uuid.UUID) (*types.Vocabulary, error) {
	if s.existing != nil && s.existing.ID == wordID {
		return s.existing, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubVocabularyRepo) GetByWordAndLanguage(ctx context.Context, tx *gorm.DB, word, language string) (*types.Vocabulary, error) {
	if s.existing != nil && s.existing.Word == word && s.existing.Language == language {
		return s.existing, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubVocabularyRepo) ListByLanguage(ctx context.Context, tx *gorm.DB, language string, limit int) ([]*types.Vocabulary, error) {
	return []*types.Vocabulary{}, nil
}

type stubUserVocabularyRepo struct {
	existing           *types.UserVocabulary
	created            []*types.UserVocabulary
	proficiencyUpdates []float64
}

func (s *stubUserVocabularyRepo) Create(ctx context.Context, tx *gorm.DB, entries []*types.UserVocabulary) ([]*types.UserVocabulary, error) {
	s.created = append(s.created, entries...)
	return entries, nil
}

func (s *stubUserVocabularyRepo) GetByUserAndVocabulary(ctx context.Context, tx *gorm.DB, userID, vocabularyID uuid.UUID) (*types.UserVocabulary, error) {
	if s.existing != nil && s.existing.VocabularyID == vocabularyID {
		return s.existing, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserVocabularyRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.UserVocabulary, error) {
	return []*types.UserVocabulary{}, nil
}

func (s *stubUserVocabularyRepo) ListByUserBelowProficiency(ctx context.Context, tx *gorm.DB, userID uuid.UUID, threshold float64, limit int) ([]*types.UserVocabulary, error) {
	return []*types.UserVocabulary{}, nil
}

func (s *stubUserVocabularyRepo) CountByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error) {
	return 0, nil
}

func (s *stubUserVocabularyRepo) UpdateProficiency(ctx context.Context, tx *gorm.DB, entryID uuid.UUID, proficiency float64) error {
	s.proficiencyUpdates = append(s.proficiencyUpdates, proficiency)
	return nil
}

func TestAddWordToUserCreatesPairing(t *testing.T) {
	vocabRepo := &stubVocabularyRepo{}
	pairRepo := &stubUserVocabularyRepo{}
	svc := NewVocabularyService(openTestDB(t), newTestLogger(t), &stubCompletionClient{}, noopCallLogger{}, vocabRepo, pairRepo)

	created, err := svc.AddWordToUser(context.Background(), uuid.New(), "  Hola ", "es", "hello", 0.2)
	require.NoError(t, err)
	assert.True(t, created)

	require.Len(t, vocabRepo.created, 1)
	assert.Equal(t, "hola", vocabRepo.created[0].Word)
	require.Len(t, pairRepo.created, 1)
	assert.Equal(t, 0.2, pairRepo.created[0].Proficiency)
}

func TestAddWordToUserKeepsExistingProficiency(t *testing.T) {
	word := &types.Vocabulary{ID: uuid.New(), Word: "hola", Language: "es"}
	pair := &types.UserVocabulary{ID: uuid.New(), VocabularyID: word.ID, Proficiency: 0.9}
	vocabRepo := &stubVocabularyRepo{existing: word}
	pairRepo := &stubUserVocabularyRepo{existing: pair}
	svc := NewVocabularyService(openTestDB(t), newTestLogger(t), &stubCompletionClient{}, noopCallLogger{}, vocabRepo, pairRepo)

	created, err := svc.AddWordToUser(context.Background(), uuid.New(), "hola", "es", "", 0.1)
	require.NoError(t, err)
	assert.False(t, created)

	assert.Empty(t, pairRepo.created)
	assert.Empty(t, pairRepo.proficiencyUpdates)
	assert.Equal(t, 0.9, pair.Proficiency)
}

func TestAddWordToUserClampsProficiency(t *testing.T) {
	vocabRepo := &stubVocabularyRepo{}
	pairRepo := &stubUserVocabularyRepo{}
	svc := NewVocabularyService(openTestDB(t), newTestLogger(t), &stubCompletionClient{}, noopCallLogger{}, vocabRepo, pairRepo)

	created, err := svc.AddWordToUser(context.Background(), uuid.New(), "hola", "es", "", 1.5)
	require.NoError(t, err)
	assert.True(t, created)
	require.Len(t, pairRepo.created, 1)
	assert.Equal(t, 1.0, pairRepo.created[0].Proficiency)
}

func TestAddWordToUserRequiresWord(t *testing.T) {
	svc := NewVocabularyService(openTestDB(t), newTestLogger(t), &stubCompletionClient{}, noopCallLogger{}, &stubVocabularyRepo{}, &stubUserVocabularyRepo{})

	_, err := svc.AddWordToUser(context.Background(), uuid.New(), "   ", "es", "", 0.2)
	require.Error(t, err)
}
