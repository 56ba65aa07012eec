package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/linguadex-backend/internal/logger"
	"github.com/yungbote/linguadex-backend/internal/types"
)

type VocabularyRepo interface {
	Create(ctx context.Context, tx *gorm.DB, words []*types.Vocabulary) ([]*types.Vocabulary, error)
	GetByID(ctx context.Context, tx *gorm.DB, wordID uuid.UUID) (*types.Vocabulary, error)
	GetByWordAndLanguage(ctx context.Context, tx *gorm.DB, word, language string) (*types.Vocabulary, error)
	ListByLanguage(ctx context.Context, tx *gorm.DB, language string, limit int) ([]*types.Vocabulary, error)
}

type vocabularyRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewVocabularyRepo(db *gorm.DB, baseLog *logger.Logger) VocabularyRepo {
	repoLog := baseLog.With("repo", "VocabularyRepo")
	return &vocabularyRepo{db: db, log: repoLog}
}

func (vr *vocabularyRepo) Create(ctx context.Context, tx *gorm.DB, words []*types.Vocabulary) ([]*types.Vocabulary, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}

	if len(words) == 0 {
		return []*types.Vocabulary{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&words).Error; err != nil {
		return nil, err
	}
	return words, nil
}

func (vr *vocabularyRepo) GetByID(ctx context.Context, tx *gorm.DB, wordID uuid.UUID) (*types.Vocabulary, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}

	var result types.Vocabulary
	if err := transaction.WithContext(ctx).
		Where("id = ?", wordID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (vr *vocabularyRepo) GetByWordAndLanguage(ctx context.Context, tx *gorm.DB, word, language string) (*types.Vocabulary, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}

	var result types.Vocabulary
	if err := transaction.WithContext(ctx).
		Where("word = ? AND language = ?", word, language).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (vr *vocabularyRepo) ListByLanguage(ctx context.Context, tx *gorm.DB, language string, limit int) ([]*types.Vocabulary, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}

	var results []*types.Vocabulary
	query := transaction.WithContext(ctx).
		Where("language = ?", language).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
