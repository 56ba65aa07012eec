package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/linguadex-backend/internal/logger"
	"github.com/yungbote/linguadex-backend/internal/types"
)

type UserVocabularyRepo interface {
	Create(ctx context.Context, tx *gorm.DB, entries []*types.UserVocabulary) ([]*types.UserVocabulary, error)
	GetByUserAndVocabulary(ctx context.Context, tx *gorm.DB, userID, vocabularyID uuid.UUID) (*types.UserVocabulary, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.UserVocabulary, error)
	ListByUserBelowProficiency(ctx context.Context, tx *gorm.DB, userID uuid.UUID, threshold float64, limit int) ([]*types.UserVocabulary, error)
	CountByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error)
	UpdateProficiency(ctx context.Context, tx *gorm.DB, entryID uuid.UUID, proficiency float64) error
}

type userVocabularyRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserVocabularyRepo(db *gorm.DB, baseLog *logger.Logger) UserVocabularyRepo {
	repoLog := baseLog.With("repo", "UserVocabularyRepo")
	return &userVocabularyRepo{db: db, log: repoLog}
}

func (uvr *userVocabularyRepo) Create(ctx context.Context, tx *gorm.DB, entries []*types.UserVocabulary) ([]*types.UserVocabulary, error) {
	transaction := tx
	if transaction == nil {
		transaction = uvr.db
	}

	if len(entries) == 0 {
		return []*types.UserVocabulary{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (uvr *userVocabularyRepo) GetByUserAndVocabulary(ctx context.Context, tx *gorm.DB, userID, vocabularyID uuid.UUID) (*types.UserVocabulary, error) {
	transaction := tx
	if transaction == nil {
		transaction = uvr.db
	}

	var result types.UserVocabulary
	if err := transaction.WithContext(ctx).
		Where("user_id = ? AND vocabulary_id = ?", userID, vocabularyID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (uvr *userVocabularyRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.UserVocabulary, error) {
	transaction := tx
	if transaction == nil {
		transaction = uvr.db
	}

	var results []*types.UserVocabulary
	if err := transaction.WithContext(ctx).
		Preload("Vocabulary").
		Where("user_id = ?", userID).
		Order("last_reviewed DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (uvr *userVocabularyRepo) ListByUserBelowProficiency(ctx context.Context, tx *gorm.DB, userID uuid.UUID, threshold float64, limit int) ([]*types.UserVocabulary, error) {
	transaction := tx
	if transaction == nil {
		transaction = uvr.db
	}

	var results []*types.UserVocabulary
	query := transaction.WithContext(ctx).
		Preload("Vocabulary").
		Where("user_id = ? AND proficiency < ?", userID, threshold).
		Order("proficiency ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (uvr *userVocabularyRepo) CountByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = uvr.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.UserVocabulary{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (uvr *userVocabularyRepo) UpdateProficiency(ctx context.Context, tx *gorm.DB, entryID uuid.UUID, proficiency float64) error {
	transaction := tx
	if transaction == nil {
		transaction = uvr.db
	}

	return transaction.WithContext(ctx).
		Model(&types.UserVocabulary{}).
		Where("id = ?", entryID).
		Updates(map[string]interface{}{
			"proficiency":   proficiency,
			"last_reviewed": transaction.NowFunc(),
		}).Error
}
