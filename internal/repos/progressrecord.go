package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/linguadex-backend/internal/logger"
	"github.com/yungbote/linguadex-backend/internal/types"
)

type ProgressRecordRepo interface {
	Create(ctx context.Context, tx *gorm.DB, records []*types.ProgressRecord) ([]*types.ProgressRecord, error)
	GetByUserAndDate(ctx context.Context, tx *gorm.DB, userID uuid.UUID, date time.Time) (*types.ProgressRecord, error)
	ListByUserSince(ctx context.Context, tx *gorm.DB, userID uuid.UUID, since time.Time) ([]*types.ProgressRecord, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, recordID uuid.UUID, fields map[string]interface{}) error
}

type progressRecordRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProgressRecordRepo(db *gorm.DB, baseLog *logger.Logger) ProgressRecordRepo {
	repoLog := baseLog.With("repo", "ProgressRecordRepo")
	return &progressRecordRepo{db: db, log: repoLog}
}

func (pr *progressRecordRepo) Create(ctx context.Context, tx *gorm.DB, records []*types.ProgressRecord) ([]*types.ProgressRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	if len(records) == 0 {
		return []*types.ProgressRecord{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// GetByUserAndDate matches on the calendar day of date, not the exact instant.
func (pr *progressRecordRepo) GetByUserAndDate(ctx context.Context, tx *gorm.DB, userID uuid.UUID, date time.Time) (*types.ProgressRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	var result types.ProgressRecord
	if err := transaction.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (pr *progressRecordRepo) ListByUserSince(ctx context.Context, tx *gorm.DB, userID uuid.UUID, since time.Time) ([]*types.ProgressRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var results []*types.ProgressRecord
	if err := transaction.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, since).
		Order("date ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *progressRecordRepo) UpdateFields(ctx context.Context, tx *gorm.DB, recordID uuid.UUID, fields map[string]interface{}) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	if len(fields) == 0 {
		return nil
	}

	return transaction.WithContext(ctx).
		Model(&types.ProgressRecord{}).
		Where("id = ?", recordID).
		Updates(fields).Error
}
