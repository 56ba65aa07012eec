package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/linguadex-backend/internal/logger"
	"github.com/yungbote/linguadex-backend/internal/types"
)

type LLMCallLogRepo interface {
	Create(ctx context.Context, tx *gorm.DB, logs []*types.LLMCallLog) ([]*types.LLMCallLog, error)
}

type llmCallLogRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLLMCallLogRepo(db *gorm.DB, baseLog *logger.Logger) LLMCallLogRepo {
	repoLog := baseLog.With("repo", "LLMCallLogRepo")
	return &llmCallLogRepo{db: db, log: repoLog}
}

func (lr *llmCallLogRepo) Create(ctx context.Context, tx *gorm.DB, logs []*types.LLMCallLog) ([]*types.LLMCallLog, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	if len(logs) == 0 {
		return []*types.LLMCallLog{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
