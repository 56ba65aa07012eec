package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/yungbote/linguadex-backend/internal/languages"
	"github.com/yungbote/linguadex-backend/internal/logger"
	"github.com/yungbote/linguadex-backend/internal/normalization"
	"github.com/yungbote/linguadex-backend/internal/repos"
	"github.com/yungbote/linguadex-backend/internal/types"
)

type UserSettingsUpdate struct {
	NativeLanguage *string
	TargetLanguage *string
	CurrentLevel   *string
}

type UserService interface {
	GetUser(ctx context.Context, userID uuid.UUID) (*types.User, error)
	UpdateSettings(ctx context.Context, userID uuid.UUID, update UserSettingsUpdate) (*types.User, error)
}

type userService struct {
	log      *logger.Logger
	userRepo repos.UserRepo
}

func NewUserService(log *logger.Logger, userRepo repos.UserRepo) UserService {
	serviceLog := log.With("service", "UserService")
	return &userService{log: serviceLog, userRepo: userRepo}
}

func (us *userService) GetUser(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	return us.userRepo.GetByID(ctx, nil, userID)
}

func (us *userService) UpdateSettings(ctx context.Context, userID uuid.UUID, update UserSettingsUpdate) (*types.User, error) {
	fields := map[string]interface{}{}
	if update.NativeLanguage != nil {
		code := normalization.ParseInputString(*update.NativeLanguage)
		if !languages.IsSupported(code) {
			return nil, fmt.Errorf("Unsupported native language code")
		}
		fields["native_language"] = code
	}
	if update.TargetLanguage != nil {
		code := normalization.ParseInputString(*update.TargetLanguage)
		if !languages.IsSupported(code) {
			return nil, fmt.Errorf("Unsupported target language code")
		}
		fields["target_language"] = code
	}
	if update.CurrentLevel != nil {
		if !languages.IsValidLevel(*update.CurrentLevel) {
			return nil, fmt.Errorf("Unknown level")
		}
		fields["current_level"] = *update.CurrentLevel
	}

	if len(fields) > 0 {
		if err := us.userRepo.UpdateFields(ctx, nil, userID, fields); err != nil {
			return nil, fmt.Errorf("Failed to update settings: %w", err)
		}
	}
	return us.userRepo.GetByID(ctx, nil, userID)
}
