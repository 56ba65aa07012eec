package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/linguadex-backend/internal/activity"
	"github.com/yungbote/linguadex-backend/internal/logger"
	"github.com/yungbote/linguadex-backend/internal/normalization"
	"github.com/yungbote/linguadex-backend/internal/repos"
	"github.com/yungbote/linguadex-backend/internal/types"
)

type VocabularyService interface {
	ListUserVocabulary(ctx context.Context, userID uuid.UUID) ([]*types.UserVocabulary, error)
	// AddWordToUser records a word against the user, creating the shared
	// vocabulary row on first sight. Returns true when a new user pairing
	// was created; an existing pairing keeps its learned proficiency and
	// returns false. Use UpdateProficiency for explicit adjustments.
	AddWordToUser(ctx context.Context, userID uuid.UUID, word, language, translation string, proficiency float64) (bool, error)
	UpdateProficiency(ctx context.Context, userID, vocabularyID uuid.UUID, proficiency float64) error
	SuggestVocabulary(ctx context.Context, user *types.User, topic string, count int) ([]interface{}, error)
}

type vocabularyService struct {
	db                 *gorm.DB
	log                *logger.Logger
	client             CompletionClient
	callLogger         CallLogger
	vocabularyRepo     repos.VocabularyRepo
	userVocabularyRepo repos.UserVocabularyRepo
}

func NewVocabularyService(
	db *gorm.DB,
	log *logger.Logger,
	client CompletionClient,
	callLogger CallLogger,
	vocabularyRepo repos.VocabularyRepo,
	userVocabularyRepo repos.UserVocabularyRepo,
) VocabularyService {
	serviceLog := log.With("service", "VocabularyService")
	return &vocabularyService{
		db:                 db,
		log:                serviceLog,
		client:             client,
		callLogger:         callLogger,
		vocabularyRepo:     vocabularyRepo,
		userVocabularyRepo: userVocabularyRepo,
	}
}

func (vs *vocabularyService) ListUserVocabulary(ctx context.Context, userID uuid.UUID) ([]*types.UserVocabulary, error) {
	return vs.userVocabularyRepo.ListByUser(ctx, nil, userID)
}

func (vs *vocabularyService) AddWordToUser(ctx context.Context, userID uuid.UUID, word, language, translation string, proficiency float64) (bool, error) {
	word = normalization.ParseInputString(word)
	if word == "" {
		return false, fmt.Errorf("A word is required")
	}
	proficiency = clampProficiency(proficiency)

	created := false
	err := vs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		vocab, vErr := vs.vocabularyRepo.GetByWordAndLanguage(ctx, tx, word, language)
		if errors.Is(vErr, gorm.ErrRecordNotFound) {
			vocab = &types.Vocabulary{
				ID:          uuid.New(),
				Word:        word,
				Language:    language,
				Translation: translation,
			}
			if _, cErr := vs.vocabularyRepo.Create(ctx, tx, []*types.Vocabulary{vocab}); cErr != nil {
				return fmt.Errorf("Failed to create vocabulary word: %w", cErr)
			}
		} else if vErr != nil {
			return fmt.Errorf("Failed to look up vocabulary word: %w", vErr)
		}

		_, pErr := vs.userVocabularyRepo.GetByUserAndVocabulary(ctx, tx, userID, vocab.ID)
		if pErr == nil {
			// Re-encountering a known word must not reset its proficiency.
			return nil
		}
		if !errors.Is(pErr, gorm.ErrRecordNotFound) {
			return fmt.Errorf("Failed to look up user vocabulary entry: %w", pErr)
		}

		pair := &types.UserVocabulary{
			ID:           uuid.New(),
			UserID:       userID,
			VocabularyID: vocab.ID,
			Proficiency:  proficiency,
			LastReviewed: time.Now(),
		}
		if _, cErr := vs.userVocabularyRepo.Create(ctx, tx, []*types.UserVocabulary{pair}); cErr != nil {
			return fmt.Errorf("Failed to create user vocabulary entry: %w", cErr)
		}
		created = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return created, nil
}

func (vs *vocabularyService) UpdateProficiency(ctx context.Context, userID, vocabularyID uuid.UUID, proficiency float64) error {
	pair, err := vs.userVocabularyRepo.GetByUserAndVocabulary(ctx, nil, userID, vocabularyID)
	if err != nil {
		return fmt.Errorf("Vocabulary entry not found: %w", err)
	}
	return vs.userVocabularyRepo.UpdateProficiency(ctx, nil, pair.ID, clampProficiency(proficiency))
}

// SuggestVocabulary asks the model for new words. Failures degrade to an
// empty list; suggestion is an enrichment, never a hard dependency.
func (vs *vocabularyService) SuggestVocabulary(ctx context.Context, user *types.User, topic string, count int) ([]interface{}, error) {
	if count <= 0 {
		count = 5
	}
	prompt := buildSuggestionPrompt(user, topic, count)

	raw, err := vs.client.Complete(ctx, CompletionRequest{
		System:      "You are a language learning vocabulary assistant.",
		User:        prompt,
		Temperature: 0.5,
		MaxTokens:   1024,
	})
	if err != nil {
		vs.log.Warn("Vocabulary suggestion failed", "user_id", user.ID, "error", err)
		vs.callLogger.Record(ctx, &user.ID, "suggest_vocabulary", prompt, "", err)
		return []interface{}{}, nil
	}

	parsed, normErr := activity.Normalize(raw)
	if normErr != nil {
		vs.log.Warn("Vocabulary suggestion unparseable", "user_id", user.ID, "error", normErr)
		vs.callLogger.Record(ctx, &user.ID, "suggest_vocabulary", prompt, raw, normErr)
		return []interface{}{}, nil
	}
	vs.callLogger.Record(ctx, &user.ID, "suggest_vocabulary", prompt, raw, nil)

	suggestions, _ := parsed["vocabulary"].([]interface{})
	if suggestions == nil {
		suggestions = []interface{}{}
	}
	return suggestions, nil
}

func clampProficiency(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
