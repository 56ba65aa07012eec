package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yungbote/linguadex-backend/internal/logger"
)

type TranslationService interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

type translationService struct {
	log        *logger.Logger
	client     CompletionClient
	callLogger CallLogger
}

func NewTranslationService(log *logger.Logger, client CompletionClient, callLogger CallLogger) TranslationService {
	serviceLog := log.With("service", "TranslationService")
	return &translationService{
		log:        serviceLog,
		client:     client,
		callLogger: callLogger,
	}
}

func (ts *translationService) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("Text is required")
	}
	prompt := buildTranslationPrompt(text, sourceLang, targetLang)

	translation, err := ts.client.Complete(ctx, CompletionRequest{
		System:      "You are a helpful translation assistant.",
		User:        prompt,
		Temperature: 0.3,
		MaxTokens:   1024,
	})
	if err != nil {
		ts.log.Warn("Translation failed", "error", err)
		ts.callLogger.Record(ctx, nil, "translate", prompt, "", err)
		return "", fmt.Errorf("Translation failed: %w", err)
	}
	ts.callLogger.Record(ctx, nil, "translate", prompt, translation, nil)

	// Models often wrap the translation in quotes despite instructions.
	return strings.Trim(translation, `"`), nil
}
