package services

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/yungbote/linguadex-backend/internal/activity"
	"github.com/yungbote/linguadex-backend/internal/logger"
	"github.com/yungbote/linguadex-backend/internal/repos"
	"github.com/yungbote/linguadex-backend/internal/types"
)

// ActivityService runs the generation pipeline: prompt, completion,
// normalization, schema completion, with the static fallback as the
// terminal branch of every failure. Generate returns an error only for an
// unknown activity type; everything downstream of a valid request yields a
// renderable activity.
type ActivityService interface {
	Types() []string
	Generate(ctx context.Context, user *types.User, activityType, topic string) (activity.Parsed, error)
}

type activityService struct {
	log        *logger.Logger
	client     CompletionClient
	callLogger CallLogger
	rng        *rand.Rand
}

// NewActivityService takes an optional rng for topic selection. A *rand.Rand
// is not safe for concurrent use, so pass nil outside tests; picks then go
// through the locked global source. Inject a seeded rng only in tests that
// need deterministic topics.
func NewActivityService(log *logger.Logger, client CompletionClient, callLogger CallLogger, rng *rand.Rand) ActivityService {
	serviceLog := log.With("service", "ActivityService")
	return &activityService{
		log:        serviceLog,
		client:     client,
		callLogger: callLogger,
		rng:        rng,
	}
}

func (as *activityService) Types() []string {
	return activity.Types()
}

func (as *activityService) Generate(ctx context.Context, user *types.User, activityType, topic string) (activity.Parsed, error) {
	if !activity.IsValidType(activityType) {
		return nil, fmt.Errorf("Unknown activity type %q", activityType)
	}

	req := activity.Request{
		TargetLanguage: user.TargetLanguage,
		NativeLanguage: user.NativeLanguage,
		Level:          user.CurrentLevel,
		Type:           activityType,
		Topic:          topic,
	}
	systemPrompt, userPrompt := activity.BuildPrompt(req, as.rng)

	raw, err := as.client.Complete(ctx, CompletionRequest{
		System:      systemPrompt,
		User:        userPrompt,
		Temperature: 0.7,
		MaxTokens:   1024,
	})
	if err != nil {
		as.log.Warn("Activity completion failed, using fallback",
			"activity_type", activityType,
			"user_id", user.ID,
			"error", err,
		)
		as.callLogger.Record(ctx, &user.ID, "activity", userPrompt, "", err)
		return activity.Fallback(activityType, user.TargetLanguage, user.NativeLanguage, user.CurrentLevel, topic), nil
	}

	parsed, normErr := activity.Normalize(raw)
	if normErr != nil {
		as.log.Warn("Activity response unparseable, using fallback",
			"activity_type", activityType,
			"user_id", user.ID,
			"error", normErr,
		)
		as.callLogger.Record(ctx, &user.ID, "activity", userPrompt, raw, normErr)
		return activity.Fallback(activityType, user.TargetLanguage, user.NativeLanguage, user.CurrentLevel, topic), nil
	}

	as.callLogger.Record(ctx, &user.ID, "activity", userPrompt, raw, nil)
	return activity.Complete(parsed, activityType, user.TargetLanguage), nil
}

// CallLogger persists one row per completion round trip. Recording is best
// effort; a failed insert never affects the caller's result.
type CallLogger interface {
	Record(ctx context.Context, userID *uuid.UUID, callType, prompt, response string, callErr error)
}

type callLogger struct {
	log     *logger.Logger
	repo    repos.LLMCallLogRepo
	modelID string
}

func NewCallLogger(log *logger.Logger, repo repos.LLMCallLogRepo, modelID string) CallLogger {
	return &callLogger{
		log:     log.With("service", "CallLogger"),
		repo:    repo,
		modelID: modelID,
	}
}

func (cl *callLogger) Record(ctx context.Context, userID *uuid.UUID, callType, prompt, response string, callErr error) {
	entry := &types.LLMCallLog{
		ID:       uuid.New(),
		UserID:   userID,
		CallType: callType,
		Model:    cl.modelID,
		Prompt:   prompt,
		Response: response,
		Success:  callErr == nil,
	}
	if callErr != nil {
		entry.Error = callErr.Error()
	}
	if _, err := cl.repo.Create(ctx, nil, []*types.LLMCallLog{entry}); err != nil {
		cl.log.Warn("Failed to record completion call", "call_type", callType, "error", err)
	}
}
