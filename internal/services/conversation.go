package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/linguadex-backend/internal/activity"
	"github.com/yungbote/linguadex-backend/internal/logger"
	"github.com/yungbote/linguadex-backend/internal/repos"
	"github.com/yungbote/linguadex-backend/internal/types"
)

// apologyReply stands in for the assistant when the completion endpoint is
// unreachable. Conversations degrade gracefully rather than erroring.
const apologyReply = "I'm sorry, I'm having trouble generating a response right now. Let's try again."

type ConversationService interface {
	StartConversation(ctx context.Context, userID uuid.UUID, topic string) (*types.Conversation, *types.Message, error)
	ListConversations(ctx context.Context, userID uuid.UUID) ([]*types.Conversation, error)
	GetConversation(ctx context.Context, userID, conversationID uuid.UUID) (*types.Conversation, []*types.Message, error)
	DeleteConversation(ctx context.Context, userID, conversationID uuid.UUID) error
	SendMessage(ctx context.Context, userID, conversationID uuid.UUID, content string) (*types.Message, activity.Parsed, error)
}

type conversationService struct {
	db                *gorm.DB
	log               *logger.Logger
	client            CompletionClient
	callLogger        CallLogger
	conversationRepo  repos.ConversationRepo
	messageRepo       repos.MessageRepo
	userRepo          repos.UserRepo
	vocabularyService VocabularyService
	progressService   ProgressService
}

func NewConversationService(
	db *gorm.DB,
	log *logger.Logger,
	client CompletionClient,
	callLogger CallLogger,
	conversationRepo repos.ConversationRepo,
	messageRepo repos.MessageRepo,
	userRepo repos.UserRepo,
	vocabularyService VocabularyService,
	progressService ProgressService,
) ConversationService {
	serviceLog := log.With("service", "ConversationService")
	return &conversationService{
		db:                db,
		log:               serviceLog,
		client:            client,
		callLogger:        callLogger,
		conversationRepo:  conversationRepo,
		messageRepo:       messageRepo,
		userRepo:          userRepo,
		vocabularyService: vocabularyService,
		progressService:   progressService,
	}
}

func (cs *conversationService) StartConversation(ctx context.Context, userID uuid.UUID, topic string) (*types.Conversation, *types.Message, error) {
	user, uErr := cs.userRepo.GetByID(ctx, nil, userID)
	if uErr != nil {
		return nil, nil, fmt.Errorf("Failed to load user: %w", uErr)
	}

	conversation := &types.Conversation{
		ID:       uuid.New(),
		UserID:   userID,
		Topic:    topic,
		Language: user.TargetLanguage,
	}
	if _, cErr := cs.conversationRepo.Create(ctx, nil, []*types.Conversation{conversation}); cErr != nil {
		return nil, nil, fmt.Errorf("Failed to create conversation: %w", cErr)
	}

	greeting := cs.generateReply(ctx, user, topic, nil, "")
	greetingMessage := &types.Message{
		ID:             uuid.New(),
		ConversationID: conversation.ID,
		IsUser:         false,
		Content:        greeting,
	}
	if _, mErr := cs.messageRepo.Create(ctx, nil, []*types.Message{greetingMessage}); mErr != nil {
		return nil, nil, fmt.Errorf("Failed to store greeting: %w", mErr)
	}

	return conversation, greetingMessage, nil
}

func (cs *conversationService) ListConversations(ctx context.Context, userID uuid.UUID) ([]*types.Conversation, error) {
	return cs.conversationRepo.ListByUser(ctx, nil, userID)
}

func (cs *conversationService) GetConversation(ctx context.Context, userID, conversationID uuid.UUID) (*types.Conversation, []*types.Message, error) {
	conversation, err := cs.ownedConversation(ctx, userID, conversationID)
	if err != nil {
		return nil, nil, err
	}
	messages, mErr := cs.messageRepo.ListByConversation(ctx, nil, conversationID)
	if mErr != nil {
		return nil, nil, fmt.Errorf("Failed to list messages: %w", mErr)
	}
	return conversation, messages, nil
}

func (cs *conversationService) DeleteConversation(ctx context.Context, userID, conversationID uuid.UUID) error {
	if _, err := cs.ownedConversation(ctx, userID, conversationID); err != nil {
		return err
	}
	return cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := cs.messageRepo.DeleteByConversation(ctx, tx, conversationID); err != nil {
			return fmt.Errorf("Failed to delete messages: %w", err)
		}
		if err := cs.conversationRepo.Delete(ctx, tx, conversationID); err != nil {
			return fmt.Errorf("Failed to delete conversation: %w", err)
		}
		return nil
	})
}

// SendMessage stores the user turn, generates the assistant turn against
// the recent history window, then analyzes the user's message and folds the
// result into vocabulary and progress records. Analysis is best effort:
// any failure there degrades to neutral values and never blocks the reply.
func (cs *conversationService) SendMessage(ctx context.Context, userID, conversationID uuid.UUID, content string) (*types.Message, activity.Parsed, error) {
	conversation, err := cs.ownedConversation(ctx, userID, conversationID)
	if err != nil {
		return nil, nil, err
	}
	user, uErr := cs.userRepo.GetByID(ctx, nil, userID)
	if uErr != nil {
		return nil, nil, fmt.Errorf("Failed to load user: %w", uErr)
	}

	userMessage := &types.Message{
		ID:             uuid.New(),
		ConversationID: conversationID,
		IsUser:         true,
		Content:        content,
	}
	if _, mErr := cs.messageRepo.Create(ctx, nil, []*types.Message{userMessage}); mErr != nil {
		return nil, nil, fmt.Errorf("Failed to store message: %w", mErr)
	}

	history, hErr := cs.messageRepo.ListRecentByConversation(ctx, nil, conversationID, MaxConversationHistory)
	if hErr != nil {
		cs.log.Warn("Failed to load conversation history", "error", hErr)
		history = []*types.Message{userMessage}
	}

	reply := cs.generateReply(ctx, user, conversation.Topic, history, "")
	replyMessage := &types.Message{
		ID:             uuid.New(),
		ConversationID: conversationID,
		IsUser:         false,
		Content:        reply,
	}
	if _, mErr := cs.messageRepo.Create(ctx, nil, []*types.Message{replyMessage}); mErr != nil {
		return nil, nil, fmt.Errorf("Failed to store reply: %w", mErr)
	}

	analysis := cs.analyzeMessage(ctx, user, content)
	cs.recordAnalysis(ctx, user, analysis)

	return replyMessage, analysis, nil
}

func (cs *conversationService) ownedConversation(ctx context.Context, userID, conversationID uuid.UUID) (*types.Conversation, error) {
	conversation, err := cs.conversationRepo.GetByID(ctx, nil, conversationID)
	if err != nil {
		return nil, fmt.Errorf("Conversation not found: %w", err)
	}
	if conversation.UserID != userID {
		return nil, ErrForbidden
	}
	return conversation, nil
}

// generateReply runs one conversation completion. trailing is an optional
// user turn not yet in history.
func (cs *conversationService) generateReply(ctx context.Context, user *types.User, topic string, history []*types.Message, trailing string) string {
	chatHistory := make([]ChatMessage, 0, len(history))
	for _, message := range history {
		role := "assistant"
		if message.IsUser {
			role = "user"
		}
		chatHistory = append(chatHistory, ChatMessage{Role: role, Content: message.Content})
	}

	systemPrompt := buildConversationSystemPrompt(user, topic)
	userTurn := trailing
	if len(chatHistory) == 0 && userTurn == "" {
		userTurn = "Please greet me and start our conversation."
	}

	reply, err := cs.client.Complete(ctx, CompletionRequest{
		System:      systemPrompt,
		History:     chatHistory,
		User:        userTurn,
		Temperature: 0.7,
		MaxTokens:   1024,
	})
	if err != nil {
		cs.log.Warn("Conversation completion failed", "user_id", user.ID, "error", err)
		cs.callLogger.Record(ctx, &user.ID, "conversation", systemPrompt, "", err)
		return apologyReply
	}
	cs.callLogger.Record(ctx, &user.ID, "conversation", systemPrompt, reply, nil)
	return reply
}

// analyzeMessage returns the model's analysis of a learner message, or the
// neutral analysis when the call or parse fails.
func (cs *conversationService) analyzeMessage(ctx context.Context, user *types.User, content string) activity.Parsed {
	prompt := buildAnalysisPrompt(content, user.TargetLanguage, user.CurrentLevel)

	raw, err := cs.client.Complete(ctx, CompletionRequest{
		System:      "You are a language learning analysis assistant.",
		User:        prompt,
		Temperature: 0.3,
		MaxTokens:   1024,
	})
	if err != nil {
		cs.log.Warn("Message analysis failed", "user_id", user.ID, "error", err)
		cs.callLogger.Record(ctx, &user.ID, "analysis", prompt, "", err)
		return neutralAnalysis()
	}

	parsed, normErr := activity.Normalize(raw)
	if normErr != nil {
		cs.log.Warn("Message analysis unparseable", "user_id", user.ID, "error", normErr)
		cs.callLogger.Record(ctx, &user.ID, "analysis", prompt, raw, normErr)
		return neutralAnalysis()
	}
	cs.callLogger.Record(ctx, &user.ID, "analysis", prompt, raw, nil)
	return parsed
}

func neutralAnalysis() activity.Parsed {
	return activity.Parsed{
		"errors":      []interface{}{},
		"vocabulary":  []interface{}{},
		"grammar":     map[string]interface{}{"structures": []interface{}{}, "complexity": 0.5, "appropriate_for_level": true},
		"fluency":     0.5,
		"suggestions": []interface{}{},
	}
}

// recordAnalysis folds one analysis into the user's vocabulary and daily
// progress.
func (cs *conversationService) recordAnalysis(ctx context.Context, user *types.User, analysis activity.Parsed) {
	addedVocabulary := 0
	if entries, ok := analysis["vocabulary"].([]interface{}); ok {
		for _, entry := range entries {
			record, ok := entry.(map[string]interface{})
			if !ok {
				continue
			}
			word, _ := record["word"].(string)
			if word == "" {
				continue
			}
			mastery := 0.1
			if m, ok := record["mastery"].(float64); ok {
				mastery = m
			}
			added, avErr := cs.vocabularyService.AddWordToUser(ctx, user.ID, word, user.TargetLanguage, "", mastery)
			if avErr != nil {
				cs.log.Warn("Failed to add analyzed vocabulary", "word", word, "error", avErr)
				continue
			}
			if added {
				addedVocabulary++
			}
		}
	}

	mistakes := 0
	if errorsList, ok := analysis["errors"].([]interface{}); ok {
		mistakes = len(errorsList)
	}
	fluency := 0.0
	if f, ok := analysis["fluency"].(float64); ok {
		fluency = f
	}

	delta := ProgressDelta{
		VocabularyCount:      addedVocabulary,
		ConversationDuration: 1,
		MistakesMade:         mistakes,
		FluencyScore:         fluency,
	}
	if rpErr := cs.progressService.RecordProgress(ctx, user.ID, delta); rpErr != nil {
		cs.log.Warn("Failed to record conversation progress", "user_id", user.ID, "error", rpErr)
	}

	if _, ulErr := cs.progressService.UpdateUserLevel(ctx, user.ID); ulErr != nil {
		cs.log.Warn("Failed to update user level", "user_id", user.ID, "error", ulErr)
	}

	_ = cs.userRepo.UpdateFields(ctx, nil, user.ID, map[string]interface{}{"last_active": time.Now()})
}
