package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/linguadex-backend/internal/languages"
	"github.com/yungbote/linguadex-backend/internal/logger"
	"github.com/yungbote/linguadex-backend/internal/repos"
	"github.com/yungbote/linguadex-backend/internal/types"
)

// ProgressDelta is one increment against the user's daily record.
type ProgressDelta struct {
	VocabularyCount      int
	ConversationDuration int
	MistakesMade         int
	MistakesCorrected    int
	FluencyScore         float64
}

type DailyProgress struct {
	Date                 string  `json:"date"`
	VocabularyAdded      int     `json:"vocabulary_added"`
	MinutesPracticed     int     `json:"minutes_practiced"`
	MistakesMade         int     `json:"mistakes_made"`
	MistakesCorrected    int     `json:"mistakes_corrected"`
	FluencyScore         float64 `json:"fluency_score"`
}

type ProgressReport struct {
	UserInfo struct {
		Username             string  `json:"username"`
		TargetLanguage       string  `json:"target_language"`
		CurrentLevel         string  `json:"current_level"`
		NextLevel            string  `json:"next_level,omitempty"`
		LevelProgressPercent float64 `json:"level_progress_percent"`
	} `json:"user_info"`
	Summary struct {
		PeriodDays              int     `json:"period_days"`
		ActiveDays              int     `json:"active_days"`
		TotalVocabularyLearned  int     `json:"total_vocabulary_learned"`
		TotalConversationMinutes int    `json:"total_conversation_minutes"`
		AverageFluencyScore     float64 `json:"average_fluency_score"`
	} `json:"summary"`
	Vocabulary struct {
		TotalWords              int            `json:"total_words"`
		ProficiencyDistribution map[string]int `json:"proficiency_distribution"`
	} `json:"vocabulary"`
	DailyProgress []DailyProgress `json:"daily_progress"`
}

type NextLevelProgress struct {
	CurrentLevel     string `json:"current_level"`
	NextLevel        string `json:"next_level,omitempty"`
	VocabularyNeeded int    `json:"vocabulary_needed"`
}

type Recommendations struct {
	PracticeVocabulary []string          `json:"practice_vocabulary"`
	FocusAreas         []string          `json:"focus_areas"`
	NextLevelProgress  NextLevelProgress `json:"next_level_progress"`
}

type ProgressService interface {
	RecordProgress(ctx context.Context, userID uuid.UUID, delta ProgressDelta) error
	GenerateReport(ctx context.Context, userID uuid.UUID, days int) (*ProgressReport, error)
	GetRecommendations(ctx context.Context, userID uuid.UUID) (*Recommendations, error)
	// UpdateUserLevel promotes the user when their vocabulary count crosses
	// the current level's word goal. Returns true when a promotion happened.
	UpdateUserLevel(ctx context.Context, userID uuid.UUID) (bool, error)
}

type progressService struct {
	db                 *gorm.DB
	log                *logger.Logger
	progressRepo       repos.ProgressRecordRepo
	userRepo           repos.UserRepo
	userVocabularyRepo repos.UserVocabularyRepo
}

func NewProgressService(
	db *gorm.DB,
	log *logger.Logger,
	progressRepo repos.ProgressRecordRepo,
	userRepo repos.UserRepo,
	userVocabularyRepo repos.UserVocabularyRepo,
) ProgressService {
	serviceLog := log.With("service", "ProgressService")
	return &progressService{
		db:                 db,
		log:                serviceLog,
		progressRepo:       progressRepo,
		userRepo:           userRepo,
		userVocabularyRepo: userVocabularyRepo,
	}
}

func (ps *progressService) RecordProgress(ctx context.Context, userID uuid.UUID, delta ProgressDelta) error {
	return ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		record, err := ps.progressRepo.GetByUserAndDate(ctx, tx, userID, now)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			record = &types.ProgressRecord{
				ID:                   uuid.New(),
				UserID:               userID,
				Date:                 now,
				VocabularyCount:      delta.VocabularyCount,
				ConversationDuration: delta.ConversationDuration,
				MistakesMade:         delta.MistakesMade,
				MistakesCorrected:    delta.MistakesCorrected,
				FluencyScore:         delta.FluencyScore,
			}
			if _, cErr := ps.progressRepo.Create(ctx, tx, []*types.ProgressRecord{record}); cErr != nil {
				return fmt.Errorf("Failed to create progress record: %w", cErr)
			}
			return nil
		} else if err != nil {
			return fmt.Errorf("Failed to load progress record: %w", err)
		}

		fluency := record.FluencyScore
		if delta.FluencyScore > 0 {
			if fluency > 0 {
				fluency = (fluency + delta.FluencyScore) / 2
			} else {
				fluency = delta.FluencyScore
			}
		}
		return ps.progressRepo.UpdateFields(ctx, tx, record.ID, map[string]interface{}{
			"vocabulary_count":      record.VocabularyCount + delta.VocabularyCount,
			"conversation_duration": record.ConversationDuration + delta.ConversationDuration,
			"mistakes_made":         record.MistakesMade + delta.MistakesMade,
			"mistakes_corrected":    record.MistakesCorrected + delta.MistakesCorrected,
			"fluency_score":         fluency,
		})
	})
}

func (ps *progressService) GenerateReport(ctx context.Context, userID uuid.UUID, days int) (*ProgressReport, error) {
	if days <= 0 {
		days = 30
	}
	user, uErr := ps.userRepo.GetByID(ctx, nil, userID)
	if uErr != nil {
		return nil, fmt.Errorf("Failed to load user: %w", uErr)
	}

	since := time.Now().AddDate(0, 0, -days)
	records, rErr := ps.progressRepo.ListByUserSince(ctx, nil, userID, since)
	if rErr != nil {
		return nil, fmt.Errorf("Failed to load progress history: %w", rErr)
	}

	daily := groupByDate(records)

	report := &ProgressReport{}
	report.UserInfo.Username = user.Username
	report.UserInfo.TargetLanguage = user.TargetLanguage
	report.UserInfo.CurrentLevel = user.CurrentLevel
	report.UserInfo.NextLevel = languages.NextLevel(user.CurrentLevel)

	totalVocab, totalDuration, fluencySum := 0, 0, 0.0
	for _, day := range daily {
		totalVocab += day.VocabularyAdded
		totalDuration += day.MinutesPracticed
		fluencySum += day.FluencyScore
	}

	report.Summary.PeriodDays = days
	report.Summary.ActiveDays = len(daily)
	report.Summary.TotalVocabularyLearned = totalVocab
	report.Summary.TotalConversationMinutes = totalDuration
	if len(daily) > 0 {
		report.Summary.AverageFluencyScore = fluencySum / float64(len(daily))
	}

	vocab, vErr := ps.userVocabularyRepo.ListByUser(ctx, nil, userID)
	if vErr != nil {
		return nil, fmt.Errorf("Failed to load user vocabulary: %w", vErr)
	}
	distribution := map[string]int{"low": 0, "medium": 0, "high": 0}
	for _, entry := range vocab {
		switch {
		case entry.Proficiency < 0.3:
			distribution["low"]++
		case entry.Proficiency < 0.7:
			distribution["medium"]++
		default:
			distribution["high"]++
		}
	}
	report.Vocabulary.TotalWords = len(vocab)
	report.Vocabulary.ProficiencyDistribution = distribution

	if goal := languages.WordsForLevel(user.CurrentLevel); goal > 0 {
		percent := float64(len(vocab)) / float64(goal) * 100
		report.UserInfo.LevelProgressPercent = math.Min(100, math.Max(0, percent))
	}

	report.DailyProgress = daily
	return report, nil
}

func (ps *progressService) GetRecommendations(ctx context.Context, userID uuid.UUID) (*Recommendations, error) {
	user, uErr := ps.userRepo.GetByID(ctx, nil, userID)
	if uErr != nil {
		return nil, fmt.Errorf("Failed to load user: %w", uErr)
	}

	weak, wErr := ps.userVocabularyRepo.ListByUserBelowProficiency(ctx, nil, userID, 0.5, 10)
	if wErr != nil {
		return nil, fmt.Errorf("Failed to load weak vocabulary: %w", wErr)
	}
	practiceWords := make([]string, 0, len(weak))
	for _, entry := range weak {
		if entry.Vocabulary != nil {
			practiceWords = append(practiceWords, entry.Vocabulary.Word)
		}
	}

	since := time.Now().AddDate(0, 0, -30)
	records, rErr := ps.progressRepo.ListByUserSince(ctx, nil, userID, since)
	if rErr != nil {
		return nil, fmt.Errorf("Failed to load progress history: %w", rErr)
	}

	fluencyTrend := make([]float64, 0, len(records))
	vocabSum := 0
	for _, record := range records {
		if record.FluencyScore > 0 {
			fluencyTrend = append(fluencyTrend, record.FluencyScore)
		}
		vocabSum += record.VocabularyCount
	}
	fluencyImproving := len(fluencyTrend) >= 2 && fluencyTrend[len(fluencyTrend)-1] > fluencyTrend[0]
	vocabRate := 0.0
	if len(records) > 0 {
		vocabRate = float64(vocabSum) / float64(len(records))
	}

	totalWords, cErr := ps.userVocabularyRepo.CountByUser(ctx, nil, userID)
	if cErr != nil {
		return nil, fmt.Errorf("Failed to count user vocabulary: %w", cErr)
	}

	recommendations := &Recommendations{
		PracticeVocabulary: practiceWords,
		FocusAreas:         []string{},
		NextLevelProgress: NextLevelProgress{
			CurrentLevel: user.CurrentLevel,
			NextLevel:    languages.NextLevel(user.CurrentLevel),
		},
	}
	if goal := languages.WordsForLevel(user.CurrentLevel); goal > 0 {
		needed := goal - int(totalWords)
		if needed < 0 {
			needed = 0
		}
		recommendations.NextLevelProgress.VocabularyNeeded = needed
	}
	if !fluencyImproving {
		recommendations.FocusAreas = append(recommendations.FocusAreas, "Conversation practice to improve fluency")
	}
	if vocabRate < 5 {
		recommendations.FocusAreas = append(recommendations.FocusAreas, "Vocabulary acquisition - try to learn more new words")
	}
	return recommendations, nil
}

func (ps *progressService) UpdateUserLevel(ctx context.Context, userID uuid.UUID) (bool, error) {
	user, uErr := ps.userRepo.GetByID(ctx, nil, userID)
	if uErr != nil {
		return false, fmt.Errorf("Failed to load user: %w", uErr)
	}
	next := languages.NextLevel(user.CurrentLevel)
	if next == "" {
		return false, nil
	}
	goal := languages.WordsForLevel(user.CurrentLevel)
	if goal <= 0 {
		return false, nil
	}
	count, cErr := ps.userVocabularyRepo.CountByUser(ctx, nil, userID)
	if cErr != nil {
		return false, fmt.Errorf("Failed to count user vocabulary: %w", cErr)
	}
	if int(count) < goal {
		return false, nil
	}
	if upErr := ps.userRepo.UpdateFields(ctx, nil, userID, map[string]interface{}{"current_level": next}); upErr != nil {
		return false, fmt.Errorf("Failed to promote user level: %w", upErr)
	}
	ps.log.Info("User promoted to next level", "user_id", userID, "level", next)
	return true, nil
}

// groupByDate collapses raw rows into one entry per calendar day, averaging
// fluency the way successive same-day updates do.
func groupByDate(records []*types.ProgressRecord) []DailyProgress {
	index := map[string]int{}
	daily := make([]DailyProgress, 0, len(records))
	for _, record := range records {
		date := record.Date.Format("2006-01-02")
		i, seen := index[date]
		if !seen {
			daily = append(daily, DailyProgress{Date: date})
			i = len(daily) - 1
			index[date] = i
		}
		daily[i].VocabularyAdded += record.VocabularyCount
		daily[i].MinutesPracticed += record.ConversationDuration
		daily[i].MistakesMade += record.MistakesMade
		daily[i].MistakesCorrected += record.MistakesCorrected
		if record.FluencyScore > 0 {
			if daily[i].FluencyScore > 0 {
				daily[i].FluencyScore = (daily[i].FluencyScore + record.FluencyScore) / 2
			} else {
				daily[i].FluencyScore = record.FluencyScore
			}
		}
	}
	return daily
}
