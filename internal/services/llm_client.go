package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/yungbote/linguadex-backend/internal/logger"
	"github.com/yungbote/linguadex-backend/internal/utils"
)

// CompletionRequest is one chat-completion call. Temperature and MaxTokens
// are set per call site; history beyond the system/user pair rides in
// Messages when a conversation is in play.
type CompletionRequest struct {
	System      string
	User        string
	History     []ChatMessage
	Temperature float64
	MaxTokens   int
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionError wraps transport failures and non-2xx statuses from the
// completion endpoint. Callers fall back on it; nothing retries.
type CompletionError struct {
	StatusCode int
	Err        error
}

func (e *CompletionError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("completion endpoint returned %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("completion request failed: %v", e.Err)
}

func (e *CompletionError) Unwrap() error {
	return e.Err
}

// CompletionClient performs a single blocking chat-completion call. One
// attempt per call: on any failure the caller decides whether to fall back,
// so retrying here would only hide the decision.
type CompletionClient interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
	Model() string
}

type completionClient struct {
	log         *logger.Logger
	baseURL     string
	apiKey      string
	model       string
	referer     string
	title       string
	defaultTemp float64
	httpClient  *http.Client
	sem         *semaphore.Weighted
}

func NewCompletionClient(log *logger.Logger) (CompletionClient, error) {
	clientLog := log.With("service", "CompletionClient")

	apiKey := utils.GetEnv("LLM_API_KEY", "", log)
	if apiKey == "" {
		return nil, fmt.Errorf("missing LLM_API_KEY")
	}
	baseURL := utils.GetEnv("LLM_BASE_URL", "https://openrouter.ai/api", log)
	model := utils.GetEnv("LLM_MODEL", "openai/gpt-4o-mini", log)
	timeoutSec := utils.GetEnvAsInt("LLM_TIMEOUT_SECONDS", 60, log)
	maxInFlight := utils.GetEnvAsInt("LLM_MAX_IN_FLIGHT", 8, log)
	defaultTemp := utils.GetEnvAsFloat("LLM_DEFAULT_TEMPERATURE", 0.7, log)

	return &completionClient{
		log:         clientLog,
		baseURL:     strings.TrimRight(baseURL, "/"),
		apiKey:      apiKey,
		model:       model,
		referer:     "https://linguadex.app",
		title:       "LinguaDex Language Learning App",
		defaultTemp: defaultTemp,
		httpClient:  &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
		sem:         semaphore.NewWeighted(int64(maxInFlight)),
	}, nil
}

func (c *completionClient) Model() string {
	return c.model
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *completionClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	if err := c.sem.Acquire(ctx, 1); err != nil {
		return "", &CompletionError{Err: err}
	}
	defer c.sem.Release(1)

	messages := make([]ChatMessage, 0, len(req.History)+2)
	messages = append(messages, ChatMessage{Role: "system", Content: req.System})
	messages = append(messages, req.History...)
	if req.User != "" {
		messages = append(messages, ChatMessage{Role: "user", Content: req.User})
	}

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 1024
	}
	temperature := req.Temperature
	if temperature <= 0 {
		temperature = c.defaultTemp
	}

	payload := chatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		return "", &CompletionError{Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", &buf)
	if err != nil {
		return "", &CompletionError{Err: err}
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("HTTP-Referer", c.referer)
	httpReq.Header.Set("X-Title", c.title)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", &CompletionError{Err: err}
	}
	raw, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return "", &CompletionError{Err: readErr}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &CompletionError{StatusCode: resp.StatusCode, Err: fmt.Errorf("%s", string(raw))}
	}

	var parsed chatCompletionResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", &CompletionError{Err: fmt.Errorf("decode response: %w", err)}
	}
	if len(parsed.Choices) == 0 {
		return "", &CompletionError{Err: fmt.Errorf("response contained no choices")}
	}

	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}
