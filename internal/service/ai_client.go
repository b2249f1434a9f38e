package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"brewdash/internal/config"
	"brewdash/internal/logger"
)

// ErrAIDisabled reports that no API key is configured.
var ErrAIDisabled = errors.New("ai collaborator not configured")

// AIClient talks to the external chat-completion service. Every request
// goes through the shared RequestQueue, which is the only rate-limit
// protection the dashboard has.
type AIClient struct {
	cfg    *config.AIConfig
	queue  *RequestQueue
	client *http.Client
	log    *logger.Logger
}

// NewAIClient creates a client bound to the given dispatch queue.
func NewAIClient(cfg *config.AIConfig, queue *RequestQueue, log *logger.Logger) *AIClient {
	return &AIClient{
		cfg:   cfg,
		queue: queue,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
		log: log,
	}
}

// IsConfigured reports whether the AI path can be attempted at all.
func (c *AIClient) IsConfigured() bool {
	return c.cfg.IsEnabled()
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends a system+user prompt pair and returns the trimmed reply
// text. Any failure (missing key, transport, non-2xx, empty content) is an
// error the caller is expected to absorb into its fallback path.
func (c *AIClient) Complete(ctx context.Context, system, user string, maxTokens int) (string, error) {
	if !c.cfg.IsEnabled() {
		return "", ErrAIDisabled
	}
	return c.queue.Do(ctx, func() (string, error) {
		return c.complete(system, user, maxTokens)
	})
}

func (c *AIClient) complete(system, user string, maxTokens int) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: 0.3,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, c.cfg.Endpoint(), bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ai api returned %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse ai response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("no choices in ai response")
	}
	content := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("empty content in ai response")
	}
	return content, nil
}
