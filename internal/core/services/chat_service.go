package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"donorly/internal/config"
)

// Chat errors
var (
	ErrChatDisabled    = errors.New("chat assistant is not configured")
	ErrChatUnavailable = errors.New("chat assistant unavailable")
)

// ChatService proxies donor questions to an OpenAI-compatible chat
// completion endpoint. Disabled when no API key is configured.
type ChatService struct {
	cfg    *config.Config
	client *http.Client
}

// NewChatService creates a new chat service
func NewChatService(cfg *config.Config) *ChatService {
	return &ChatService{
		cfg: cfg,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// IsEnabled checks if the chat assistant is configured
func (s *ChatService) IsEnabled() bool {
	return s.cfg.Chat.APIKey != ""
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Ask forwards a message and returns the assistant's reply
func (s *ChatService) Ask(ctx context.Context, message string) (string, error) {
	if !s.IsEnabled() {
		return "", ErrChatDisabled
	}

	payload, err := json.Marshal(chatCompletionRequest{
		Model: s.cfg.Chat.Model,
		Messages: []chatMessage{
			{Role: "user", Content: message},
		},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.cfg.Chat.BaseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.Chat.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", ErrChatUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", ErrChatUnavailable
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", ErrChatUnavailable
	}
	if len(completion.Choices) == 0 {
		return "", ErrChatUnavailable
	}

	return completion.Choices[0].Message.Content, nil
}
