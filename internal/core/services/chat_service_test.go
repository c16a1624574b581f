package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"donorly/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatConfig(baseURL string) *config.Config {
	cfg := testConfig()
	cfg.Chat = config.ChatConfig{
		APIKey:  "test-key",
		BaseURL: baseURL,
		Model:   "gpt-4.1-mini",
	}
	return cfg
}

func TestChatService_Ask(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4.1-mini", req.Model)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "Drink water before donating."}},
			},
		})
	}))
	defer server.Close()

	svc := NewChatService(chatConfig(server.URL))

	reply, err := svc.Ask(context.Background(), "Any tips before my donation?")
	require.NoError(t, err)
	assert.Equal(t, "Drink water before donating.", reply)
}

func TestChatService_Ask_Disabled(t *testing.T) {
	cfg := testConfig()
	svc := NewChatService(cfg)

	_, err := svc.Ask(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrChatDisabled)
}

func TestChatService_Ask_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	svc := NewChatService(chatConfig(server.URL))

	_, err := svc.Ask(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrChatUnavailable)
}

func TestChatService_Ask_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer server.Close()

	svc := NewChatService(chatConfig(server.URL))

	_, err := svc.Ask(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrChatUnavailable)
}
