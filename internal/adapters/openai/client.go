// Package openai calls the OpenAI chat-completions API, optionally attaching
// an inline base64 image to a user turn.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"imagetagger/internal/domain"
)

const defaultBaseURL = "https://api.openai.com/v1"

// Model is the completion model used for tag suggestions and chat.
const Model = "gpt-4o"

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient returns a Completer that calls the chat-completions endpoint.
// baseURL overrides the OpenAI API host when non-empty (used in tests).
func NewClient(httpClient *http.Client, apiKey, baseURL string) domain.Completer {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &client{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
	}
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL    string `json:"url"`
	Detail string `json:"detail,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *client) Complete(ctx context.Context, messages []domain.ChatMessage) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("openai api key not configured")
	}

	payload := chatRequest{Model: Model, MaxTokens: 300}
	for _, m := range messages {
		if m.ImageDataURL == "" {
			payload.Messages = append(payload.Messages, chatMessage{Role: m.Role, Content: m.Text})
			continue
		}
		payload.Messages = append(payload.Messages, chatMessage{
			Role: m.Role,
			Content: []contentPart{
				{Type: "text", Text: m.Text},
				{Type: "image_url", ImageURL: &imageURL{URL: m.ImageDataURL, Detail: "high"}},
			},
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode completion request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call completion api: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read completion response: %w", err)
	}
	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode completion response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil && parsed.Error.Message != "" {
			return "", fmt.Errorf("completion api error: %s", parsed.Error.Message)
		}
		return "", fmt.Errorf("completion api returned status %d", resp.StatusCode)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("completion api returned no choices")
	}
	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}
