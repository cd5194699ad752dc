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
)

const (
	anthropicVersion     = "2023-06-01"
	defaultAssistBaseURL = "https://api.anthropic.com"
	defaultAssistModel   = "claude-sonnet-4-5-20250929"
	defaultMaxTokens     = 4096
	maxCompletionBody    = 4 << 20
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role
	Content string
}

// CompletionRequest is one single-shot call: a system prompt and the ordered
// message history ending with the new user message.
type CompletionRequest struct {
	System   string
	Messages []Message
}

// CompletionClient returns generated text or an error. Implementations never
// retry.
type CompletionClient interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// CompletionError is a non-success answer from the completion service.
// Message carries the service's own error text when it sent one.
type CompletionError struct {
	Status  int
	Message string
}

func (e *CompletionError) Error() string {
	return e.Message
}

// AnthropicClient calls the Messages API over HTTP.
type AnthropicClient struct {
	BaseURL   string
	APIKey    string
	Model     string
	MaxTokens int
	HTTP      *http.Client
}

// NewAnthropicClient returns a client with the default endpoint and model.
func NewAnthropicClient(apiKey string) *AnthropicClient {
	return &AnthropicClient{
		BaseURL:   defaultAssistBaseURL,
		APIKey:    apiKey,
		Model:     defaultAssistModel,
		MaxTokens: defaultMaxTokens,
		HTTP:      &http.Client{Timeout: 60 * time.Second},
	}
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system,omitempty"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

type anthropicErrorBody struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *AnthropicClient) endpoint() string {
	base := c.BaseURL
	if base == "" {
		base = defaultAssistBaseURL
	}
	return strings.TrimSuffix(base, "/") + "/v1/messages"
}

func (c *AnthropicClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	model := c.Model
	if model == "" {
		model = defaultAssistModel
	}
	maxTokens := c.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	body := anthropicRequest{Model: model, MaxTokens: maxTokens, System: req.System}
	for _, m := range req.Messages {
		body.Messages = append(body.Messages, anthropicMessage{Role: string(m.Role), Content: m.Content})
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("encode completion request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build completion request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.APIKey)
	httpReq.Header.Set("anthropic-version", anthropicVersion)

	hc := c.HTTP
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("completion request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxCompletionBody))
	if err != nil {
		return "", fmt.Errorf("read completion response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := "API error"
		var eb anthropicErrorBody
		if json.Unmarshal(respBody, &eb) == nil && eb.Error.Message != "" {
			msg = eb.Error.Message
		}
		return "", &CompletionError{Status: resp.StatusCode, Message: msg}
	}

	var out anthropicResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", fmt.Errorf("parse completion response: %w", err)
	}
	var text strings.Builder
	for _, block := range out.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	return text.String(), nil
}
