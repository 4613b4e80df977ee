package llm

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
)

// Client talks to an OpenAI-compatible chat completions endpoint. Only the
// tool-selection slice of the API is covered; the model picks a function and
// the caller runs it.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// ToolDefinition describes one callable function offered to the model.
// Parameters holds the function's JSON schema.
type ToolDefinition struct {
	Name        string
	Description string
	Parameters  json.RawMessage
}

// ToolCall is the model's choice of function. Arguments is the raw JSON
// object text exactly as the model produced it.
type ToolCall struct {
	Name      string
	Arguments string
}

// Completion is the model's reply: either a tool call or plain text, never
// both.
type Completion struct {
	ToolCall *ToolCall
	Content  string
}

func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, errors.New("llm base url is required")
	}
	if strings.TrimSpace(cfg.Model) == "" {
		return nil, errors.New("llm model is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}

// Complete sends one chat completion request with the given tool catalog and
// returns the first tool call the model chose, or its text reply when it
// answered without calling a tool.
func (c *Client) Complete(ctx context.Context, system, user string, tools []ToolDefinition) (*Completion, error) {
	messages := make([]chatMessage, 0, 2)
	if system != "" {
		messages = append(messages, chatMessage{Role: "system", Content: system})
	}
	messages = append(messages, chatMessage{Role: "user", Content: user})

	request := chatRequest{
		Model:    c.model,
		Messages: messages,
	}
	if len(tools) > 0 {
		request.Tools = make([]chatTool, 0, len(tools))
		for _, tool := range tools {
			request.Tools = append(request.Tools, chatTool{
				Type: "function",
				Function: chatFunction{
					Name:        tool.Name,
					Description: tool.Description,
					Parameters:  tool.Parameters,
				},
			})
		}
		request.ToolChoice = "auto"
	}

	payload, err := json.Marshal(request)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var failure struct {
			Error *apiError `json:"error"`
		}
		if err := json.Unmarshal(body, &failure); err == nil && failure.Error != nil && failure.Error.Message != "" {
			return nil, fmt.Errorf("llm status %d: %s", resp.StatusCode, failure.Error.Message)
		}
		return nil, fmt.Errorf("llm status %d", resp.StatusCode)
	}

	var decoded chatResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("llm response: %w", err)
	}
	if len(decoded.Choices) == 0 {
		return nil, errors.New("llm returned no choices")
	}

	message := decoded.Choices[0].Message
	for _, call := range message.ToolCalls {
		if call.Type != "function" {
			continue
		}
		if call.Function.Name == "" {
			return nil, errors.New("llm tool call has no function name")
		}
		return &Completion{ToolCall: &ToolCall{
			Name:      call.Function.Name,
			Arguments: call.Function.Arguments,
		}}, nil
	}
	return &Completion{Content: message.Content}, nil
}

type chatRequest struct {
	Model      string        `json:"model"`
	Messages   []chatMessage `json:"messages"`
	Tools      []chatTool    `json:"tools,omitempty"`
	ToolChoice string        `json:"tool_choice,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatTool struct {
	Type     string       `json:"type"`
	Function chatFunction `json:"function"`
}

type chatFunction struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  json.RawMessage `json:"parameters"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
}

type chatChoice struct {
	Message      chatChoiceMessage `json:"message"`
	FinishReason string            `json:"finish_reason"`
}

type chatChoiceMessage struct {
	Role      string         `json:"role"`
	Content   string         `json:"content"`
	ToolCalls []chatToolCall `json:"tool_calls"`
}

type chatToolCall struct {
	ID       string           `json:"id"`
	Type     string           `json:"type"`
	Function chatToolFunction `json:"function"`
}

type chatToolFunction struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    any    `json:"code"`
}
