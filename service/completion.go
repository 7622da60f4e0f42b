package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"lawmitra-backend/models"
)

const (
	defaultSingleTurnEndpoint = "https://api.perplexity.ai/chat/completions"
	defaultMultiTurnEndpoint  = "https://api.deepinfra.com/v1/openai/chat/completions"
	defaultSingleTurnModel    = "llama-3.1-sonar-small-128k-online"
	defaultMultiTurnModel     = "deepseek-chat"
)

// systemFraming pins the assistant to legal information, not legal advice.
// Prepended exactly once per request for both chat-completion kinds.
const systemFraming = "You are a legal information assistant for Indian law. " +
	"You provide general information about laws, procedures and helplines, not legal advice. " +
	"Be precise, informative, and concise."

// completionMessage is one turn in a chat-completion request
type completionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// completionRequest is the OpenAI-compatible request body both hosted
// providers accept
type completionRequest struct {
	Model            string              `json:"model"`
	Messages         []completionMessage `json:"messages"`
	Temperature      float64             `json:"temperature"`
	MaxTokens        int                 `json:"max_tokens"`
	TopP             float64             `json:"top_p,omitempty"`
	FrequencyPenalty float64             `json:"frequency_penalty,omitempty"`
}

// completionResponse is the subset of the response body we read
type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// CompletionStrategy calls a hosted chat-completion API. With multiTurn set
// it forwards the full prior conversation; otherwise only the current query.
// Auth is a bearer credential supplied at construction, never compiled in.
type CompletionStrategy struct {
	kind       models.BackendKind
	apiKey     string
	endpoint   string
	model      string
	multiTurn  bool
	httpClient *http.Client
}

// NewSingleTurnStrategy creates the history-less chat-completion strategy
func NewSingleTurnStrategy(apiKey string, opts ...CompletionOption) *CompletionStrategy {
	s := &CompletionStrategy{
		kind:       models.BackendSingleTurn,
		apiKey:     apiKey,
		endpoint:   defaultSingleTurnEndpoint,
		model:      defaultSingleTurnModel,
		multiTurn:  false,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewMultiTurnStrategy creates the history-aware chat-completion strategy
func NewMultiTurnStrategy(apiKey string, opts ...CompletionOption) *CompletionStrategy {
	s := &CompletionStrategy{
		kind:       models.BackendMultiTurn,
		apiKey:     apiKey,
		endpoint:   defaultMultiTurnEndpoint,
		model:      defaultMultiTurnModel,
		multiTurn:  true,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CompletionOption configures a CompletionStrategy
type CompletionOption func(*CompletionStrategy)

// CompletionWithEndpoint overrides the provider endpoint
func CompletionWithEndpoint(endpoint string) CompletionOption {
	return func(s *CompletionStrategy) {
		s.endpoint = endpoint
	}
}

// CompletionWithModel overrides the model name
func CompletionWithModel(model string) CompletionOption {
	return func(s *CompletionStrategy) {
		s.model = model
	}
}

// CompletionWithHTTPClient overrides the HTTP client
func CompletionWithHTTPClient(c *http.Client) CompletionOption {
	return func(s *CompletionStrategy) {
		s.httpClient = c
	}
}

// Kind returns the backend kind this strategy implements
func (s *CompletionStrategy) Kind() models.BackendKind {
	return s.kind
}

// Respond sends one completion request and normalizes the answer text.
// The deadline on ctx bounds the whole call; there are no retries.
func (s *CompletionStrategy) Respond(ctx context.Context, req StrategyRequest) (*BotResponse, error) {
	messages := []completionMessage{{Role: "system", Content: systemFraming}}
	if s.multiTurn {
		for _, msg := range req.History {
			role := "user"
			if msg.Sender == models.SenderBot {
				role = "assistant"
			}
			messages = append(messages, completionMessage{Role: role, Content: msg.Content})
		}
	}
	messages = append(messages, completionMessage{Role: "user", Content: req.Query})

	body := completionRequest{
		Model:       s.model,
		Messages:    messages,
		Temperature: 0.2,
		MaxTokens:   500,
		TopP:        0.9,
	}

	var parsed completionResponse
	if err := s.post(ctx, s.endpoint, body, &parsed); err != nil {
		return nil, err
	}

	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return nil, NewBackendError(FailureMalformedResponse, errors.New("response has no choices"))
	}

	return &BotResponse{
		Message: strings.TrimSpace(parsed.Choices[0].Message.Content),
		Laws:    []models.Law{},
	}, nil
}

// Test sends a minimal one-message completion as a connection probe
func (s *CompletionStrategy) Test(ctx context.Context) error {
	body := completionRequest{
		Model:       s.model,
		Messages:    []completionMessage{{Role: "user", Content: "Hello"}},
		Temperature: 0.2,
		MaxTokens:   10,
	}
	var parsed completionResponse
	return s.post(ctx, s.endpoint, body, &parsed)
}

// post issues one JSON POST and decodes a 2xx body into out, classifying
// every failure mode into the backend error taxonomy.
func (s *CompletionStrategy) post(ctx context.Context, url string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return NewBackendError(FailureMalformedResponse, fmt.Errorf("failed to marshal request: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payload))
	if err != nil {
		return NewBackendError(FailureNetworkError, fmt.Errorf("failed to create request: %w", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return classifyTransportError(err)
	}
	defer resp.Body.Close()

	if err := classifyStatus(resp.StatusCode); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return NewBackendError(FailureMalformedResponse, fmt.Errorf("failed to decode response: %w", err))
	}
	return nil
}

// classifyTransportError distinguishes deadline expiry from other transport
// failures
func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return NewBackendError(FailureTimeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return NewBackendError(FailureTimeout, err)
	}
	return NewBackendError(FailureNetworkError, err)
}

// classifyStatus maps a non-2xx status to its failure kind
func classifyStatus(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return NewBackendError(FailureAuthError, fmt.Errorf("API error: %d", code))
	case code == http.StatusTooManyRequests:
		return NewBackendError(FailureRateLimited, fmt.Errorf("API error: %d", code))
	default:
		return NewBackendError(FailureServerError, fmt.Errorf("API error: %d", code))
	}
}
