package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"lawmitra-backend/models"
)

const (
	webhookMessagePath = "/webhooks/rest/webhook"
	webhookStatusPath  = "/status"
)

// webhookNoReply is shown when the assistant returns an empty message list
const webhookNoReply = "I'm sorry, I didn't understand that. Could you rephrase?"

// webhookRequest is the session-addressed message envelope
type webhookRequest struct {
	Sender  string `json:"sender"`
	Message string `json:"message"`
}

// webhookReply is one element of the response array; only text is read
type webhookReply struct {
	Text string `json:"text"`
}

// WebhookStrategy talks to a self-hosted conversational assistant over its
// REST webhook. The base URL is the configured credential; the message and
// status paths are fixed.
type WebhookStrategy struct {
	baseURL    string
	httpClient *http.Client
}

// NewWebhookStrategy creates the webhook strategy for the given server URL
func NewWebhookStrategy(baseURL string, opts ...WebhookOption) *WebhookStrategy {
	s := &WebhookStrategy{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WebhookOption configures a WebhookStrategy
type WebhookOption func(*WebhookStrategy)

// WebhookWithHTTPClient overrides the HTTP client
func WebhookWithHTTPClient(c *http.Client) WebhookOption {
	return func(s *WebhookStrategy) {
		s.httpClient = c
	}
}

// Kind returns the backend kind this strategy implements
func (s *WebhookStrategy) Kind() models.BackendKind {
	return models.BackendWebhook
}

// Respond posts the utterance addressed by session id and joins the reply
// texts with newlines. The assistant tracks its own conversation state, so
// history is not forwarded. This kind never attaches law citations.
func (s *WebhookStrategy) Respond(ctx context.Context, req StrategyRequest) (*BotResponse, error) {
	payload, err := json.Marshal(webhookRequest{
		Sender:  req.SessionID,
		Message: req.Query,
	})
	if err != nil {
		return nil, NewBackendError(FailureMalformedResponse, fmt.Errorf("failed to marshal request: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+webhookMessagePath, bytes.NewBuffer(payload))
	if err != nil {
		return nil, NewBackendError(FailureNetworkError, fmt.Errorf("failed to create request: %w", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	if err := classifyStatus(resp.StatusCode); err != nil {
		return nil, err
	}

	var replies []webhookReply
	if err := json.NewDecoder(resp.Body).Decode(&replies); err != nil {
		return nil, NewBackendError(FailureMalformedResponse, fmt.Errorf("failed to decode response: %w", err))
	}

	var parts []string
	for _, reply := range replies {
		if reply.Text != "" {
			parts = append(parts, reply.Text)
		}
	}
	message := strings.Join(parts, "\n")
	if message == "" {
		message = webhookNoReply
	}

	return &BotResponse{
		Message: message,
		Laws:    []models.Law{},
	}, nil
}

// Test probes the status endpoint; any 2xx means the server is reachable
func (s *WebhookStrategy) Test(ctx context.Context) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+webhookStatusPath, nil)
	if err != nil {
		return NewBackendError(FailureNetworkError, fmt.Errorf("failed to create request: %w", err))
	}

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return classifyTransportError(err)
	}
	defer resp.Body.Close()

	return classifyStatus(resp.StatusCode)
}
