package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"lawmitra-backend/catalog"
	"lawmitra-backend/models"
	"lawmitra-backend/scorer"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrSessionNotFound = errors.New("chat session not found")
	ErrEmptyQuery      = errors.New("query is empty")
	ErrInvalidConfig   = errors.New("invalid backend configuration")
	ErrUnconfigured    = errors.New("no backend configured")
)

const (
	// defaultRemoteTimeout bounds one remote call end to end
	defaultRemoteTimeout = 8 * time.Second

	welcomeMessage = "Welcome to Legal Assistant! How can I help you with legal information today? " +
		"You can ask about traffic laws, workplace rights, domestic issues, or other legal concerns."

	// tipShortQuery nudges users whose very short question matched nothing
	tipShortQuery = "Try providing more details in your question to help me find relevant laws for your situation."
)

// suggestedPrompts are the starter questions offered to new conversations
var suggestedPrompts = []string{
	"What are the penalties for traffic signal violations?",
	"What should I do after a road accident?",
	"What laws protect women from workplace harassment?",
	"What are my rights in a domestic violence situation?",
	"What compensation can I claim for a workplace injury?",
}

// session pairs a conversation with the mutex that serializes its sends.
// At most one Respond call runs per session, which also guarantees that
// responses append in request order.
type session struct {
	mu   sync.Mutex
	conv *models.Conversation
}

// ChatService routes each user utterance to the active backend strategy,
// falls back to the local scorer when nothing remote is configured, and
// converts every remote failure into a bot-visible message so the
// conversation never crashes.
type ChatService struct {
	catalog       *catalog.Catalog
	store         ConfigStore
	logger        *zap.Logger
	httpClient    *http.Client
	remoteTimeout time.Duration
	localDelay    time.Duration

	// endpoint overrides, used by tests to point at fakes
	singleTurnEndpoint string
	multiTurnEndpoint  string

	mu       sync.RWMutex
	sessions map[uuid.UUID]*session
}

// ChatServiceOption is a functional option for ChatService
type ChatServiceOption func(*ChatService)

// ChatWithCatalog sets the law catalog
func ChatWithCatalog(c *catalog.Catalog) ChatServiceOption {
	return func(s *ChatService) {
		s.catalog = c
	}
}

// ChatWithConfigStore sets the backend config store
func ChatWithConfigStore(store ConfigStore) ChatServiceOption {
	return func(s *ChatService) {
		s.store = store
	}
}

// ChatWithLogger sets the logger
func ChatWithLogger(logger *zap.Logger) ChatServiceOption {
	return func(s *ChatService) {
		s.logger = logger
	}
}

// ChatWithHTTPClient sets the HTTP client used for remote strategies
func ChatWithHTTPClient(c *http.Client) ChatServiceOption {
	return func(s *ChatService) {
		s.httpClient = c
	}
}

// ChatWithRemoteTimeout sets the per-call deadline for remote backends
func ChatWithRemoteTimeout(d time.Duration) ChatServiceOption {
	return func(s *ChatService) {
		s.remoteTimeout = d
	}
}

// ChatWithLocalDelay sets the simulated latency of the local strategy
func ChatWithLocalDelay(d time.Duration) ChatServiceOption {
	return func(s *ChatService) {
		s.localDelay = d
	}
}

// ChatWithSingleTurnEndpoint overrides the single-turn provider endpoint
func ChatWithSingleTurnEndpoint(endpoint string) ChatServiceOption {
	return func(s *ChatService) {
		s.singleTurnEndpoint = endpoint
	}
}

// ChatWithMultiTurnEndpoint overrides the multi-turn provider endpoint
func ChatWithMultiTurnEndpoint(endpoint string) ChatServiceOption {
	return func(s *ChatService) {
		s.multiTurnEndpoint = endpoint
	}
}

// NewChatService creates a chat service
func NewChatService(opts ...ChatServiceOption) *ChatService {
	s := &ChatService{
		logger:        zap.NewNop(),
		httpClient:    http.DefaultClient,
		remoteTimeout: defaultRemoteTimeout,
		sessions:      make(map[uuid.UUID]*session),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ChatResult is the normalized outcome of one Respond call. Laws travels
// with the response itself; consumers that render suggestions read it from
// here instead of a shared storage slot.
type ChatResult struct {
	SessionID uuid.UUID          `json:"session_id"`
	Message   models.ChatMessage `json:"message"`
	Laws      []models.Law       `json:"laws"`
	Tip       string             `json:"tip,omitempty"`
	Failure   FailureKind        `json:"failure,omitempty"`
}

// StartSession creates a conversation seeded with the welcome message
func (s *ChatService) StartSession() (uuid.UUID, models.ChatMessage) {
	welcome := models.NewChatMessage(welcomeMessage, models.SenderBot)
	id := uuid.New()

	s.mu.Lock()
	s.sessions[id] = &session{
		conv: &models.Conversation{
			ID:       id,
			Messages: []models.ChatMessage{welcome},
		},
	}
	s.mu.Unlock()

	return id, welcome
}

// History returns a copy of the conversation transcript
func (s *ChatService) History(sessionID uuid.UUID) ([]models.ChatMessage, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	out := make([]models.ChatMessage, len(sess.conv.Messages))
	copy(out, sess.conv.Messages)
	return out, nil
}

// SuggestedPrompts returns the fixed starter prompts
func (s *ChatService) SuggestedPrompts() []string {
	return suggestedPrompts
}

func (s *ChatService) session(id uuid.UUID) (*session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// Respond handles one user utterance. Exactly one response is produced per
// call, appended to the conversation after the user message. Remote
// failures never surface as errors: they become a calm bot message with the
// failure kind attached, and the conversation stays usable.
func (s *ChatService) Respond(ctx context.Context, sessionID uuid.UUID, query string) (*ChatResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	// One in-flight request per conversation; later calls wait their turn
	sess.mu.Lock()
	defer sess.mu.Unlock()

	history := make([]models.ChatMessage, len(sess.conv.Messages))
	copy(history, sess.conv.Messages)

	userMsg := models.NewChatMessage(query, models.SenderUser)
	sess.conv.Append(userMsg)

	strategy, err := s.activeStrategy()
	if err != nil {
		return nil, err
	}

	req := StrategyRequest{
		SessionID: sessionID.String(),
		Query:     query,
		History:   history,
	}

	callCtx := ctx
	if strategy.Kind() != models.BackendLocal {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.remoteTimeout)
		defer cancel()
	}

	result := &ChatResult{SessionID: sessionID}

	resp, err := strategy.Respond(callCtx, req)
	if err != nil {
		kind := ClassifyFailure(err)
		s.logger.Warn("backend call failed",
			zap.String("backend", string(strategy.Kind())),
			zap.String("failure", string(kind)),
			zap.Error(err))
		result.Failure = kind
		resp = &BotResponse{
			Message: UserMessage(kind),
			Laws:    []models.Law{},
		}
	} else if strategy.Kind() == models.BackendSingleTurn || strategy.Kind() == models.BackendMultiTurn {
		// The chat-completion kinds answer in prose without citing catalog
		// records, so their responses always get scorer-derived citations.
		// The webhook kind never does.
		resp.Laws = scorer.FindRelevantLaws(query, s.catalog.All())
	}

	if resp.Laws == nil {
		resp.Laws = []models.Law{}
	}

	botMsg := models.NewChatMessage(resp.Message, models.SenderBot)
	sess.conv.Append(botMsg)

	result.Message = botMsg
	result.Laws = resp.Laws
	if result.Failure == "" && len(resp.Laws) == 0 && len(query) < 10 {
		result.Tip = tipShortQuery
	}
	return result, nil
}

// activeStrategy builds the strategy for the current config. An empty or
// local config selects the scorer; remote kinds require a credential, which
// IsConfigured already guarantees.
func (s *ChatService) activeStrategy() (BackendStrategy, error) {
	cfg, err := s.store.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to read backend config: %w", err)
	}

	if !cfg.IsConfigured() || cfg.Kind == models.BackendLocal {
		return NewLocalStrategy(s.catalog, s.localDelay), nil
	}

	switch cfg.Kind {
	case models.BackendSingleTurn:
		opts := []CompletionOption{CompletionWithHTTPClient(s.httpClient)}
		if s.singleTurnEndpoint != "" {
			opts = append(opts, CompletionWithEndpoint(s.singleTurnEndpoint))
		}
		return NewSingleTurnStrategy(cfg.CredentialOrEndpoint, opts...), nil
	case models.BackendMultiTurn:
		opts := []CompletionOption{CompletionWithHTTPClient(s.httpClient)}
		if s.multiTurnEndpoint != "" {
			opts = append(opts, CompletionWithEndpoint(s.multiTurnEndpoint))
		}
		return NewMultiTurnStrategy(cfg.CredentialOrEndpoint, opts...), nil
	case models.BackendWebhook:
		return NewWebhookStrategy(cfg.CredentialOrEndpoint, WebhookWithHTTPClient(s.httpClient)), nil
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidConfig, cfg.Kind)
	}
}

// Config returns the current backend configuration
func (s *ChatService) Config() (models.BackendConfig, error) {
	return s.store.Get()
}

// SetConfig validates and stores a new backend selection. Validation is
// shallow: non-empty credential for key-based kinds, parseable http(s) URL
// for the webhook kind. No round trip happens here; that is TestConnection.
func (s *ChatService) SetConfig(kind models.BackendKind, credentialOrEndpoint string) (models.BackendConfig, error) {
	credentialOrEndpoint = strings.TrimSpace(credentialOrEndpoint)

	switch kind {
	case models.BackendLocal:
		credentialOrEndpoint = ""
	case models.BackendSingleTurn, models.BackendMultiTurn:
		if credentialOrEndpoint == "" {
			return models.BackendConfig{}, fmt.Errorf("%w: API key required for kind %q", ErrInvalidConfig, kind)
		}
	case models.BackendWebhook:
		u, err := url.Parse(credentialOrEndpoint)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return models.BackendConfig{}, fmt.Errorf("%w: server URL must be a valid http(s) URL", ErrInvalidConfig)
		}
	default:
		return models.BackendConfig{}, fmt.Errorf("%w: unknown kind %q", ErrInvalidConfig, kind)
	}

	cfg := models.BackendConfig{
		Kind:                 kind,
		CredentialOrEndpoint: credentialOrEndpoint,
		LastTestedStatus:     models.StatusUntested,
	}
	if err := s.store.Set(cfg); err != nil {
		return models.BackendConfig{}, err
	}
	return cfg, nil
}

// ClearConfig removes the backend selection; the service falls back to the
// local scorer until a new one is set
func (s *ChatService) ClearConfig() error {
	return s.store.Clear()
}

// TestConnection runs the explicit connection probe for the configured
// backend and records the outcome. Only this operation mutates the tested
// status; ordinary sends never touch it.
func (s *ChatService) TestConnection(ctx context.Context) (models.BackendConfig, error) {
	cfg, err := s.store.Get()
	if err != nil {
		return models.BackendConfig{}, err
	}
	if !cfg.IsConfigured() {
		return cfg, NewBackendError(FailureUnconfigured, ErrUnconfigured)
	}

	strategy, err := s.activeStrategy()
	if err != nil {
		return cfg, err
	}

	testCtx, cancel := context.WithTimeout(ctx, s.remoteTimeout)
	defer cancel()

	if err := strategy.Test(testCtx); err != nil {
		kind := ClassifyFailure(err)
		s.logger.Warn("connection test failed",
			zap.String("backend", string(cfg.Kind)),
			zap.String("failure", string(kind)),
			zap.Error(err))
		cfg.LastTestedStatus = models.StatusFailed
		cfg.LastTestError = string(kind)
		if storeErr := s.store.Set(cfg); storeErr != nil {
			return cfg, storeErr
		}
		return cfg, err
	}

	cfg.LastTestedStatus = models.StatusSuccess
	cfg.LastTestError = ""
	if err := s.store.Set(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
