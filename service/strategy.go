package service

import (
	"context"
	"math/rand"
	"time"

	"lawmitra-backend/catalog"
	"lawmitra-backend/models"
	"lawmitra-backend/scorer"
)

// BotResponse is the single normalized shape every strategy produces:
// display text plus the law records cited alongside it.
type BotResponse struct {
	Message string       `json:"message"`
	Laws    []models.Law `json:"laws"`
}

// StrategyRequest carries one user utterance into a strategy. History holds
// the full prior turn sequence; only history-aware strategies read it.
type StrategyRequest struct {
	SessionID string
	Query     string
	History   []models.ChatMessage
}

// BackendStrategy is one way of turning a user utterance into a response.
// Respond issues at most one network request and never retries; Test is the
// explicit connection probe, separate from ordinary sends.
type BackendStrategy interface {
	Kind() models.BackendKind
	Respond(ctx context.Context, req StrategyRequest) (*BotResponse, error)
	Test(ctx context.Context) error
}

// matchPreamble opens every response that carries law citations
const matchPreamble = "Based on your query, here are some relevant laws that might help:"

// noMatchReplies are the clarification templates used when the scorer finds
// nothing. One is picked at random per response.
var noMatchReplies = []string{
	"I couldn't find specific laws related to your query. Could you please provide more details or try a different question?",
	"I wasn't able to match your question to any law I know about. Could you rephrase it with a few more specifics?",
	"Nothing in my law catalog matches that yet. Try describing your situation in a bit more detail, like where it happened or who was involved.",
}

// LocalStrategy answers purely from the keyword scorer over the catalog.
// It is also the implicit choice when no remote backend is configured.
type LocalStrategy struct {
	catalog *catalog.Catalog
	// delay simulates the latency of a real backend so the typing
	// indicator behaves the same across strategies. Zero disables it.
	delay time.Duration
}

// NewLocalStrategy creates the scorer-backed strategy
func NewLocalStrategy(c *catalog.Catalog, delay time.Duration) *LocalStrategy {
	return &LocalStrategy{catalog: c, delay: delay}
}

// Kind returns the backend kind this strategy implements
func (s *LocalStrategy) Kind() models.BackendKind {
	return models.BackendLocal
}

// Respond ranks the catalog against the query. No matches is a valid, silent
// outcome, answered with a clarification template instead of an error.
func (s *LocalStrategy) Respond(ctx context.Context, req StrategyRequest) (*BotResponse, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	laws := scorer.FindRelevantLaws(req.Query, s.catalog.All())
	if len(laws) == 0 {
		return &BotResponse{
			Message: noMatchReplies[rand.Intn(len(noMatchReplies))],
			Laws:    []models.Law{},
		}, nil
	}
	return &BotResponse{
		Message: matchPreamble,
		Laws:    laws,
	}, nil
}

// Test always succeeds; there is nothing to connect to
func (s *LocalStrategy) Test(ctx context.Context) error {
	return nil
}
