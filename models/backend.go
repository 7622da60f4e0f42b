package models

// BackendKind identifies which response-generation strategy is active
type BackendKind string

const (
	// BackendLocal answers from the keyword scorer only, no network calls
	BackendLocal BackendKind = "local"
	// BackendSingleTurn is a hosted chat-completion API that sees only the
	// current query plus a fixed system framing
	BackendSingleTurn BackendKind = "single_turn"
	// BackendMultiTurn is a hosted chat-completion API that receives the
	// full prior conversation on every call
	BackendMultiTurn BackendKind = "multi_turn"
	// BackendWebhook is a self-hosted assistant addressed by session id
	// over a webhook-style POST
	BackendWebhook BackendKind = "webhook"
)

// ConnectionStatus is the result of the most recent explicit connection
// test. Ordinary message sends never mutate it.
type ConnectionStatus string

const (
	StatusUntested ConnectionStatus = "untested"
	StatusSuccess  ConnectionStatus = "success"
	StatusFailed   ConnectionStatus = "failed"
)

// BackendConfig is the single active backend selection. CredentialOrEndpoint
// is an API key for the chat-completion kinds and a base URL for the webhook
// kind; it is opaque to everything but the strategy that consumes it.
type BackendConfig struct {
	Kind                 BackendKind      `json:"kind"`
	CredentialOrEndpoint string           `json:"credential_or_endpoint"`
	LastTestedStatus     ConnectionStatus `json:"last_tested_status"`
	// LastTestError carries the failure kind of the last failed test, empty otherwise
	LastTestError string `json:"last_test_error,omitempty"`
}

// IsConfigured reports whether the config names a usable backend. The local
// kind needs no credential; remote kinds need a non-empty one.
func (c BackendConfig) IsConfigured() bool {
	if c.Kind == "" {
		return false
	}
	if c.Kind == BackendLocal {
		return true
	}
	return c.CredentialOrEndpoint != ""
}
