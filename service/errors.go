package service

import (
	"errors"
	"fmt"
)

// FailureKind classifies why a backend call could not produce a response.
// Every kind is recoverable; none terminates the conversation.
type FailureKind string

const (
	FailureUnconfigured      FailureKind = "unconfigured"
	FailureTimeout           FailureKind = "timeout"
	FailureNetworkError      FailureKind = "network_error"
	FailureAuthError         FailureKind = "auth_error"
	FailureRateLimited       FailureKind = "rate_limited"
	FailureServerError       FailureKind = "server_error"
	FailureMalformedResponse FailureKind = "malformed_response"
)

// BackendError wraps a remote-call failure with its classification so the
// router can pick a user-safe message without inspecting transport details.
type BackendError struct {
	Kind FailureKind
	err  error
}

func (e *BackendError) Error() string {
	if e.err == nil {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.err)
}

func (e *BackendError) Unwrap() error {
	return e.err
}

// NewBackendError classifies an underlying error
func NewBackendError(kind FailureKind, err error) error {
	return &BackendError{Kind: kind, err: err}
}

// ClassifyFailure extracts the failure kind from an error chain, defaulting
// to NetworkError for anything unclassified.
func ClassifyFailure(err error) FailureKind {
	var be *BackendError
	if errors.As(err, &be) {
		return be.Kind
	}
	return FailureNetworkError
}

// userMessages maps each failure kind to the bot-visible text shown in the
// conversation. Each kind gets a distinct message so users can tell a bad
// key from an unreachable server.
var userMessages = map[FailureKind]string{
	FailureUnconfigured:      "No AI backend is configured yet. Open the assistant settings and add an API key or server URL, or keep using the built-in law lookup.",
	FailureTimeout:           "The AI backend took too long to respond. Please try sending your message again.",
	FailureNetworkError:      "I couldn't reach the AI backend. Please check your connection and try again.",
	FailureAuthError:         "The AI backend rejected the configured credential. Please update your API key in the assistant settings.",
	FailureRateLimited:       "The AI backend is rate limiting requests right now. Please wait a moment and try again.",
	FailureServerError:       "The AI backend returned an error. Please try again in a little while.",
	FailureMalformedResponse: "The AI backend sent a response I couldn't read. Please try again.",
}

// UserMessage returns the conversation-safe text for a failure kind
func UserMessage(kind FailureKind) string {
	if msg, ok := userMessages[kind]; ok {
		return msg
	}
	return userMessages[FailureNetworkError]
}
