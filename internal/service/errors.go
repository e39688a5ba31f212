package service

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks queries rejected by the sanitizer. Surfaced as 400,
// never retried.
var ErrInvalidInput = errors.New("invalid input")

// GatewayFailure classifies why an AI gateway call failed. Every kind is
// non-fatal to the query: the caller falls back to the local path unless an
// explicit AI-only mode forbids it.
type GatewayFailure string

const (
	FailureTimeout       GatewayFailure = "timeout"
	FailureAuth          GatewayFailure = "auth_failure"
	FailureBusy          GatewayFailure = "busy"
	FailureMalformed     GatewayFailure = "malformed_response"
	FailureNotConfigured GatewayFailure = "not_configured"
)

type GatewayError struct {
	Kind GatewayFailure
	Err  error
}

func (e *GatewayError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ai gateway %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("ai gateway %s", e.Kind)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}
