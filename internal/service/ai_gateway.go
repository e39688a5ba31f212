package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"tritech-assistant/internal/models"
	"tritech-assistant/pkg/config"

	"go.uber.org/zap"
)

const anthropicVersion = "2023-06-01"

// AIGateway is the boundary to the external model provider. Ask blocks until
// a response arrives, the configured timeout cancels the call, or ctx is
// done; failures come back as *GatewayError.
type AIGateway interface {
	Ask(ctx context.Context, query string, localMatch *models.MatchResult) (string, error)
	Configured() bool
}

// AnthropicGateway calls the Anthropic messages API with a bounded timeout.
type AnthropicGateway struct {
	cfg        config.AnthropicConfig
	httpClient *http.Client
	logger     *zap.Logger
}

func NewAnthropicGateway(cfg config.AnthropicConfig, logger *zap.Logger) *AnthropicGateway {
	return &AnthropicGateway{
		cfg:        cfg,
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// Configured reports whether an API key is present. Without one the service
// runs in local-only mode.
func (g *AnthropicGateway) Configured() bool {
	return g.cfg.APIKey != ""
}

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

// Ask sends the constructed prompt and returns the model's text. The timeout
// is enforced through context cancellation, so the caller is always
// unblocked.
func (g *AnthropicGateway) Ask(ctx context.Context, query string, localMatch *models.MatchResult) (string, error) {
	if !g.Configured() {
		return "", &GatewayError{Kind: FailureNotConfigured, Err: errors.New("api key missing")}
	}

	ctx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	body, err := json.Marshal(messagesRequest{
		Model:     g.cfg.Model,
		MaxTokens: g.cfg.MaxTokens,
		Messages: []message{
			{Role: "user", Content: buildPrompt(query, localMatch)},
		},
	})
	if err != nil {
		return "", &GatewayError{Kind: FailureMalformed, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.BaseURL, bytes.NewReader(body))
	if err != nil {
		return "", &GatewayError{Kind: FailureMalformed, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", g.cfg.APIKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			g.logger.Warn("AI gateway call timed out", zap.Duration("timeout", g.cfg.Timeout))
			return "", &GatewayError{Kind: FailureTimeout, Err: err}
		}
		// Connection failures are treated as provider-side unavailability
		return "", &GatewayError{Kind: FailureBusy, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		g.logger.Warn("AI gateway call failed",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
		)

		switch {
		case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
			return "", &GatewayError{Kind: FailureAuth, Err: fmt.Errorf("status %d", resp.StatusCode)}
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			return "", &GatewayError{Kind: FailureBusy, Err: fmt.Errorf("status %d", resp.StatusCode)}
		default:
			return "", &GatewayError{Kind: FailureMalformed, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
		}
	}

	var parsed messagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", &GatewayError{Kind: FailureMalformed, Err: err}
	}
	if len(parsed.Content) == 0 || parsed.Content[0].Text == "" {
		return "", &GatewayError{Kind: FailureMalformed, Err: errors.New("response has no content")}
	}

	return parsed.Content[0].Text, nil
}
