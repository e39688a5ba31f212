package service

import (
	"context"
	"errors"

	"tritech-assistant/internal/knowledge"
	"tritech-assistant/internal/models"

	"go.uber.org/zap"
)

// QueryService drives a query through sanitization, scoring, routing, and
// composition. Scoring always runs; the router then picks the local match or
// the AI escalation, and AI failures degrade to the local path unless an
// explicit ai mode forbids fallback.
type QueryService struct {
	store         *knowledge.Store
	router        *Router
	gateway       AIGateway
	composer      *Composer
	allowFallback bool
	logger        *zap.Logger
}

func NewQueryService(
	store *knowledge.Store,
	router *Router,
	gateway AIGateway,
	composer *Composer,
	allowFallback bool,
	logger *zap.Logger,
) *QueryService {
	return &QueryService{
		store:         store,
		router:        router,
		gateway:       gateway,
		composer:      composer,
		allowFallback: allowFallback,
		logger:        logger,
	}
}

// ParseForceMode maps the wire value onto a routing mode, defaulting to auto.
func ParseForceMode(s string) models.ForceMode {
	switch models.ForceMode(s) {
	case models.ModeLocal:
		return models.ModeLocal
	case models.ModeAI:
		return models.ModeAI
	default:
		return models.ModeAuto
	}
}

// Handle answers one query. It returns ErrInvalidInput for rejected input
// and a *GatewayError only when forced ai mode fails without a fallback
// policy; every other path composes an Answer.
func (s *QueryService) Handle(ctx context.Context, rawMessage string, mode models.ForceMode) (*models.Answer, error) {
	text, err := SanitizeQuery(rawMessage)
	if err != nil {
		return nil, err
	}

	req := models.QueryRequest{Text: text, ForceMode: mode}

	matches := s.store.Search(text)
	var top *models.MatchResult
	confidence := 0.0
	if len(matches) > 0 {
		top = &matches[0]
		confidence = knowledge.NormalizedConfidence(top.Score)
	}

	decision := s.router.Decide(req, confidence)
	s.logger.Info("Query routed",
		zap.String("route", decision.Route.String()),
		zap.Strings("reasons", decision.Reasons),
		zap.Float64("confidence", confidence),
		zap.Int("matches", len(matches)),
	)

	if decision.Route == RouteLocal {
		return s.composer.ComposeLocal(top, confidence), nil
	}

	response, gwErr := s.gateway.Ask(ctx, req.Text, top)
	if gwErr == nil {
		return s.composer.ComposeAI(response), nil
	}

	s.logger.Warn("AI gateway failed, degrading to local path", zap.Error(gwErr))

	if req.ForceMode == models.ModeAI && !s.allowFallback {
		var classified *GatewayError
		if errors.As(gwErr, &classified) {
			return nil, classified
		}
		return nil, gwErr
	}

	return s.composer.ComposeFallback(top), nil
}
