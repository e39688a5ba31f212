package service

import (
	"strings"

	"tritech-assistant/internal/models"
	"tritech-assistant/pkg/config"

	"go.uber.org/zap"
)

type Route int

const (
	RouteLocal Route = iota
	RouteEscalate
)

func (r Route) String() string {
	if r == RouteEscalate {
		return "escalate"
	}
	return "local"
}

// EscalationRule flags queries that should go to the AI path regardless of
// local confidence. Rules are injected so the heuristics stay configurable
// and testable.
type EscalationRule struct {
	Name  string
	Match func(query string) bool
}

// DefaultEscalationRules detects analytical intent: comparisons, multi-entity
// analysis, and integration or relationship questions.
func DefaultEscalationRules() []EscalationRule {
	return []EscalationRule{
		containsAnyRule("comparison", "compare", " vs ", "versus", "difference between"),
		containsAnyRule("analysis", "analyz", "analysis", "evaluate", "assess"),
		containsAnyRule("integration", "integrat", "work together", "works with", "relationship between"),
	}
}

func containsAnyRule(name string, terms ...string) EscalationRule {
	return EscalationRule{
		Name: name,
		Match: func(query string) bool {
			for _, term := range terms {
				if strings.Contains(query, term) {
					return true
				}
			}
			return false
		},
	}
}

// Decision is the routing outcome for one query.
type Decision struct {
	Route   Route
	Reasons []string
}

// Router decides Local vs Escalate from the force mode, the top match's
// normalized confidence, and the escalation heuristics.
type Router struct {
	confidenceThreshold float64
	maxWords            int
	maxChars            int
	rules               []EscalationRule
	logger              *zap.Logger
}

func NewRouter(cfg *config.RouterConfig, rules []EscalationRule, logger *zap.Logger) *Router {
	return &Router{
		confidenceThreshold: cfg.ConfidenceThreshold,
		maxWords:            cfg.MaxWords,
		maxChars:            cfg.MaxChars,
		rules:               rules,
		logger:              logger,
	}
}

// Decide applies the decision table. confidence is the top match's normalized
// score in [0,1]; zero when nothing matched.
func (r *Router) Decide(req models.QueryRequest, confidence float64) Decision {
	switch req.ForceMode {
	case models.ModeLocal:
		return Decision{Route: RouteLocal, Reasons: []string{"forced local mode"}}
	case models.ModeAI:
		return Decision{Route: RouteEscalate, Reasons: []string{"forced ai mode"}}
	}

	query := strings.ToLower(req.Text)
	var reasons []string

	if confidence < r.confidenceThreshold {
		reasons = append(reasons, "low local confidence")
	}
	for _, rule := range r.rules {
		if rule.Match(query) {
			reasons = append(reasons, "heuristic: "+rule.Name)
		}
	}
	if len(strings.Fields(req.Text)) > r.maxWords || len(req.Text) > r.maxChars {
		reasons = append(reasons, "long query")
	}

	if len(reasons) > 0 {
		r.logger.Debug("Routing to AI", zap.Strings("reasons", reasons))
		return Decision{Route: RouteEscalate, Reasons: reasons}
	}

	return Decision{Route: RouteLocal, Reasons: []string{"local confidence sufficient"}}
}
