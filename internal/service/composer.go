package service

import (
	"fmt"
	"strings"

	"tritech-assistant/internal/models"
)

const (
	maxRelatedTopics = 4
	maxMatchSignals  = 3
)

// relatedTopicVocabulary is the fixed trigger → label list scanned against
// response text. Order here is the stable output order.
var relatedTopicVocabulary = []struct {
	trigger string
	label   string
}{
	{"premium tax", "Premium Tax overview"},
	{"municipal", "Municipal Tax features"},
	{"formsplus", "FormsPlus capabilities"},
	{"allocator", "Allocator functions"},
	{"gfa", "GFA Tracking System"},
	{"calendar", "Calendar management"},
	{"electronic filing", "Electronic filing options"},
	{"retaliatory", "Retaliatory tax calculations"},
}

// Composer assembles the final Answer from whichever path executed. It never
// fails: a missing match yields the deterministic no-match response.
type Composer struct{}

func NewComposer() *Composer {
	return &Composer{}
}

// ComposeLocal builds an answer from the top local match, deriving the
// confidence tier from the normalized score.
func (c *Composer) ComposeLocal(match *models.MatchResult, confidence float64) *models.Answer {
	if match == nil {
		return c.composeNoMatch()
	}

	content := renderMatch(match)
	return &models.Answer{
		Content:       content,
		Source:        models.SourceLocal,
		Confidence:    confidenceBand(confidence),
		RelatedTopics: extractRelatedTopics(content),
		MatchSignals:  capSignals(match.Signals),
	}
}

// ComposeAI wraps a successful model response. AI answers carry fixed high
// confidence.
func (c *Composer) ComposeAI(text string) *models.Answer {
	return &models.Answer{
		Content:       text,
		Source:        models.SourceAI,
		Confidence:    models.ConfidenceHigh,
		RelatedTopics: extractRelatedTopics(text),
		MatchSignals:  []string{"ai response"},
	}
}

// ComposeFallback builds the degraded-path answer after an AI failure: the
// best local match when one exists, otherwise the no-match response. Either
// way confidence is low.
func (c *Composer) ComposeFallback(match *models.MatchResult) *models.Answer {
	if match == nil {
		return c.composeNoMatch()
	}

	content := renderMatch(match)
	return &models.Answer{
		Content:       content,
		Source:        models.SourceLocal,
		Confidence:    models.ConfidenceLow,
		RelatedTopics: extractRelatedTopics(content),
		MatchSignals:  capSignals(append([]string{"ai unavailable, local fallback"}, match.Signals...)),
	}
}

func (c *Composer) composeNoMatch() *models.Answer {
	var b strings.Builder
	b.WriteString("I don't have specific information about that yet. Here's what I can help with:\n\n")
	b.WriteString("• Premium Tax: annual and estimate returns, retaliatory calculations\n")
	b.WriteString("• Municipal Tax: jurisdiction management and rollover\n")
	b.WriteString("• FormsPlus: state-specific forms and schedules\n")
	b.WriteString("• Allocator: multi-state allocation and apportionment\n")
	b.WriteString("• GFA Tracking: guaranty fund assessment credits\n")
	b.WriteString("• Calendar: due dates across jurisdictions\n\n")
	b.WriteString("Try asking about one of these areas.")

	return &models.Answer{
		Content:      b.String(),
		Source:       models.SourceLocal,
		Confidence:   models.ConfidenceLow,
		MatchSignals: []string{"no knowledge match"},
	}
}

// renderMatch formats the matched knowledge item as response text.
func renderMatch(match *models.MatchResult) string {
	switch {
	case match.Topic != nil:
		var b strings.Builder
		b.WriteString(match.Topic.Overview)
		for _, section := range match.Topic.Sections {
			fmt.Fprintf(&b, "\n\n**%s**\n%s", section.Title, section.Body)
		}
		return b.String()
	case match.Entry != nil:
		return match.Entry.Answer
	default:
		return ""
	}
}

// extractRelatedTopics scans text for the fixed topic vocabulary, capped and
// in stable vocabulary order.
func extractRelatedTopics(text string) []string {
	lower := strings.ToLower(text)

	var topics []string
	for _, entry := range relatedTopicVocabulary {
		if strings.Contains(lower, entry.trigger) {
			topics = append(topics, entry.label)
			if len(topics) == maxRelatedTopics {
				break
			}
		}
	}
	return topics
}

func capSignals(signals []string) []string {
	if len(signals) > maxMatchSignals {
		return signals[:maxMatchSignals]
	}
	return signals
}

// confidenceBand maps a normalized score to the coarse confidence tier.
func confidenceBand(confidence float64) models.Confidence {
	switch {
	case confidence >= 0.7:
		return models.ConfidenceHigh
	case confidence >= 0.4:
		return models.ConfidenceMedium
	default:
		return models.ConfidenceLow
	}
}
