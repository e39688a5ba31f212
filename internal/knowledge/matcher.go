package knowledge

import (
	"fmt"
	"strings"
	"unicode"

	"tritech-assistant/internal/models"
)

// Canonical scoring scheme. Weights are additive within a candidate; the
// highest tier hit decides precedence when cumulative scores tie.
const (
	keywordWeight = 10.0
	phraseWeight  = 8.0
	synonymWeight = 6.0
	contextWeight = 3.0

	phraseThreshold  = 0.6
	contextThreshold = 0.8
	contextScoreCap  = 9.0

	minContextTokenLen = 3

	// ReferenceMaxScore maps raw match scores onto the [0,1] confidence
	// scale used by the routing decision.
	ReferenceMaxScore = 20.0
)

// candidate is the unified scoring profile for both knowledge sources.
type candidate struct {
	topic *models.StaticTopic
	entry *models.KnowledgeEntry

	keywords     []string
	phrases      []string
	synonyms     []string
	contextTerms []string
}

// scoreCandidate ranks one candidate against a lowercased query. A zero score
// means no tier matched.
func scoreCandidate(query string, c candidate) models.MatchResult {
	result := models.MatchResult{
		Topic: c.topic,
		Entry: c.entry,
	}

	for _, kw := range c.keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if strings.Contains(query, kw) {
			result.Score += keywordWeight
			result.Signals = append(result.Signals, fmt.Sprintf("keyword match: %q", kw))
			if result.Tier < models.TierKeyword {
				result.Tier = models.TierKeyword
			}
		}
	}

	for _, phrase := range c.phrases {
		if phrase == "" {
			continue
		}
		sim := Similarity(query, phrase)
		if sim > phraseThreshold {
			result.Score += phraseWeight * sim
			result.Signals = append(result.Signals, fmt.Sprintf("phrase similarity %.2f: %q", sim, phrase))
			if result.Tier < models.TierPhrase {
				result.Tier = models.TierPhrase
			}
		}
	}

	for _, syn := range c.synonyms {
		syn = strings.ToLower(strings.TrimSpace(syn))
		if syn == "" {
			continue
		}
		if strings.Contains(query, syn) {
			result.Score += synonymWeight
			result.Signals = append(result.Signals, fmt.Sprintf("synonym match: %q", syn))
			if result.Tier < models.TierSynonym {
				result.Tier = models.TierSynonym
			}
		}
	}

	if contextScore, signals := scoreContextTokens(query, c.contextTerms); contextScore > 0 {
		result.Score += contextScore
		result.Signals = append(result.Signals, signals...)
		if result.Tier < models.TierContext {
			result.Tier = models.TierContext
		}
	}

	return result
}

// scoreContextTokens compares each query token longer than two runes against
// the candidate's context terms, awarding a small weight per matching token
// up to a fixed cap.
func scoreContextTokens(query string, contextTerms []string) (float64, []string) {
	if len(contextTerms) == 0 {
		return 0, nil
	}

	var score float64
	var signals []string

	for _, token := range tokenize(query) {
		if len([]rune(token)) < minContextTokenLen {
			continue
		}
		for _, term := range contextTerms {
			if Similarity(token, term) > contextThreshold {
				score += contextWeight
				signals = append(signals, fmt.Sprintf("context term: %q ~ %q", token, term))
				break
			}
		}
		if score >= contextScoreCap {
			score = contextScoreCap
			break
		}
	}

	return score, signals
}

// tokenize splits text into lowercase alphanumeric words.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// NormalizedConfidence clamps score/ReferenceMaxScore into [0,1].
func NormalizedConfidence(score float64) float64 {
	conf := score / ReferenceMaxScore
	if conf > 1 {
		return 1
	}
	if conf < 0 {
		return 0
	}
	return conf
}
