package knowledge

import (
	"testing"

	"tritech-assistant/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreCandidate_KeywordTier(t *testing.T) {
	result := scoreCandidate("how does municipal rollover work", candidate{
		keywords: []string{"municipal", "rollover"},
	})

	assert.Equal(t, 2*keywordWeight, result.Score)
	assert.Equal(t, models.TierKeyword, result.Tier)
	assert.Len(t, result.Signals, 2)
}

func TestScoreCandidate_TierDominance(t *testing.T) {
	// Same query, one candidate matched at the keyword tier, one only at
	// the context tier. The keyword match must score strictly higher.
	query := "municipal rollover"

	keywordHit := scoreCandidate(query, candidate{keywords: []string{"municipal"}})
	contextHit := scoreCandidate(query, candidate{contextTerms: []string{"municipal"}})

	require.Positive(t, keywordHit.Score)
	require.Positive(t, contextHit.Score)
	assert.Greater(t, keywordHit.Score, contextHit.Score)
	assert.Greater(t, keywordHit.Tier, contextHit.Tier)
}

func TestScoreCandidate_PhraseTier(t *testing.T) {
	result := scoreCandidate("how does municipal rollover work", candidate{
		phrases: []string{"how does municipal rollover work"},
	})

	assert.InDelta(t, phraseWeight, result.Score, 1e-9)
	assert.Equal(t, models.TierPhrase, result.Tier)
}

func TestScoreCandidate_PhraseBelowThresholdIgnored(t *testing.T) {
	result := scoreCandidate("calendar due dates", candidate{
		phrases: []string{"how does municipal rollover work"},
	})

	assert.Zero(t, result.Score)
	assert.Equal(t, models.TierNone, result.Tier)
}

func TestScoreCandidate_SynonymTier(t *testing.T) {
	result := scoreCandidate("what is the local tax module", candidate{
		synonyms: []string{"local tax"},
	})

	assert.Equal(t, synonymWeight, result.Score)
	assert.Equal(t, models.TierSynonym, result.Tier)
}

func TestScoreCandidate_ContextCap(t *testing.T) {
	// Four matching tokens at contextWeight each would exceed the cap.
	result := scoreCandidate("municipal rollover jurisdiction allocation", candidate{
		contextTerms: []string{"municipal", "rollover", "jurisdiction", "allocation"},
	})

	assert.Equal(t, contextScoreCap, result.Score)
	assert.Equal(t, models.TierContext, result.Tier)
}

func TestScoreCandidate_ShortTokensSkipContext(t *testing.T) {
	result := scoreCandidate("is it on", candidate{
		contextTerms: []string{"is", "it", "on"},
	})

	assert.Zero(t, result.Score)
}

func TestScoreCandidate_NoMatch(t *testing.T) {
	result := scoreCandidate("zzqxnonsense123", candidate{
		keywords:     []string{"municipal"},
		phrases:      []string{"how does municipal rollover work"},
		synonyms:     []string{"local tax"},
		contextTerms: []string{"jurisdiction"},
	})

	assert.Zero(t, result.Score)
	assert.Equal(t, models.TierNone, result.Tier)
	assert.Empty(t, result.Signals)
}

func TestNormalizedConfidence(t *testing.T) {
	assert.Equal(t, 0.0, NormalizedConfidence(0))
	assert.Equal(t, 0.5, NormalizedConfidence(ReferenceMaxScore/2))
	assert.Equal(t, 1.0, NormalizedConfidence(ReferenceMaxScore))
	assert.Equal(t, 1.0, NormalizedConfidence(ReferenceMaxScore*3))
	assert.Equal(t, 0.0, NormalizedConfidence(-1))
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"municipal", "rollover"}, tokenize("Municipal, rollover!"))
	assert.Equal(t, []string{"gfa", "2024"}, tokenize("GFA 2024"))
	assert.Empty(t, tokenize("  ...  "))
}
