package models

// MatchTier is the scoring category a candidate matched at. Higher tiers take
// precedence when scores tie.
type MatchTier int

const (
	TierNone MatchTier = iota
	TierContext
	TierSynonym
	TierPhrase
	TierKeyword
)

func (t MatchTier) String() string {
	switch t {
	case TierKeyword:
		return "keyword"
	case TierPhrase:
		return "phrase"
	case TierSynonym:
		return "synonym"
	case TierContext:
		return "context"
	default:
		return "none"
	}
}

// MatchResult is a scored candidate produced fresh per query. Exactly one of
// Topic and Entry is set.
type MatchResult struct {
	Topic *StaticTopic
	Entry *KnowledgeEntry

	Score   float64
	Tier    MatchTier
	Signals []string
}

// SourceKey identifies the matched knowledge item for logging and signals.
func (m *MatchResult) SourceKey() string {
	if m.Topic != nil {
		return m.Topic.Key
	}
	if m.Entry != nil {
		return m.Entry.ID.String()
	}
	return ""
}
