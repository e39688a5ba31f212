package models

type AnswerSource string

const (
	SourceLocal AnswerSource = "local"
	SourceAI    AnswerSource = "ai"
	SourceError AnswerSource = "error"
)

type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// ForceMode is the caller-supplied routing override.
type ForceMode string

const (
	ModeAuto  ForceMode = "auto"
	ModeLocal ForceMode = "local"
	ModeAI    ForceMode = "ai"
)

// QueryRequest is a sanitized, routable question.
type QueryRequest struct {
	Text      string
	ForceMode ForceMode
}

// Answer is the composed response to a query, whichever path produced it.
// RelatedTopics holds at most 4 entries, MatchSignals at most 3.
type Answer struct {
	Content       string
	Source        AnswerSource
	Confidence    Confidence
	RelatedTopics []string
	MatchSignals  []string
}
