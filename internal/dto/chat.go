package dto

type ChatRequest struct {
	Message   string `json:"message"`
	ForceMode string `json:"forceMode,omitempty"`
}

type ChatResponse struct {
	Response      string   `json:"response"`
	Source        string   `json:"source"`
	Confidence    string   `json:"confidence"`
	RelatedTopics []string `json:"relatedTopics"`
	MatchSignals  []string `json:"matchSignals,omitempty"`
}
