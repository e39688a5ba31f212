package dto

type HealthResponse struct {
	Status    string         `json:"status"`
	Timestamp string         `json:"timestamp"`
	Services  HealthServices `json:"services"`
}

type HealthServices struct {
	AIGateway        string `json:"ai_gateway"`
	KnowledgeEntries int    `json:"knowledge_entries"`
}

type ReloadResponse struct {
	Status  string `json:"status"`
	Entries int    `json:"entries"`
}
