package models

// TopicSection is one structured block of a static topic's content.
type TopicSection struct {
	Title string
	Body  string
}

// StaticTopic is a compiled-in knowledge unit, immutable for the process
// lifetime. Keywords, synonyms, context terms and phrases feed the scoring
// tiers; Overview and Sections form the rendered answer.
type StaticTopic struct {
	Key          string
	Keywords     []string
	Synonyms     []string
	ContextTerms []string
	Phrases      []string
	Overview     string
	Sections     []TopicSection
}
