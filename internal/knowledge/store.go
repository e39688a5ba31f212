package knowledge

import (
	"context"
	"sort"
	"strings"
	"sync/atomic"

	"tritech-assistant/internal/models"

	"go.uber.org/zap"
)

// Provider is one searchable knowledge source. Implementations must rank on
// the shared scoring scale so results from different providers stay
// comparable.
type Provider interface {
	Search(query string) []models.MatchResult
}

// Store merges the ranked results of its providers into one list. Provider
// order is significant: earlier providers win full ties.
type Store struct {
	providers []Provider
	logger    *zap.Logger
}

func NewStore(logger *zap.Logger, providers ...Provider) *Store {
	return &Store{
		providers: providers,
		logger:    logger,
	}
}

// Search ranks all candidates against the query. Zero-score candidates are
// dropped; ties are broken by tier precedence, then by source order.
func (s *Store) Search(query string) []models.MatchResult {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var results []models.MatchResult
	for _, provider := range s.providers {
		for _, match := range provider.Search(query) {
			if match.Score > 0 {
				results = append(results, match)
			}
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Tier > results[j].Tier
	})

	s.logger.Debug("Knowledge search completed",
		zap.String("query", query),
		zap.Int("results", len(results)),
	)

	return results
}

// StaticProvider searches the compiled-in topics in declaration order.
type StaticProvider struct {
	topics []models.StaticTopic
}

func NewStaticProvider(topics []models.StaticTopic) *StaticProvider {
	return &StaticProvider{topics: topics}
}

func (p *StaticProvider) Search(query string) []models.MatchResult {
	results := make([]models.MatchResult, 0, len(p.topics))
	for i := range p.topics {
		topic := &p.topics[i]
		results = append(results, scoreCandidate(query, candidate{
			topic:        topic,
			keywords:     topic.Keywords,
			phrases:      topic.Phrases,
			synonyms:     topic.Synonyms,
			contextTerms: topic.ContextTerms,
		}))
	}
	return results
}

// EntrySource is the read interface of the ingestion collaborator.
type EntrySource interface {
	ListEntries(ctx context.Context) ([]models.KnowledgeEntry, error)
}

// DynamicProvider searches an atomically swapped snapshot of ingested
// entries. Queries in flight keep the snapshot they started with; Reload
// never exposes a partially built list.
type DynamicProvider struct {
	source   EntrySource
	logger   *zap.Logger
	snapshot atomic.Pointer[[]models.KnowledgeEntry]
}

func NewDynamicProvider(source EntrySource, logger *zap.Logger) *DynamicProvider {
	p := &DynamicProvider{
		source: source,
		logger: logger,
	}
	empty := []models.KnowledgeEntry{}
	p.snapshot.Store(&empty)
	return p
}

// Reload fetches the current entry list and installs it as the new snapshot.
// On failure the previous snapshot stays in place.
func (p *DynamicProvider) Reload(ctx context.Context) error {
	entries, err := p.source.ListEntries(ctx)
	if err != nil {
		return err
	}
	if entries == nil {
		entries = []models.KnowledgeEntry{}
	}

	p.snapshot.Store(&entries)
	p.logger.Info("Knowledge entries reloaded", zap.Int("count", len(entries)))
	return nil
}

// Len reports the size of the current snapshot.
func (p *DynamicProvider) Len() int {
	return len(*p.snapshot.Load())
}

func (p *DynamicProvider) Search(query string) []models.MatchResult {
	entries := *p.snapshot.Load()

	results := make([]models.MatchResult, 0, len(entries))
	for i := range entries {
		entry := &entries[i]

		// The entry's question counts as a keyword: a query quoting the
		// question verbatim is the strongest possible signal.
		keywords := make([]string, 0, len(entry.Keywords)+1)
		keywords = append(keywords, entry.Keywords...)
		keywords = append(keywords, entry.Question)

		results = append(results, scoreCandidate(query, candidate{
			entry:        entry,
			keywords:     keywords,
			phrases:      []string{entry.Question},
			contextTerms: entry.Keywords,
		}))
	}
	return results
}
