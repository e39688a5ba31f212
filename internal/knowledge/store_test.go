package knowledge

import (
	"context"
	"errors"
	"testing"

	"tritech-assistant/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeEntrySource struct {
	entries []models.KnowledgeEntry
	err     error
}

func (f *fakeEntrySource) ListEntries(ctx context.Context) ([]models.KnowledgeEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.entries, nil
}

func newTestDynamicProvider(t *testing.T, entries ...models.KnowledgeEntry) *DynamicProvider {
	t.Helper()
	provider := NewDynamicProvider(&fakeEntrySource{entries: entries}, zap.NewNop())
	require.NoError(t, provider.Reload(context.Background()))
	return provider
}

func TestStore_ExactQuestionIsTopMatch(t *testing.T) {
	entry := models.KnowledgeEntry{
		ID:       uuid.New(),
		Product:  models.ProductPremiumTax,
		Question: "How do I configure electronic filing exports?",
		Answer:   "Open the export settings and select the e-file format.",
		Keywords: []string{"export", "e-file"},
	}
	other := models.KnowledgeEntry{
		ID:       uuid.New(),
		Product:  models.ProductPremiumTax,
		Question: "Where are the calendar due dates maintained?",
		Answer:   "Due dates live in the compliance calendar module.",
		Keywords: []string{"calendar", "due dates"},
	}

	store := NewStore(zap.NewNop(), newTestDynamicProvider(t, entry, other))

	results := store.Search(entry.Question)
	require.NotEmpty(t, results)

	top := results[0]
	require.NotNil(t, top.Entry)
	assert.Equal(t, entry.ID, top.Entry.ID)
	assert.Equal(t, models.TierKeyword, top.Tier)
}

func TestStore_SearchIsDeterministic(t *testing.T) {
	entries := []models.KnowledgeEntry{
		{ID: uuid.New(), Question: "What does the allocator schedule do?", Keywords: []string{"allocator", "schedule"}},
		{ID: uuid.New(), Question: "How is the allocator configured?", Keywords: []string{"allocator", "configuration"}},
		{ID: uuid.New(), Question: "Can the allocator run nightly?", Keywords: []string{"allocator", "nightly"}},
	}

	store := NewStore(zap.NewNop(),
		NewStaticProvider(DefaultTopics()),
		newTestDynamicProvider(t, entries...),
	)

	first := store.Search("allocator schedule configuration")
	second := store.Search("allocator schedule configuration")

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].SourceKey(), second[i].SourceKey(), "position %d", i)
		assert.Equal(t, first[i].Score, second[i].Score, "position %d", i)
	}
}

func TestStore_ZeroScoreResultsDropped(t *testing.T) {
	store := NewStore(zap.NewNop(), NewStaticProvider(DefaultTopics()))

	results := store.Search("zzqxnonsense123")
	assert.Empty(t, results)
}

func TestStore_EmptyQueryReturnsNothing(t *testing.T) {
	store := NewStore(zap.NewNop(), NewStaticProvider(DefaultTopics()))

	assert.Nil(t, store.Search(""))
	assert.Nil(t, store.Search("   "))
}

func TestStore_StaticWinsFullTies(t *testing.T) {
	topic := models.StaticTopic{
		Key:          "widget-topic",
		Keywords:     []string{"widget"},
		ContextTerms: []string{"widget"},
		Overview:     "Widgets.",
	}
	entry := models.KnowledgeEntry{
		ID:       uuid.New(),
		Question: "Unrelated question text",
		Keywords: []string{"widget"},
	}

	store := NewStore(zap.NewNop(),
		NewStaticProvider([]models.StaticTopic{topic}),
		newTestDynamicProvider(t, entry),
	)

	results := store.Search("widget")
	require.Len(t, results, 2)
	assert.Equal(t, results[0].Score, results[1].Score)
	require.NotNil(t, results[0].Topic)
	assert.Equal(t, "widget-topic", results[0].Topic.Key)
	require.NotNil(t, results[1].Entry)
	assert.Equal(t, entry.ID, results[1].Entry.ID)
}

func TestStore_MunicipalRolloverRoutesToStaticTopic(t *testing.T) {
	store := NewStore(zap.NewNop(), NewStaticProvider(DefaultTopics()))

	results := store.Search("How does the municipal rollover process work?")
	require.NotEmpty(t, results)

	top := results[0]
	require.NotNil(t, top.Topic)
	assert.Equal(t, "municipal-tax", top.Topic.Key)
	assert.Equal(t, models.TierKeyword, top.Tier)
	assert.GreaterOrEqual(t, NormalizedConfidence(top.Score), 0.7)
}

func TestDynamicProvider_ReloadKeepsSnapshotOnFailure(t *testing.T) {
	source := &fakeEntrySource{entries: []models.KnowledgeEntry{
		{ID: uuid.New(), Question: "What is the GFA tracking report?", Keywords: []string{"gfa"}},
	}}
	provider := NewDynamicProvider(source, zap.NewNop())

	require.NoError(t, provider.Reload(context.Background()))
	assert.Equal(t, 1, provider.Len())

	source.err = errors.New("connection refused")
	require.Error(t, provider.Reload(context.Background()))
	assert.Equal(t, 1, provider.Len(), "failed reload must keep the previous snapshot")

	source.err = nil
	source.entries = append(source.entries, models.KnowledgeEntry{
		ID: uuid.New(), Question: "Second entry", Keywords: []string{"second"},
	})
	require.NoError(t, provider.Reload(context.Background()))
	assert.Equal(t, 2, provider.Len())
}

func TestDynamicProvider_StartsEmpty(t *testing.T) {
	provider := NewDynamicProvider(&fakeEntrySource{}, zap.NewNop())

	assert.Zero(t, provider.Len())
	assert.Empty(t, provider.Search("anything"))
}
