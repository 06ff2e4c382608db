package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mindflow-backend/domain/analysis"
	"mindflow-backend/domain/core/entities"
	"mindflow-backend/domain/events"
	pkgerrors "mindflow-backend/pkg/errors"
	"mindflow-backend/pkg/observability"
)

// fakeBlobStore keeps serialized values in memory and can be told to fail.
type fakeBlobStore struct {
	mu     sync.Mutex
	data   map[string][]byte
	failOn string
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{data: make(map[string][]byte)}
}

func (f *fakeBlobStore) Save(ctx context.Context, key string, value any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failOn == key {
		return errors.New("blob store unavailable")
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = raw
	return nil
}

func (f *fakeBlobStore) Load(ctx context.Context, key string, out any) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	raw, ok := f.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, out)
}

func (f *fakeBlobStore) Clear(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.data, key)
	return nil
}

func (f *fakeBlobStore) Exists(ctx context.Context, key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.data[key]
	return ok, nil
}

type capturingPublisher struct {
	mu     sync.Mutex
	events []events.DomainEvent
}

func (p *capturingPublisher) Publish(ctx context.Context, event events.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *capturingPublisher) PublishBatch(ctx context.Context, batch []events.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, batch...)
	return nil
}

func (p *capturingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.GetEventType())
	}
	return out
}

func newTestStore(t *testing.T) (*StoreService, *fakeBlobStore, *capturingPublisher) {
	t.Helper()
	blob := newFakeBlobStore()
	publisher := &capturingPublisher{}
	store := NewStoreService(blob, publisher, nil, zap.NewNop(), observability.NewCollector("mindflow"))
	require.NoError(t, store.Hydrate(context.Background()))
	return store, blob, publisher
}

func sleepResults() []analysis.Result {
	return analysis.Classify("my sleep schedule keeps slipping and my health suffers")
}

func TestCreateDocument(t *testing.T) {
	store, blob, publisher := newTestStore(t)
	ctx := context.Background()

	doc, err := store.CreateDocument(ctx, "my sleep schedule keeps slipping", "Sleep log", sleepResults(), []string{"sleep", "health"})

	require.NoError(t, err)
	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, doc.CreatedAt, doc.UpdatedAt)
	assert.NotEqual(t, "general", doc.PrimaryCategoryID)

	// Write-through: the collection is persisted under its key.
	exists, err := blob.Exists(ctx, KeyDocuments)
	require.NoError(t, err)
	assert.True(t, exists)

	// Classification results become sidebar categories.
	categories := store.Categories()
	assert.NotEmpty(t, categories)
	for _, c := range categories {
		assert.True(t, c.IsNew)
	}

	assert.Contains(t, publisher.types(), "document.created")
}

func TestCreateDocument_NoClassificationFallsBackToGeneral(t *testing.T) {
	store, _, _ := newTestStore(t)

	doc, err := store.CreateDocument(context.Background(), "stray thought", "", nil, nil)

	require.NoError(t, err)
	assert.Equal(t, "general", doc.PrimaryCategoryID)
	assert.Equal(t, "General", doc.PrimaryCategoryName)
}

func TestCreateDocument_RejectsBlankContent(t *testing.T) {
	store, _, _ := newTestStore(t)

	_, err := store.CreateDocument(context.Background(), "   ", "", nil, nil)

	assert.True(t, pkgerrors.IsValidation(err))
	assert.Empty(t, store.Documents())
}

func TestUpdateDocument(t *testing.T) {
	store, _, _ := newTestStore(t)
	ctx := context.Background()

	doc, err := store.CreateDocument(ctx, "draft", "", nil, nil)
	require.NoError(t, err)

	refined := "draft."
	updated, err := store.UpdateDocument(ctx, doc.ID, entities.DocumentPatch{RefinedContent: &refined})

	require.NoError(t, err)
	assert.Equal(t, "draft.", updated.RefinedContent)
	assert.Equal(t, "draft", updated.OriginalContent)
	assert.Equal(t, doc.CreatedAt, updated.CreatedAt)
}

func TestUpdateDocument_RejectedPatchLeavesDocumentUntouched(t *testing.T) {
	store, _, _ := newTestStore(t)
	ctx := context.Background()

	doc, err := store.CreateDocument(ctx, "draft", "", nil, []string{"sleep"})
	require.NoError(t, err)

	// One tag over the limit: the whole patch must be rejected.
	tooMany := []string{"1", "2", "3", "4", "5", "6"}
	_, err = store.UpdateDocument(ctx, doc.ID, entities.DocumentPatch{Tags: tooMany})
	require.True(t, pkgerrors.IsValidation(err))

	stored, err := store.GetDocument(doc.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"sleep"}, stored.Tags)
	assert.Equal(t, doc.UpdatedAt, stored.UpdatedAt)
}

func TestUpdateDocument_MissingIDIsNotFound(t *testing.T) {
	store, _, _ := newTestStore(t)

	_, err := store.UpdateDocument(context.Background(), "doc-missing", entities.DocumentPatch{})

	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestDeleteDocument_Idempotent(t *testing.T) {
	store, _, _ := newTestStore(t)
	ctx := context.Background()

	doc, err := store.CreateDocument(ctx, "to be removed", "", nil, nil)
	require.NoError(t, err)

	require.NoError(t, store.DeleteDocument(ctx, doc.ID))
	assert.Empty(t, store.Documents())

	// Absent id: still no error.
	assert.NoError(t, store.DeleteDocument(ctx, doc.ID))
}

func TestCreateTask_BlankTitleIsSilentNoOp(t *testing.T) {
	store, _, _ := newTestStore(t)

	task, err := store.CreateTask(context.Background(), "general", "General", "   ")

	assert.NoError(t, err)
	assert.Nil(t, task)
	assert.Empty(t, store.Tasks())
}

func TestTaskLifecycle(t *testing.T) {
	store, _, publisher := newTestStore(t)
	ctx := context.Background()

	task, err := store.CreateTask(ctx, "general", "General", "review notes")
	require.NoError(t, err)
	require.NotNil(t, task)

	toggled, err := store.ToggleTask(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)
	assert.Contains(t, publisher.types(), "task.completed")

	require.NoError(t, store.DeleteTask(ctx, task.ID))
	assert.Empty(t, store.Tasks())

	// Toggling after deletion is a no-op.
	gone, err := store.ToggleTask(ctx, task.ID)
	assert.NoError(t, err)
	assert.Nil(t, gone)
}

func TestFilterByTag(t *testing.T) {
	store, _, _ := newTestStore(t)
	ctx := context.Background()

	tagged := make([]string, 0, 2)
	for i, tags := range [][]string{
		{"sleep", "health"},
		{"travel"},
		{"sleep"},
		{"notes"},
		nil,
	} {
		doc, err := store.CreateDocument(ctx, "entry", "", nil, tags)
		require.NoError(t, err)
		if i == 0 || i == 2 {
			tagged = append(tagged, doc.ID)
		}
	}

	matched := store.FilterByTag("sleep")
	require.Len(t, matched, 2)
	assert.Equal(t, tagged[0], matched[0].ID)
	assert.Equal(t, tagged[1], matched[1].ID)
}

func TestFilterByCategory(t *testing.T) {
	store, _, _ := newTestStore(t)
	ctx := context.Background()

	classified, err := store.CreateDocument(ctx, "my sleep schedule keeps slipping", "", sleepResults(), nil)
	require.NoError(t, err)
	_, err = store.CreateDocument(ctx, "unrelated", "", nil, nil)
	require.NoError(t, err)

	matched := store.FilterByCategory(classified.PrimaryCategoryID)
	require.Len(t, matched, 1)
	assert.Equal(t, classified.ID, matched[0].ID)
}

func TestMergeCategories_SetUnion(t *testing.T) {
	store, _, _ := newTestStore(t)
	ctx := context.Background()

	first := store.MergeCategories(ctx, []entities.Category{{ID: "a", Name: "A"}})
	require.Len(t, first, 1)

	second := store.MergeCategories(ctx, []entities.Category{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}})
	require.Len(t, second, 2)
	assert.Equal(t, "a", second[0].ID, "existing entries keep their position")
	assert.Equal(t, "b", second[1].ID)
}

func TestPersistenceFailureIsNonFatal(t *testing.T) {
	store, blob, _ := newTestStore(t)
	blob.failOn = KeyDocuments

	doc, err := store.CreateDocument(context.Background(), "kept in memory", "", nil, nil)

	require.NoError(t, err)
	assert.Len(t, store.Documents(), 1)
	assert.Equal(t, doc.ID, store.Documents()[0].ID)
}

func TestHydrateRestoresCollections(t *testing.T) {
	blob := newFakeBlobStore()
	publisher := &capturingPublisher{}
	collector := observability.NewCollector("mindflow")
	ctx := context.Background()

	first := NewStoreService(blob, publisher, nil, zap.NewNop(), collector)
	require.NoError(t, first.Hydrate(ctx))
	doc, err := first.CreateDocument(ctx, "survives a restart", "Kept", nil, []string{"notes"})
	require.NoError(t, err)
	_, err = first.CreateTask(ctx, "general", "General", "carry over")
	require.NoError(t, err)

	second := NewStoreService(blob, publisher, nil, zap.NewNop(), collector)
	require.NoError(t, second.Hydrate(ctx))

	require.Len(t, second.Documents(), 1)
	assert.Equal(t, doc.ID, second.Documents()[0].ID)
	assert.Len(t, second.Tasks(), 1)
}

func TestBuildGraphFromStore(t *testing.T) {
	store, _, _ := newTestStore(t)
	ctx := context.Background()

	_, err := store.CreateDocument(ctx, "first", "One", nil, []string{"x"})
	require.NoError(t, err)
	_, err = store.CreateDocument(ctx, "second", "Two", nil, []string{"x"})
	require.NoError(t, err)

	graph := store.BuildGraph()

	assert.Equal(t, 3, graph.NodeCount())
	assert.Equal(t, 2, graph.EdgeCount())
}

func TestCategoryDisplayName(t *testing.T) {
	assert.Equal(t, "Health > Sleep", CategoryDisplayName([]string{"Health", "Sleep", "Routine"}))
	assert.Equal(t, "Specific Topics > Travel", CategoryDisplayName([]string{"Specific Topics", "Travel", "Analysis", "Development"}))
	assert.Equal(t, "Reflection", CategoryDisplayName([]string{"Reflection"}))
	assert.Equal(t, "General", CategoryDisplayName(nil))
}
