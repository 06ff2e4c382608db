package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"mindflow-backend/application/ports"
	"mindflow-backend/domain/analysis"
	"mindflow-backend/domain/config"
	"mindflow-backend/domain/core/aggregates"
	"mindflow-backend/domain/core/entities"
	"mindflow-backend/domain/core/validators"
	"mindflow-backend/domain/events"
	pkgerrors "mindflow-backend/pkg/errors"
	"mindflow-backend/pkg/observability"
)

// Persistence keys for the external key-value service. Each key holds the
// full serialized collection.
const (
	KeyDocuments  = "documents"
	KeyTasks      = "tasks"
	KeyCategories = "categories"
)

// StoreService owns the document, task, and category collections. The
// in-memory state is authoritative for the session; every mutation is
// written through to the blob store, and a failed write is logged and
// reported but never rolls back memory.
//
// The store assumes one logical writer (a single user session); the mutex
// only protects against the server's own concurrent request handling.
type StoreService struct {
	mu sync.Mutex

	documents  []*entities.Document
	tasks      []*entities.Task
	categories []entities.Category

	blob      ports.BlobStore
	publisher ports.EventPublisher
	validator *validators.DocumentValidator
	cfg       *config.DomainConfig
	logger    *zap.Logger
	metrics   *observability.Collector
}

// NewStoreService creates a store backed by the given blob store.
func NewStoreService(
	blob ports.BlobStore,
	publisher ports.EventPublisher,
	cfg *config.DomainConfig,
	logger *zap.Logger,
	metrics *observability.Collector,
) *StoreService {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	return &StoreService{
		documents:  []*entities.Document{},
		tasks:      []*entities.Task{},
		categories: []entities.Category{},
		blob:       blob,
		publisher:  publisher,
		validator:  validators.NewDocumentValidator(cfg),
		cfg:        cfg,
		logger:     logger,
		metrics:    metrics,
	}
}

// Hydrate loads the persisted collections into memory. Missing keys leave
// the collections empty; read failures are logged and the session starts
// fresh rather than failing to boot.
func (s *StoreService) Hydrate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.blob.Load(ctx, KeyDocuments, &s.documents); err != nil {
		s.logger.Error("loading documents", zap.Error(err))
	}
	if _, err := s.blob.Load(ctx, KeyTasks, &s.tasks); err != nil {
		s.logger.Error("loading tasks", zap.Error(err))
	}
	if _, err := s.blob.Load(ctx, KeyCategories, &s.categories); err != nil {
		s.logger.Error("loading categories", zap.Error(err))
	}

	if s.documents == nil {
		s.documents = []*entities.Document{}
	}
	if s.tasks == nil {
		s.tasks = []*entities.Task{}
	}
	if s.categories == nil {
		s.categories = []entities.Category{}
	}

	s.logger.Info("store hydrated",
		zap.Int("documents", len(s.documents)),
		zap.Int("tasks", len(s.tasks)),
		zap.Int("categories", len(s.categories)))

	return nil
}

// CreateDocument saves a new document from raw content and the accepted
// classification results. The first result becomes the primary category;
// without results the document lands in the general category.
func (s *StoreService) CreateDocument(
	ctx context.Context,
	content, title string,
	classification []analysis.Result,
	tags []string,
) (*entities.Document, error) {
	if err := s.validator.ValidateNewDocument(content, title); err != nil {
		return nil, err
	}

	doc, err := entities.NewDocument(content, title, categoryRefs(classification), tags)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.documents = append(s.documents, doc)
	s.persistDocumentsLocked(ctx)
	s.mergeCategoriesLocked(ctx, categoriesFromResults(classification))
	s.mu.Unlock()

	s.metrics.DocumentsCreated.Inc()
	s.publish(ctx, events.NewDocumentCreated(doc.ID, doc.Title, doc.PrimaryCategoryID, doc.Tags, doc.CreatedAt))

	return doc, nil
}

// UpdateDocument applies a partial update. A missing id is a hard failure
// the caller must surface.
func (s *StoreService) UpdateDocument(ctx context.Context, id string, patch entities.DocumentPatch) (*entities.Document, error) {
	s.mu.Lock()
	doc := s.findDocumentLocked(id)
	if doc == nil {
		s.mu.Unlock()
		return nil, pkgerrors.NewNotFoundError("document")
	}

	// Patch a copy first so a rejected update never leaves partial state
	// in the collection.
	updated := *doc
	updated.Apply(patch)
	if err := s.validator.ValidateDocument(&updated); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	*doc = updated
	s.persistDocumentsLocked(ctx)
	s.mu.Unlock()

	s.publish(ctx, events.NewDocumentUpdated(doc.ID, doc.Tags, doc.UpdatedAt))

	return doc, nil
}

// DeleteDocument removes a document. Deleting an absent id is a no-op.
func (s *StoreService) DeleteDocument(ctx context.Context, id string) error {
	s.mu.Lock()
	kept := s.documents[:0]
	removed := false
	for _, doc := range s.documents {
		if doc.ID == id {
			removed = true
			continue
		}
		kept = append(kept, doc)
	}
	s.documents = kept
	if removed {
		s.persistDocumentsLocked(ctx)
	}
	s.mu.Unlock()

	if removed {
		s.metrics.DocumentsDeleted.Inc()
		s.publish(ctx, events.NewDocumentDeleted(id, time.Now()))
	}
	return nil
}

// GetDocument returns a document by id.
func (s *StoreService) GetDocument(id string) (*entities.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if doc := s.findDocumentLocked(id); doc != nil {
		return doc, nil
	}
	return nil, pkgerrors.NewNotFoundError("document")
}

// Documents returns the document collection in insertion order.
func (s *StoreService) Documents() []*entities.Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*entities.Document, len(s.documents))
	copy(out, s.documents)
	return out
}

// FilterByCategory returns documents whose primary category or any category
// ref matches the id, preserving collection order.
func (s *StoreService) FilterByCategory(categoryID string) []*entities.Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*entities.Document, 0)
	for _, doc := range s.documents {
		if doc.MatchesCategory(categoryID) {
			out = append(out, doc)
		}
	}
	return out
}

// FilterByTag returns documents carrying the exact tag, preserving
// collection order.
func (s *StoreService) FilterByTag(tag string) []*entities.Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*entities.Document, 0)
	for _, doc := range s.documents {
		if doc.HasTag(tag) {
			out = append(out, doc)
		}
	}
	return out
}

// CreateTask adds a task under a category. A blank title silently declines
// the operation: no task is created and no error surfaces.
func (s *StoreService) CreateTask(ctx context.Context, categoryID, categoryName, title string) (*entities.Task, error) {
	if strings.TrimSpace(title) == "" {
		s.logger.Debug("declining task with blank title", zap.String("category_id", categoryID))
		return nil, nil
	}

	task, err := entities.NewTask(categoryID, categoryName, title)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.tasks = append(s.tasks, task)
	s.persistTasksLocked(ctx)
	s.mu.Unlock()

	s.metrics.TasksCreated.Inc()
	s.publish(ctx, events.NewTaskCreated(task.ID, task.CategoryID, task.Title, task.CreatedAt))

	return task, nil
}

// ToggleTask flips a task's completed flag. Toggling an absent id is a
// no-op.
func (s *StoreService) ToggleTask(ctx context.Context, id string) (*entities.Task, error) {
	s.mu.Lock()
	var toggled *entities.Task
	for _, task := range s.tasks {
		if task.ID == id {
			task.Toggle()
			toggled = task
			break
		}
	}
	if toggled != nil {
		s.persistTasksLocked(ctx)
	}
	s.mu.Unlock()

	if toggled != nil && toggled.Completed {
		s.publish(ctx, events.NewTaskCompleted(toggled.ID, time.Now()))
	}
	return toggled, nil
}

// DeleteTask removes a task. Deleting an absent id is a no-op.
func (s *StoreService) DeleteTask(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.tasks[:0]
	removed := false
	for _, task := range s.tasks {
		if task.ID == id {
			removed = true
			continue
		}
		kept = append(kept, task)
	}
	s.tasks = kept
	if removed {
		s.persistTasksLocked(ctx)
	}
	return nil
}

// Tasks returns the task collection in insertion order.
func (s *StoreService) Tasks() []*entities.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*entities.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// TasksForCategory returns the tasks attached to a category.
func (s *StoreService) TasksForCategory(categoryID string) []*entities.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*entities.Task, 0)
	for _, task := range s.tasks {
		if task.CategoryID == categoryID {
			out = append(out, task)
		}
	}
	return out
}

// MergeCategories unions the incoming categories into the sidebar list and
// returns the updated list.
func (s *StoreService) MergeCategories(ctx context.Context, incoming []entities.Category) []entities.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.mergeCategoriesLocked(ctx, incoming)
}

// Categories returns the accumulated category list.
func (s *StoreService) Categories() []entities.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entities.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// BuildGraph derives the knowledge graph from the current documents.
func (s *StoreService) BuildGraph() *aggregates.Graph {
	s.mu.Lock()
	docs := make([]*entities.Document, len(s.documents))
	copy(docs, s.documents)
	s.mu.Unlock()

	s.metrics.GraphBuilds.Inc()
	return aggregates.BuildGraph(docs)
}

func (s *StoreService) findDocumentLocked(id string) *entities.Document {
	for _, doc := range s.documents {
		if doc.ID == id {
			return doc
		}
	}
	return nil
}

func (s *StoreService) mergeCategoriesLocked(ctx context.Context, incoming []entities.Category) []entities.Category {
	if len(incoming) > 0 {
		s.categories = entities.MergeCategories(s.categories, incoming)
		s.persist(ctx, KeyCategories, s.categories)
	}

	out := make([]entities.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

func (s *StoreService) persistDocumentsLocked(ctx context.Context) {
	s.persist(ctx, KeyDocuments, s.documents)
}

func (s *StoreService) persistTasksLocked(ctx context.Context) {
	s.persist(ctx, KeyTasks, s.tasks)
}

// persist writes a collection through to the blob store. Failures are
// logged; in-memory state stays authoritative for the session. Operation
// metrics belong to the instrumented store decorator.
func (s *StoreService) persist(ctx context.Context, key string, value any) {
	if err := s.blob.Save(ctx, key, value); err != nil {
		s.logger.Error("persisting collection, changes may not survive a reload",
			zap.String("key", key), zap.Error(err))
	}
}

func (s *StoreService) publish(ctx context.Context, event events.DomainEvent) {
	if s.publisher == nil || !s.cfg.EnableEventPublishing {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("publishing event",
			zap.String("event_type", event.GetEventType()), zap.Error(err))
	}
}

// categoryRefs converts classification results into the category refs a
// document carries.
func categoryRefs(results []analysis.Result) []entities.CategoryRef {
	refs := make([]entities.CategoryRef, 0, len(results))
	for _, r := range results {
		refs = append(refs, entities.CategoryRef{
			ID:    r.ID,
			Title: CategoryDisplayName(r.Path),
			Path:  r.Path,
		})
	}
	return refs
}

// categoriesFromResults converts classification results into sidebar
// category entries for merging.
func categoriesFromResults(results []analysis.Result) []entities.Category {
	categories := make([]entities.Category, 0, len(results))
	for _, r := range results {
		categories = append(categories, entities.Category{
			ID:   r.ID,
			Name: CategoryDisplayName(r.Path),
		})
	}
	return categories
}

// CategoryDisplayName renders a taxonomy path as a sidebar label, keeping
// the two broadest levels: ["Health","Sleep","Routine"] becomes
// "Health > Sleep".
func CategoryDisplayName(path []string) string {
	switch {
	case len(path) == 0:
		return "General"
	case len(path) == 1:
		return path[0]
	default:
		return path[0] + " > " + path[1]
	}
}
