// Package handlers wires store queries to the store service.
package handlers

import (
	"context"
	"fmt"

	"mindflow-backend/application/queries"
	"mindflow-backend/application/queries/bus"
	"mindflow-backend/application/services"
	"mindflow-backend/domain/core/aggregates"
	"mindflow-backend/domain/versioning"
)

// GraphView is the result of a GetGraphQuery.
type GraphView struct {
	Graph       *aggregates.Graph         `json:"graph,omitempty"`
	Snapshot    *versioning.GraphSnapshot `json:"snapshot"`
	NotModified bool                      `json:"-"`
}

// StoreQueryHandler executes all read queries against the store service.
type StoreQueryHandler struct {
	store *services.StoreService
}

// NewStoreQueryHandler creates the handler.
func NewStoreQueryHandler(store *services.StoreService) *StoreQueryHandler {
	return &StoreQueryHandler{store: store}
}

// RegisterAll registers every store query on the bus.
func (h *StoreQueryHandler) RegisterAll(b *bus.QueryBus) error {
	for _, q := range []bus.Query{
		&queries.GetDocumentQuery{},
		&queries.ListDocumentsQuery{},
		&queries.ListTasksQuery{},
		&queries.ListCategoriesQuery{},
		&queries.GetGraphQuery{},
	} {
		if err := b.Register(q, h); err != nil {
			return err
		}
	}
	return nil
}

// Handle implements bus.QueryHandler.
func (h *StoreQueryHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	switch q := query.(type) {
	case *queries.GetDocumentQuery:
		return h.store.GetDocument(q.ID)

	case *queries.ListDocumentsQuery:
		switch {
		case q.CategoryID != "":
			return h.store.FilterByCategory(q.CategoryID), nil
		case q.Tag != "":
			return h.store.FilterByTag(q.Tag), nil
		default:
			return h.store.Documents(), nil
		}

	case *queries.ListTasksQuery:
		if q.CategoryID != "" {
			return h.store.TasksForCategory(q.CategoryID), nil
		}
		return h.store.Tasks(), nil

	case *queries.ListCategoriesQuery:
		return h.store.Categories(), nil

	case *queries.GetGraphQuery:
		graph := h.store.BuildGraph()
		snapshot, err := versioning.Snapshot(graph)
		if err != nil {
			return nil, err
		}
		if snapshot.Matches(q.Checksum) {
			return &GraphView{Snapshot: snapshot, NotModified: true}, nil
		}
		return &GraphView{Graph: graph, Snapshot: snapshot}, nil

	default:
		return nil, fmt.Errorf("unsupported query type %T", query)
	}
}
