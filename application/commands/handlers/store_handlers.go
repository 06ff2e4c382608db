// Package handlers wires store commands to the store service.
package handlers

import (
	"context"
	"fmt"

	"mindflow-backend/application/commands"
	"mindflow-backend/application/commands/bus"
	"mindflow-backend/application/services"
)

// StoreCommandHandler executes all store-mutating commands against the
// store service.
type StoreCommandHandler struct {
	store *services.StoreService
}

// NewStoreCommandHandler creates the handler.
func NewStoreCommandHandler(store *services.StoreService) *StoreCommandHandler {
	return &StoreCommandHandler{store: store}
}

// RegisterAll registers every store command on the bus.
func (h *StoreCommandHandler) RegisterAll(b *bus.CommandBus) error {
	for _, cmd := range []bus.Command{
		&commands.CreateDocumentCommand{},
		&commands.UpdateDocumentCommand{},
		&commands.DeleteDocumentCommand{},
		&commands.MergeCategoriesCommand{},
		&commands.CreateTaskCommand{},
		&commands.ToggleTaskCommand{},
		&commands.DeleteTaskCommand{},
	} {
		if err := b.Register(cmd, h); err != nil {
			return err
		}
	}
	return nil
}

// Handle implements bus.CommandHandler.
func (h *StoreCommandHandler) Handle(ctx context.Context, cmd bus.Command) error {
	switch c := cmd.(type) {
	case *commands.CreateDocumentCommand:
		doc, err := h.store.CreateDocument(ctx, c.Content, c.Title, c.Classification, c.Tags)
		if err != nil {
			return err
		}
		c.Created = doc
		return nil

	case *commands.UpdateDocumentCommand:
		doc, err := h.store.UpdateDocument(ctx, c.ID, c.Patch)
		if err != nil {
			return err
		}
		c.Updated = doc
		return nil

	case *commands.DeleteDocumentCommand:
		return h.store.DeleteDocument(ctx, c.ID)

	case *commands.MergeCategoriesCommand:
		c.Merged = h.store.MergeCategories(ctx, c.Incoming)
		return nil

	case *commands.CreateTaskCommand:
		task, err := h.store.CreateTask(ctx, c.CategoryID, c.CategoryName, c.Title)
		if err != nil {
			return err
		}
		c.Created = task
		return nil

	case *commands.ToggleTaskCommand:
		task, err := h.store.ToggleTask(ctx, c.ID)
		if err != nil {
			return err
		}
		c.Toggled = task
		return nil

	case *commands.DeleteTaskCommand:
		return h.store.DeleteTask(ctx, c.ID)

	default:
		return fmt.Errorf("unsupported command type %T", cmd)
	}
}
