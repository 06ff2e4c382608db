package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"mindflow-backend/application/commands"
	"mindflow-backend/application/commands/bus"
	"mindflow-backend/application/queries"
	querybus "mindflow-backend/application/queries/bus"
	"mindflow-backend/domain/core/entities"
	"mindflow-backend/pkg/common"
	"mindflow-backend/pkg/utils"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	logger     *zap.Logger
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	logger *zap.Logger,
) *CategoryHandler {
	return &CategoryHandler{
		commandBus: commandBus,
		queryBus:   queryBus,
		logger:     logger,
	}
}

// MergeCategoriesRequest represents the request body for merging categories
type MergeCategoriesRequest struct {
	Categories []entities.Category `json:"categories" validate:"required,dive"`
}

// ListCategories handles GET /categories
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), &queries.ListCategoriesQuery{})
	if err != nil {
		respondAppError(w, h.logger, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// MergeCategories handles POST /categories/merge. Existing entries keep
// their position; genuinely new ones are appended and flagged.
func (h *CategoryHandler) MergeCategories(w http.ResponseWriter, r *http.Request) {
	var req MergeCategoriesRequest
	if err := common.ParseJSONBody(w, r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest,
			common.StandardErrorCodes.BadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest,
			common.StandardErrorCodes.ValidationError, err.Error())
		return
	}

	cmd := &commands.MergeCategoriesCommand{Incoming: req.Categories}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.logger.Error("Failed to merge categories", zap.Error(err))
		respondAppError(w, h.logger, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, cmd.Merged)
}
