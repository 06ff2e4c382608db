package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"mindflow-backend/application/commands"
	"mindflow-backend/application/commands/bus"
	"mindflow-backend/application/queries"
	querybus "mindflow-backend/application/queries/bus"
	"mindflow-backend/pkg/common"
	"mindflow-backend/pkg/utils"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	logger     *zap.Logger
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	logger *zap.Logger,
) *TaskHandler {
	return &TaskHandler{
		commandBus: commandBus,
		queryBus:   queryBus,
		logger:     logger,
	}
}

// CreateTaskRequest represents the request body for creating a task
type CreateTaskRequest struct {
	CategoryID   string `json:"categoryId" validate:"required"`
	CategoryName string `json:"categoryName,omitempty"`
	Title        string `json:"title"`
}

// CreateTask handles POST /tasks. A blank title is declined without an
// error: the response is 204 and nothing is stored.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
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

	cmd := &commands.CreateTaskCommand{
		CategoryID:   req.CategoryID,
		CategoryName: req.CategoryName,
		Title:        req.Title,
	}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.logger.Error("Failed to create task", zap.Error(err))
		respondAppError(w, h.logger, err)
		return
	}

	if cmd.Created == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	common.RespondJSON(w, http.StatusCreated, cmd.Created)
}

// ToggleTask handles POST /tasks/{taskID}/toggle
func (h *TaskHandler) ToggleTask(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "taskID")

	cmd := &commands.ToggleTaskCommand{ID: taskID}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.logger.Error("Failed to toggle task",
			zap.String("taskID", taskID),
			zap.Error(err),
		)
		respondAppError(w, h.logger, err)
		return
	}

	if cmd.Toggled == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	common.RespondJSON(w, http.StatusOK, cmd.Toggled)
}

// DeleteTask handles DELETE /tasks/{taskID}
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "taskID")

	cmd := &commands.DeleteTaskCommand{ID: taskID}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.logger.Error("Failed to delete task",
			zap.String("taskID", taskID),
			zap.Error(err),
		)
		respondAppError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListTasks handles GET /tasks with an optional category filter
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	query := &queries.ListTasksQuery{
		CategoryID: r.URL.Query().Get("category"),
	}

	result, err := h.queryBus.Ask(r.Context(), query)
	if err != nil {
		respondAppError(w, h.logger, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}
