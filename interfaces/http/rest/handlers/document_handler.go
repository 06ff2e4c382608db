package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"mindflow-backend/application/commands"
	"mindflow-backend/application/commands/bus"
	"mindflow-backend/application/queries"
	querybus "mindflow-backend/application/queries/bus"
	"mindflow-backend/application/sagas"
	"mindflow-backend/domain/analysis"
	"mindflow-backend/domain/core/entities"
	"mindflow-backend/pkg/common"
	"mindflow-backend/pkg/utils"
)

// DocumentHandler handles document-related HTTP requests
type DocumentHandler struct {
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	saveNote   *sagas.SaveNoteSaga
	logger     *zap.Logger
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	saveNote *sagas.SaveNoteSaga,
	logger *zap.Logger,
) *DocumentHandler {
	return &DocumentHandler{
		commandBus: commandBus,
		queryBus:   queryBus,
		saveNote:   saveNote,
		logger:     logger,
	}
}

// CreateDocumentRequest represents the request body for creating a document
// from an already-analyzed note.
type CreateDocumentRequest struct {
	Content        string            `json:"content" validate:"required"`
	Title          string            `json:"title,omitempty"`
	Classification []analysis.Result `json:"classification,omitempty"`
	Tags           []string          `json:"tags,omitempty" validate:"omitempty,max=10,dive,max=50"`
}

// UpdateDocumentRequest represents the request body for updating a document
type UpdateDocumentRequest struct {
	Title          *string                `json:"title,omitempty"`
	Content        *string                `json:"content,omitempty"`
	RefinedContent *string                `json:"refinedContent,omitempty"`
	Categories     []entities.CategoryRef `json:"categories,omitempty"`
	Tags           []string               `json:"tags,omitempty" validate:"omitempty,max=10,dive,max=50"`
}

// SaveNoteRequest represents the request body for the analyze-and-save flow
type SaveNoteRequest struct {
	Content string `json:"content" validate:"required"`
	Title   string `json:"title,omitempty"`
}

// CreateDocument handles POST /documents
func (h *DocumentHandler) CreateDocument(w http.ResponseWriter, r *http.Request) {
	var req CreateDocumentRequest
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

	cmd := &commands.CreateDocumentCommand{
		Content:        req.Content,
		Title:          req.Title,
		Classification: req.Classification,
		Tags:           req.Tags,
	}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.logger.Error("Failed to create document", zap.Error(err))
		respondAppError(w, h.logger, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, cmd.Created)
}

// SaveNote handles POST /documents/save-note: analyze, refine, and persist
// raw text in one flow.
func (h *DocumentHandler) SaveNote(w http.ResponseWriter, r *http.Request) {
	var req SaveNoteRequest
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

	result, err := h.saveNote.Run(r.Context(), req.Content, req.Title)
	if err != nil {
		h.logger.Error("Failed to save note", zap.Error(err))
		respondAppError(w, h.logger, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, result)
}

// GetDocument handles GET /documents/{documentID}
func (h *DocumentHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	documentID := chi.URLParam(r, "documentID")

	result, err := h.queryBus.Ask(r.Context(), &queries.GetDocumentQuery{ID: documentID})
	if err != nil {
		respondAppError(w, h.logger, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// UpdateDocument handles PUT /documents/{documentID}
func (h *DocumentHandler) UpdateDocument(w http.ResponseWriter, r *http.Request) {
	documentID := chi.URLParam(r, "documentID")

	var req UpdateDocumentRequest
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

	cmd := &commands.UpdateDocumentCommand{
		ID: documentID,
		Patch: entities.DocumentPatch{
			Title:          req.Title,
			Content:        req.Content,
			RefinedContent: req.RefinedContent,
			Categories:     req.Categories,
			Tags:           req.Tags,
		},
	}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.logger.Error("Failed to update document",
			zap.String("documentID", documentID),
			zap.Error(err),
		)
		respondAppError(w, h.logger, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, cmd.Updated)
}

// DeleteDocument handles DELETE /documents/{documentID}
func (h *DocumentHandler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	documentID := chi.URLParam(r, "documentID")

	cmd := &commands.DeleteDocumentCommand{ID: documentID}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.logger.Error("Failed to delete document",
			zap.String("documentID", documentID),
			zap.Error(err),
		)
		respondAppError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListDocuments handles GET /documents with optional category and tag
// filters.
func (h *DocumentHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	query := &queries.ListDocumentsQuery{
		CategoryID: r.URL.Query().Get("category"),
		Tag:        r.URL.Query().Get("tag"),
	}

	result, err := h.queryBus.Ask(r.Context(), query)
	if err != nil {
		respondAppError(w, h.logger, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}
