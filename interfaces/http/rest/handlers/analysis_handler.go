package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"mindflow-backend/application/services"
	"mindflow-backend/pkg/common"
	"mindflow-backend/pkg/utils"
)

// AnalysisHandler handles text analysis HTTP requests
type AnalysisHandler struct {
	analyzer *services.AnalyzerService
	logger   *zap.Logger
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(analyzer *services.AnalyzerService, logger *zap.Logger) *AnalysisHandler {
	return &AnalysisHandler{analyzer: analyzer, logger: logger}
}

// AnalyzeRequest represents the request body for analyzing text
type AnalyzeRequest struct {
	Text string `json:"text" validate:"required"`
}

// Analyze handles POST /analysis/analyze
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
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

	output, err := h.analyzer.Analyze(r.Context(), req.Text)
	if err != nil {
		h.logger.Error("Failed to analyze text", zap.Error(err))
		respondAppError(w, h.logger, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, output)
}

// Refine handles POST /analysis/refine
func (h *AnalysisHandler) Refine(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
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

	output, err := h.analyzer.Refine(r.Context(), req.Text)
	if err != nil {
		h.logger.Error("Failed to refine text", zap.Error(err))
		respondAppError(w, h.logger, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, output)
}
