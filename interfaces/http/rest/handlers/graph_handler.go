package handlers

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"mindflow-backend/application/queries"
	querybus "mindflow-backend/application/queries/bus"
	queryhandlers "mindflow-backend/application/queries/handlers"
	"mindflow-backend/pkg/common"
)

// GraphHandler handles knowledge graph HTTP requests
type GraphHandler struct {
	queryBus *querybus.QueryBus
	logger   *zap.Logger
}

// NewGraphHandler creates a new graph handler
func NewGraphHandler(queryBus *querybus.QueryBus, logger *zap.Logger) *GraphHandler {
	return &GraphHandler{queryBus: queryBus, logger: logger}
}

// GetGraph handles GET /graph. The snapshot checksum doubles as an ETag:
// clients sending If-None-Match with the current checksum get 304 and no
// payload.
func (h *GraphHandler) GetGraph(w http.ResponseWriter, r *http.Request) {
	query := &queries.GetGraphQuery{
		Checksum: unquoteETag(r.Header.Get("If-None-Match")),
	}

	result, err := h.queryBus.Ask(r.Context(), query)
	if err != nil {
		h.logger.Error("Failed to build graph", zap.Error(err))
		respondAppError(w, h.logger, err)
		return
	}

	view, ok := result.(*queryhandlers.GraphView)
	if !ok {
		common.RespondError(w, http.StatusInternalServerError,
			common.StandardErrorCodes.InternalError, "Unexpected graph result")
		return
	}

	w.Header().Set("ETag", `"`+view.Snapshot.Checksum+`"`)
	if view.NotModified {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	common.RespondJSON(w, http.StatusOK, view)
}

func unquoteETag(value string) string {
	value = strings.TrimPrefix(value, "W/")
	return strings.Trim(value, `"`)
}
