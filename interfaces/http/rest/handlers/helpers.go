package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"mindflow-backend/pkg/common"
	pkgerrors "mindflow-backend/pkg/errors"
)

// maxBodyBytes bounds request bodies well above the largest allowed
// document content.
const maxBodyBytes = 1 << 20

// respondAppError maps a service error onto the standard envelope. Unknown
// errors become opaque 500s so internals never leak to clients.
func respondAppError(w http.ResponseWriter, logger *zap.Logger, err error) {
	status := pkgerrors.HTTPStatusOf(err)

	var appErr *pkgerrors.AppError
	if errors.As(err, &appErr) {
		code := appErr.Code
		if code == "" {
			code = string(appErr.Type)
		}
		common.RespondError(w, status, code, appErr.Message)
		return
	}

	logger.Error("unhandled error", zap.Error(err))
	common.RespondError(w, http.StatusInternalServerError,
		common.StandardErrorCodes.InternalError, "Internal server error")
}
