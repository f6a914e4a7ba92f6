package responses

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"registry-hub/admin-api/internal/utils/platformerrors"
)

// ErrorResponse is the body of every non-2xx response. Detail carries a safe,
// categorized message; raw driver errors stay in the server log.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detalle"`
	Code   string `json:"code,omitempty"`
}

// HandleError converts a store or domain error into an HTTP response. The
// full error, including the wrapped cause, is logged server-side only.
func HandleError(reqCtx *gin.Context, log zerolog.Logger, err error, summary string) {
	platformErr := platformerrors.AsError(reqCtx.Request.Context(), platformerrors.LayerHandler, err, summary)
	status := platformerrors.ErrorTypeToHTTPStatus(platformErr.GetErrorType())

	if status >= 500 {
		log.Error().Err(platformErr).Str("request_id", platformErr.GetRequestID()).Msg(summary)
	}

	reqCtx.AbortWithStatusJSON(status, ErrorResponse{
		Error:  summary,
		Detail: safeDetail(platformErr),
		Code:   platformErr.GetCode(),
	})
}

// HandleNewError classifies an error raised at the route layer and responds.
func HandleNewError(reqCtx *gin.Context, errorType platformerrors.ErrorType, summary, detail, code string) {
	err := platformerrors.NewError(reqCtx.Request.Context(), platformerrors.LayerRoute, errorType, detail, nil, code)

	reqCtx.AbortWithStatusJSON(platformerrors.ErrorTypeToHTTPStatus(errorType), ErrorResponse{
		Error:  summary,
		Detail: err.Message,
		Code:   err.GetCode(),
	})
}

// safeDetail maps an error category to client-facing text. Validation and
// not-found messages are already safe; anything else collapses to a generic
// category name so connection strings and SQL never leak.
func safeDetail(err *platformerrors.PlatformError) string {
	switch err.GetErrorType() {
	case platformerrors.ErrorTypeValidation, platformerrors.ErrorTypeNotFound, platformerrors.ErrorTypeConflict:
		return err.Message
	case platformerrors.ErrorTypeDatabaseError:
		return "database error"
	default:
		return "internal error"
	}
}
