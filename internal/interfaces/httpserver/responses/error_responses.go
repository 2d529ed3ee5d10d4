package responses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"llm-advisor/internal/utils/platformerrors"
)

// ErrorResponse is the uniform error body for all endpoints.
type ErrorResponse struct {
	Error     string `json:"error"`
	Details   string `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// HandleError maps platform errors onto HTTP responses. External failures
// surface their detail; other internal errors stay generic while the cause is
// logged server-side.
func HandleError(reqCtx *gin.Context, err error, message string) {
	var platformErr *platformerrors.PlatformError
	if errors.As(err, &platformErr) {
		statusCode := platformerrors.ErrorTypeToHTTPStatus(platformErr.GetErrorType())

		errResp := ErrorResponse{
			Error:     message,
			RequestID: platformErr.GetRequestID(),
		}
		switch platformErr.GetErrorType() {
		case platformerrors.ErrorTypeNotFound, platformerrors.ErrorTypeValidation,
			platformerrors.ErrorTypeUnauthorized:
			errResp.Error = platformErr.Message
		case platformerrors.ErrorTypeExternal:
			errResp.Details = platformErr.Message
		}

		_ = reqCtx.Error(platformErr).SetType(gin.ErrorTypePrivate)
		reqCtx.AbortWithStatusJSON(statusCode, errResp)
		return
	}

	_ = reqCtx.Error(err).SetType(gin.ErrorTypePrivate)
	reqCtx.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: message})
}

// HandleNewError creates a new typed error at the route layer and handles it
func HandleNewError(reqCtx *gin.Context, errorType platformerrors.ErrorType, message string) {
	ctx := reqCtx.Request.Context()
	err := platformerrors.NewError(ctx, platformerrors.LayerRoute, errorType, message, nil)

	reqCtx.AbortWithStatusJSON(platformerrors.ErrorTypeToHTTPStatus(errorType), ErrorResponse{
		Error:     message,
		RequestID: err.GetRequestID(),
	})
}
