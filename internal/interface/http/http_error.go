package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/styling-advisor/internal/domain/styling"
	apperrors "github.com/yanqian/styling-advisor/pkg/errors"
)

// Transport level codes. Domain codes come from the styling package.
const (
	codeInvalidRequest = "invalid_request"
	codeRateLimited    = "rate_limit_exceeded"
	codeInternal       = "internal_error"
)

var statusByCode = map[string]int{
	codeInvalidRequest:             http.StatusBadRequest,
	codeRateLimited:                http.StatusTooManyRequests,
	styling.CodeInvalidMeasurement: http.StatusBadRequest,
	styling.CodeInvalidInput:       http.StatusBadRequest,
	styling.CodeInvalidCategory:    http.StatusBadRequest,
	styling.CodeSchemaMismatch:     http.StatusConflict,
	styling.CodeUnavailable:        http.StatusBadGateway,
	styling.CodePersistence:        http.StatusInternalServerError,
}

// errorBody is what the error middleware renders for a failed request.
type errorBody struct {
	status  int
	code    string
	message string
}

// describeError resolves err to a status, code and client safe message.
// Errors without an AppError in their chain never leak their text.
func describeError(err error) errorBody {
	code := apperrors.CodeOf(err)
	if code == "" {
		return errorBody{status: http.StatusInternalServerError, code: codeInternal, message: "something went wrong"}
	}
	status, ok := statusByCode[code]
	if !ok {
		status = http.StatusInternalServerError
	}
	return errorBody{status: status, code: code, message: apperrors.MessageOf(err)}
}

// fail records err on the context for the error middleware and stops the chain.
func fail(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func badRequest(message string, cause error) error {
	return apperrors.Wrap(codeInvalidRequest, message, cause)
}
