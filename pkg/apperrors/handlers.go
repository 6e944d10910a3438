package apperrors

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the wire shape for every failed request, matching
// the {success,message} envelope the frontend expects.
type ErrorResponse struct {
	Success bool        `json:"success"`
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// GinErrorHandler maps AppErrors onto HTTP responses.
type GinErrorHandler struct {
	// Debug controls whether internal error detail reaches the client.
	Debug bool
}

func NewGinErrorHandler(debug bool) *GinErrorHandler {
	return &GinErrorHandler{Debug: debug}
}

// Handle writes the response for err. Anything that is not an AppError
// is treated as internal.
func (h *GinErrorHandler) Handle(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	message := appErr.Message
	details := appErr.Details
	if appErr.HTTPCode >= 500 {
		if h.Debug && appErr.Err != nil {
			// Development keeps the original behavior of embedding the
			// underlying error text in the body.
			message = "An error occurred: " + appErr.Err.Error()
		} else {
			details = nil
		}
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{
		Success: false,
		Code:    appErr.Code,
		Message: message,
		Details: details,
	})
}

// AsAppError attempts to convert err into an *AppError.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
