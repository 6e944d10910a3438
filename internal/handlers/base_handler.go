package handlers

import (
	"fmt"

	"hustled_backend/internal/logger"
	"hustled_backend/internal/middleware"
	"hustled_backend/internal/validator"
	"hustled_backend/pkg/apperrors"
	"hustled_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BaseHandler struct {
	validator *validator.Validator
	errors    *apperrors.GinErrorHandler
}

func NewBaseHandler(v *validator.Validator, errHandler *apperrors.GinErrorHandler) *BaseHandler {
	return &BaseHandler{
		validator: v,
		errors:    errHandler,
	}
}

// GetDB extracts the *gorm.DB (pool or transaction) the DBMiddleware
// placed in the context. A missing handle is a wiring bug, not a
// request error.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	dbKey := string(contextkeys.DBContextKey)

	val, ok := c.Get(dbKey)
	if !ok {
		logger.CtxError(c.Request.Context(), "db key not found in context", "key", dbKey)
		panic("DBMiddleware did not set the db key")
	}

	db, ok := val.(*gorm.DB)
	if !ok {
		logger.CtxError(c.Request.Context(), "db in context is not *gorm.DB", "key", dbKey, "type", fmt.Sprintf("%T", val))
		panic("db in context has incorrect type")
	}

	return db
}

// BindAndValidateJSON binds the body into obj and runs struct
// validation; on failure it writes the error response and returns
// false.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindJSON(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind JSON body", err, "path", c.Request.URL.Path)
		h.errors.Handle(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "Validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			h.errors.Handle(c, apperrors.ValidationError(vErr.Errors))
		} else {
			logger.CtxWithError(ctx, "Internal validator error", err, "path", c.Request.URL.Path)
			h.errors.Handle(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

// HandleServiceError maps a service error onto the HTTP response.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	if appErr, ok := apperrors.AsAppError(err); ok && appErr.HTTPCode < 500 {
		logger.CtxWarn(ctx, "Service error",
			"error", appErr.Message,
			"path", c.Request.URL.Path,
		)
	} else {
		logger.CtxWithError(ctx, "Internal server error", err, "path", c.Request.URL.Path)
	}
	h.errors.Handle(c, err)
}

// RequireUserID returns the session principal's user id, writing a 401
// when there is none.
func (h *BaseHandler) RequireUserID(c *gin.Context) (uint, bool) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		logger.CtxWarn(c.Request.Context(), "Unauthorized access: no principal",
			"path", c.Request.URL.Path,
			"ip", c.ClientIP(),
		)
		h.errors.Handle(c, apperrors.NewUnauthorizedError("Unauthorized: Please login first"))
		return 0, false
	}
	return userID, true
}
