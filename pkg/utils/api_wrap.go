package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FieldErrors is implemented by errors that carry messages per input field.
// HandleServiceError answers them with 422 and the messages under "errors".
type FieldErrors interface {
	error
	FieldErrors() map[string][]string
}

type APIResponse struct {
	Status  string              `json:"status"`
	Code    int                 `json:"code"`
	Message string              `json:"message,omitempty"`
	TraceID string              `json:"trace_id,omitempty"`
	Data    interface{}         `json:"data,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	respond(c, http.StatusOK, data, message)
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	respond(c, http.StatusCreated, data, message)
}

func respond(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

func RespondValidation(c *gin.Context, errs map[string][]string) {
	c.JSON(http.StatusUnprocessableEntity, APIResponse{
		Status:  "error",
		Code:    http.StatusUnprocessableEntity,
		Message: "Validation failed",
		TraceID: c.GetString("trace_id"),
		Errors:  errs,
	})
}

func HandleServiceError(c *gin.Context, err error) {
	var fieldErr FieldErrors

	switch {
	case errors.As(err, &fieldErr):
		RespondValidation(c, fieldErr.FieldErrors())
	case errors.Is(err, ErrInvalidPage), errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrForbidden):
		RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
	case errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, "Account not found")
	case errors.Is(err, ErrReviewNotFound):
		RespondError(c, http.StatusNotFound, "Review not found")
	case errors.Is(err, ErrVehicleNotFound):
		RespondError(c, http.StatusNotFound, "Vehicle not found")
	case errors.Is(err, ErrMakerNotFound):
		RespondError(c, http.StatusNotFound, "Maker not found")
	case errors.Is(err, ErrLikeNotFound):
		RespondError(c, http.StatusNotFound, "Like not found")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, "Email already registered")
	case errors.Is(err, ErrReviewConflict):
		RespondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrVehicleInUse):
		RespondError(c, http.StatusConflict, "Vehicle has reviews and cannot be deleted")
	case errors.Is(err, ErrAlreadyLiked):
		RespondError(c, http.StatusConflict, "Review already liked")
	default:
		zap.L().Error("unhandled service error",
			zap.Error(err),
			zap.String("trace_id", c.GetString("trace_id")),
			zap.String("path", c.FullPath()))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
