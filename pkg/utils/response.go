package utils

import (
	"net/http"
	"time"

	"health-intel-backend/internal/apperror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Meta carries response metadata. Count is set only for list responses.
type Meta struct {
	Count     *int   `json:"count,omitempty"`
	Message   string `json:"message,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// Envelope is the single response shape for every API outcome.
// Data is present exactly when Status is "success".
type Envelope[T any] struct {
	Status string `json:"status"`
	Data   *T     `json:"data,omitempty"`
	Meta   Meta   `json:"meta"`
}

// Success wraps a value, with an optional confirmation message
func Success[T any](data T, message string) Envelope[T] {
	return Envelope[T]{
		Status: StatusSuccess,
		Data:   &data,
		Meta:   Meta{Message: message, Timestamp: time.Now().Unix()},
	}
}

// List wraps a collection and records its size. A nil slice is rendered as [].
func List[T any](items []T) Envelope[[]T] {
	if items == nil {
		items = []T{}
	}
	count := len(items)
	env := Success(items, "")
	env.Meta.Count = &count
	return env
}

// Failure renders a classified error. Its message is always non-empty.
func Failure(err *apperror.Error) Envelope[struct{}] {
	message := err.Message
	if message == "" {
		message = http.StatusText(err.Status())
	}
	return Envelope[struct{}]{
		Status: StatusError,
		Meta:   Meta{Message: message, Timestamp: time.Now().Unix()},
	}
}

// SuccessResponse sends a 200 envelope carrying data
func SuccessResponse[T any](c *gin.Context, data T, message string) {
	c.JSON(http.StatusOK, Success(data, message))
}

// ListResponse sends a 200 envelope carrying items and their count
func ListResponse[T any](c *gin.Context, items []T) {
	c.JSON(http.StatusOK, List(items))
}

// ErrorResponse classifies err, sends the error envelope with the mapped
// status and aborts the chain. This is the only place failed requests are
// logged.
func ErrorResponse(c *gin.Context, err error) {
	appErr := apperror.From(err)
	if appErr == nil {
		appErr = apperror.Internal(nil)
	}
	body := Failure(appErr)
	status := appErr.Status()

	event := zerolog.Ctx(c.Request.Context()).Warn()
	if status >= http.StatusInternalServerError {
		event = zerolog.Ctx(c.Request.Context()).Error()
	}
	if appErr.Err != nil {
		event = event.Err(appErr.Err)
	}
	event.
		Str("error_code", appErr.Kind.Code()).
		Int("http_status", status).
		Str("detail", body.Meta.Message).
		Str("method", c.Request.Method).
		Str("path", c.FullPath()).
		Msg("request failed")

	c.AbortWithStatusJSON(status, body)
}
