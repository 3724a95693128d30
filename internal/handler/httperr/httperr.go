package httperr

import (
	"net/http"
	"strconv"

	"camp-pricing/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// RetryAfterSeconds is advertised on 503 responses for retryable failures.
const RetryAfterSeconds = 1

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithUseCaseError maps the error kind to a status. Validation and
// business outcomes carry their own message; everything else is generic.
func AbortWithUseCaseError(c *gin.Context, err error, fallbackMsg string) {
	status := StatusOf(err)
	msg := fallbackMsg
	switch status {
	case http.StatusBadRequest, http.StatusConflict:
		msg = rootMessage(err)
	case http.StatusNotFound:
		msg = "Not found"
	case http.StatusServiceUnavailable:
		c.Header("Retry-After", strconv.Itoa(RetryAfterSeconds))
		msg = "Temporarily unavailable, retry the request"
	}
	AbortWithError(c, status, err, msg, nil)
}

func StatusOf(err error) int {
	switch {
	case errs.Is(err, errs.ErrValidation):
		return http.StatusBadRequest
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errs.IsAny(err, errs.ErrSlotBlocked, errs.ErrCapacityExceeded):
		return http.StatusConflict
	case errs.IsRetryable(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// rootMessage drops the wrapping prefixes added on the way up.
func rootMessage(err error) string {
	return errs.Cause(err).Error()
}
