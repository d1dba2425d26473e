package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

var kindStatus = map[Kind]int{
	KindValidation:  http.StatusBadRequest,
	KindNotFound:    http.StatusNotFound,
	KindConflict:    http.StatusConflict,
	KindForbidden:   http.StatusForbidden,
	KindUnavailable: http.StatusServiceUnavailable,
}

var kindMessage = map[Kind]string{
	KindValidation:  "the request is invalid",
	KindNotFound:    "resource not found",
	KindConflict:    "the request conflicts with the current state",
	KindForbidden:   "you are not allowed to perform this action",
	KindUnavailable: "the feature is not available",
}

// StatusOf maps an error to the HTTP status it should be reported with.
func StatusOf(err error) int {
	var be BusinessError
	if errors.As(err, &be) {
		if st, ok := kindStatus[be.Kind]; ok {
			return st
		}
	}
	if IsExclusionConflict(err) {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// FromError writes the response for any error coming out of a use case.
// Unknown errors are logged and reported as a generic 500.
func FromError(c *gin.Context, log *zap.Logger, err error) {
	var be BusinessError
	if errors.As(err, &be) {
		Write(c, StatusOf(err), be.Code, kindMessage[be.Kind])
		return
	}

	if IsExclusionConflict(err) {
		Write(c, http.StatusConflict, "time_conflict", kindMessage[KindConflict])
		return
	}

	if log != nil {
		log.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	Internal(c, "internal_error", "unexpected error")
}
