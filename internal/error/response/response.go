package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NotMomex/my-store-crm/internal/error/apperror"
	"github.com/NotMomex/my-store-crm/internal/error/code"
	Logger "github.com/NotMomex/my-store-crm/pkg/logger"
)

// Response is the envelope of every API response
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success responds 200 with data
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    code.ErrSuccess,
		Message: code.GetMessage(code.ErrSuccess),
		Data:    data,
	})
}

// SuccessWithMessage responds 200 with a custom message
func SuccessWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    code.ErrSuccess,
		Message: message,
		Data:    data,
	})
}

// Created responds 201 with data
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    code.ErrCreated,
		Message: message,
		Data:    data,
	})
}

// Fail responds with the status and default message of errorCode
func Fail(c *gin.Context, errorCode int, data interface{}) {
	c.JSON(code.GetStatus(errorCode), Response{
		Code:    errorCode,
		Message: code.GetMessage(errorCode),
		Data:    data,
	})
}

// FailWithMessage responds with the status of errorCode and a custom message
func FailWithMessage(c *gin.Context, errorCode int, message string, data interface{}) {
	c.JSON(code.GetStatus(errorCode), Response{
		Code:    errorCode,
		Message: message,
		Data:    data,
	})
}

// NotFound responds 404
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = code.GetMessage(code.ErrNotFound)
	}
	FailWithMessage(c, code.ErrNotFound, message, nil)
}

// Unauthorized responds 401
func Unauthorized(c *gin.Context) {
	Fail(c, code.ErrTokenInvalid, nil)
}

// Error maps a service error onto the envelope. Validation and not-found
// messages are shown to the client; auth failures get the generic message;
// anything else is logged and answered with fallback.
func Error(c *gin.Context, err error, fallback string) {
	switch apperror.KindOf(err) {
	case apperror.KindValidation:
		FailWithMessage(c, code.ErrValidation, apperror.MessageOf(err), nil)
	case apperror.KindNotFound:
		NotFound(c, apperror.MessageOf(err))
	case apperror.KindAuth:
		Fail(c, code.ErrInvalidCredentials, nil)
	default:
		Logger.Error("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		errorCode := code.ErrUnknown
		if apperror.IsStore(err) {
			errorCode = code.ErrStore
		}
		FailWithMessage(c, errorCode, fallback, nil)
	}
}
