package controllers

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/NotMomex/my-store-crm/internal/error/code"
	"github.com/NotMomex/my-store-crm/internal/error/response"
)

// ErrorResponse error envelope, for the API docs
type ErrorResponse struct {
	Code    int         `json:"code" example:"100003"`
	Message string      `json:"message" example:"Validation failed"`
	Data    interface{} `json:"data"`
}

// CreatedData is returned by create endpoints
type CreatedData struct {
	ID string `json:"id" example:"9f86d081884c7d65"`
}

// StatusRequest status update request
type StatusRequest struct {
	Status string `json:"status" binding:"required" example:"delivered"`
}

// bindJSON binds the body and answers 400 on failure
func bindJSON(ctx *gin.Context, obj interface{}) bool {
	if err := ctx.ShouldBindJSON(obj); err != nil {
		message := "Invalid request parameters: " + err.Error()
		if errors.Is(err, io.EOF) {
			message = "Request body is required"
		}
		response.FailWithMessage(ctx, code.ErrBind, message, nil)
		return false
	}
	return true
}
