package controllers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/NotMomex/my-store-crm/internal/domain/models"
)

// RegisterValidators adds the custom binding tags to gin's validator
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("role", validateRole)
}

// validateRole accepts admin, agent and viewer
func validateRole(fl validator.FieldLevel) bool {
	_, ok := models.ParseRole(fl.Field().String())
	return ok
}
