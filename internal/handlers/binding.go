package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/tallyhq/tally_pro_app/internal/core/domain"
)

// registerCustomValidators wires domain-specific validators into gin's
// binding engine so bad values are rejected before they reach a service.
func registerCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("entrykind", func(fl validator.FieldLevel) bool {
			return domain.EntryKind(fl.Field().String()).Valid()
		})
	}
}
