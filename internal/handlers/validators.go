package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"framecraft-backend/internal/pricing"
)

// RegisterValidators installs the custom binding rules used by the
// request models. Call once at startup before serving.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	return v.RegisterValidation("framesize", func(fl validator.FieldLevel) bool {
		return pricing.FrameSize(fl.Field().String()).IsValid()
	})
}
