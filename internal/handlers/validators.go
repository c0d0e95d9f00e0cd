package handlers

import (
	"fmt"

	"github.com/alfadli/hrm_backend/internal/dto"
	"github.com/go-playground/validator/v10"
)

var customValidators = map[string]validator.Func{
	"isodate": func(fl validator.FieldLevel) bool {
		return dto.IsDate(fl.Field().String())
	},
}

// registerValidators adds the custom binding tags to engine, which is
// normally binding.Validator.Engine().
func registerValidators(engine any) error {
	v, ok := engine.(*validator.Validate)
	if !ok {
		return fmt.Errorf("unsupported validator engine %T", engine)
	}
	for tag, fn := range customValidators {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %q validator: %w", tag, err)
		}
	}
	return nil
}
