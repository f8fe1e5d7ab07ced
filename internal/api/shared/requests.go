package shared

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateRequest validates the given struct using its validate tags.
func ValidateRequest(v interface{}) error {
	return validate.Struct(v)
}
