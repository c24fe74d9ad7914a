// FILE: internal/pkg/serverutils/validator.go
package serverutils

import (
	"fmt"
	"strings"

	"github.com/SudeepMalipeddi/Service-Sphere/internal/pkg/apperrors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs the validator tags on a bound DTO and folds the
// failures into a single validation error.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return apperrors.Validation(err.Error())
		}
		var parts []string
		for _, fe := range validationErrors {
			parts = append(parts, fmt.Sprintf("field '%s' failed on '%s'", fe.Field(), fe.Tag()))
		}
		return apperrors.Validation(strings.Join(parts, "; "))
	}
	return nil
}
