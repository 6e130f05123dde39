package http

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Instancia única del validador de requests (los tags `validate` viven en los DTOs).
var validate = validator.New()

// validationMessage arma un mensaje legible a partir del primer error de
// validación de campos.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required":
			return fmt.Sprintf("%s is required", fe.Field())
		case "min":
			return fmt.Sprintf("%s must have at least %s element(s)", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
	return "invalid request body"
}
