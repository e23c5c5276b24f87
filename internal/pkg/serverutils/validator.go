package serverutils

import (
	"strings"

	"open-law-be/internal/pkg/apperr"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct-tag validation on a request DTO and reports
// the first failure in a form the error handler can flash back.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	ok := false
	if verrs, ok = err.(validator.ValidationErrors); !ok || len(verrs) == 0 {
		return apperr.Validation("invalid request")
	}

	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return apperr.Validation("%s is required", field)
	case "min":
		return apperr.Validation("%s must be at least %s characters", field, fe.Param())
	case "max":
		return apperr.Validation("%s must be at most %s characters", field, fe.Param())
	default:
		return apperr.Validation("%s is invalid", field)
	}
}
