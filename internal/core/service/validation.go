package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/rl1809/storefront/internal/core/domain"
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// invalidInput turns a validation failure into an ErrInvalidInput carrying a
// message fit for clients. Only the first failing field is reported.
func invalidInput(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	fe := verrs[0]
	field := fe.Namespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}

	var msg string
	switch fe.Tag() {
	case "required":
		msg = field + " is required"
	case "min":
		msg = field + " must not be empty"
	case "gt":
		msg = field + " must be greater than " + fe.Param()
	case "gte":
		msg = field + " must be at least " + fe.Param()
	default:
		msg = field + " is invalid"
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, msg)
}
