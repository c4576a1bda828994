package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/benx421/account-service/internal/models"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports fields by their JSON names so messages match what the
// client sent.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateAccountPayload checks required fields and column lengths
func ValidateAccountPayload(payload *models.AccountPayload) error {
	if payload == nil {
		return &ServiceError{
			Code:    ErrCodeInvalidPayload,
			Message: "Invalid Account: body of request contained bad or no data",
		}
	}

	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &ServiceError{
			Code:    ErrCodeInvalidPayload,
			Message: "Invalid Account: body of request contained bad or no data",
			Err:     err,
		}
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			problems = append(problems, "missing "+fe.Field())
		case "max":
			problems = append(problems, fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param()))
		default:
			problems = append(problems, fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}

	return &ServiceError{
		Code:    ErrCodeInvalidPayload,
		Message: "Invalid Account: " + strings.Join(problems, ", "),
	}
}
