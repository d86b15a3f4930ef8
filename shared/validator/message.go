package validator

import (
	"errors"
	"indivoyage/shared/constant"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required":     "{field} is required",
		"gte":          "{field} must be greater than or equal to {param}",
		"lte":          "{field} must be less than or equal to {param}",
		"oneof":        "{field} must be one of {param}",
		"max":          "{field} must be at most {param} characters",
		"min":          "{field} must be at least {param} characters",
		"email":        "{field} must be a valid email address",
		"phone":        "{field} must be 10 to 15 digits, spaces, dashes or parentheses",
		"profilephone": "{field} must be 10 to 15 digits with an optional leading +",
		"date":         "{field} must be a valid date",
		"accepted":     "{field} must be accepted",
	}
)

func render(valErr val.FieldError) string {
	errStr := messages[valErr.Tag()]
	if errStr == constant.Empty {
		return valErr.Error()
	}

	errStr = strings.ReplaceAll(errStr, "{field}", valErr.Field())
	errStr = strings.ReplaceAll(errStr, "{param}", valErr.Param())

	return errStr
}

// message returns the first human readable message plus one message per failing field.
func message(err error) (string, map[string]string) {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		fields := make(map[string]string, len(valErrors))
		first := constant.Empty

		for _, valErr := range valErrors {
			msg := render(valErr)
			if first == constant.Empty {
				first = msg
			}

			if _, ok := fields[valErr.Field()]; !ok {
				fields[valErr.Field()] = msg
			}
		}

		return first, fields
	}

	return err.Error(), nil
}
