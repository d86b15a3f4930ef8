package validator

import (
	"encoding/json"
	"fmt"
	"indivoyage/shared/constant"
	"indivoyage/shared/failure"
	"io"
	"reflect"
	"regexp"
	"strings"
	"time"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

var (
	bookingPhonePattern = regexp.MustCompile(`^\+?[0-9\s\-()]{10,15}$`)
	profilePhonePattern = regexp.MustCompile(`^[+]?[0-9]{10,15}$`)
)

func registerBookingPhoneValidation(field val.FieldLevel) bool {
	return bookingPhonePattern.MatchString(field.Field().String())
}

func registerProfilePhoneValidation(field val.FieldLevel) bool {
	return profilePhonePattern.MatchString(field.Field().String())
}

func registerDateValidation(field val.FieldLevel) bool {
	_, err := ParseDate(field.Field().String())

	return err == nil
}

func registerAcceptedValidation(field val.FieldLevel) bool {
	return field.Field().Kind() == reflect.Bool && field.Field().Bool()
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return constant.Empty
		}

		if name == constant.Empty {
			return field.Name
		}

		return name
	})

	validations := map[string]val.Func{
		"phone":        registerBookingPhoneValidation,
		"profilephone": registerProfilePhoneValidation,
		"date":         registerDateValidation,
		"accepted":     registerAcceptedValidation,
	}

	for tag, fn := range validations {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
}

// ParseDate accepts a calendar date (2006-01-02) or a full RFC 3339 timestamp.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)

	if parsed, err := time.Parse(constant.DateOnlyFormat, value); err == nil {
		return parsed, nil
	}

	parsed, err := time.Parse(constant.DateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", value, err)
	}

	return parsed, nil
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	if err := Decode(r, data); err != nil {
		return err
	}

	return ValidateStruct(data)
}

// Decode reads a JSON body into data without validating it. A malformed body is a 400.
func Decode[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return nil
}

// ValidateStruct checks every rule on data and reports all offending fields at once.
func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg, fields := message(err)
		if len(fields) == 0 {
			return failure.BadRequestFromString(msg) //nolint:wrapcheck
		}

		return failure.Validation(msg, fields) //nolint:wrapcheck
	}

	return nil
}

// Merge folds extra field messages into a validation error produced by ValidateStruct.
// Existing messages win so the first broken rule of a field is the one reported.
func Merge(err error, extra map[string]string) error {
	if len(extra) == 0 {
		return err
	}

	fields := map[string]string{}

	for name, msg := range failure.GetFields(err) {
		fields[name] = msg
	}

	for name, msg := range extra {
		if _, ok := fields[name]; !ok {
			fields[name] = msg
		}
	}

	return failure.Validation(constant.ResponseErrorValidation, fields) //nolint:wrapcheck
}
