package failure

import (
	"errors"
	"net/http"
)

// Failure is an error that carries the HTTP status it should be answered with. Validation
// failures also carry one message per offending field.
type Failure struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

var (
	InvalidPageParam    = New(http.StatusBadRequest, "invalid page parameter")
	InvalidDaysParam    = New(http.StatusBadRequest, "invalid days parameter")
	ConfirmationPending = New(http.StatusConflict, "booking confirmation already in progress")
)

func New(code int, msg string) *Failure {
	return &Failure{Code: code, Message: msg}
}

func (e *Failure) Error() string {
	return e.Message
}

// BadRequest turns err into a 400. A nil err stays nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return New(http.StatusBadRequest, err.Error())
}

func BadRequestFromString(msg string) error {
	return New(http.StatusBadRequest, msg)
}

// Validation returns a 400 carrying fields. A nil or empty map yields nil so callers can
// return the result unconditionally.
func Validation(msg string, fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}

	fail := New(http.StatusBadRequest, msg)
	fail.Fields = fields

	return fail
}

// InternalError turns err into a 500. A nil err stays nil.
func InternalError(err error) error {
	if err == nil {
		return nil
	}

	return New(http.StatusInternalServerError, err.Error())
}

func NotFound(entityName string) error {
	return New(http.StatusNotFound, entityName)
}

func Conflict(msg string) error {
	return New(http.StatusConflict, msg)
}

// GetCode returns the status carried by err, or 500 when err is not a Failure.
func GetCode(err error) int {
	if fail, ok := as(err); ok {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetFields returns the per-field messages of a validation Failure, or nil.
func GetFields(err error) map[string]string {
	if fail, ok := as(err); ok {
		return fail.Fields
	}

	return nil
}

func as(err error) (*Failure, bool) {
	var fail *Failure
	ok := errors.As(err, &fail)

	return fail, ok
}
