// Package apperr defines the coded errors services return and the HTTP
// status each code maps to.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind groups error codes into the broad classes the API reports.
type Kind string

const (
	KindValidation     Kind = "validation"
	KindDuplicate      Kind = "duplicate"
	KindNotFound       Kind = "not_found"
	KindAuthentication Kind = "authentication"
	KindAuthorization  Kind = "authorization"
	KindRateLimit      Kind = "rate_limit"
	KindInternal       Kind = "internal"
)

// Code is the stable machine-readable identifier sent to clients
type Code string

const (
	CodeValidationFailed   Code = "VALIDATION_FAILED"
	CodeMissingField       Code = "MISSING_FIELD"
	CodeMissingParameter   Code = "MISSING_PARAMETER"
	CodeInvalidFields      Code = "INVALID_FIELDS"
	CodeInvalidID          Code = "INVALID_ID"
	CodeDuplicateEmail     Code = "DUPLICATE_EMAIL"
	CodeDuplicateContact   Code = "DUPLICATE_CONTACT"
	CodeDuplicateName      Code = "DUPLICATE_NAME"
	CodeDuplicateQRCode    Code = "DUPLICATE_QRCODE"
	CodeCategoryNotEmpty   Code = "CATEGORY_NOT_EMPTY"
	CodeNotFound           Code = "NOT_FOUND"
	CodeReferenceNotFound  Code = "REFERENCE_NOT_FOUND"
	CodeUnauthenticated    Code = "UNAUTHENTICATED"
	CodeInvalidToken       Code = "INVALID_TOKEN"
	CodePrincipalNotFound  Code = "PRINCIPAL_NOT_FOUND"
	CodeInvalidCredentials Code = "INVALID_CREDENTIALS"
	CodeForbidden          Code = "FORBIDDEN"
	CodeRateLimited        Code = "RATE_LIMITED"
	CodeInternal           Code = "INTERNAL"
)

type codeInfo struct {
	kind   Kind
	status int
}

var codes = map[Code]codeInfo{
	CodeValidationFailed:   {KindValidation, http.StatusBadRequest},
	CodeMissingField:       {KindValidation, http.StatusBadRequest},
	CodeMissingParameter:   {KindValidation, http.StatusBadRequest},
	CodeInvalidFields:      {KindValidation, http.StatusBadRequest},
	CodeInvalidID:          {KindValidation, http.StatusBadRequest},
	CodeDuplicateEmail:     {KindDuplicate, http.StatusConflict},
	CodeDuplicateContact:   {KindDuplicate, http.StatusBadRequest},
	CodeDuplicateName:      {KindDuplicate, http.StatusConflict},
	CodeDuplicateQRCode:    {KindDuplicate, http.StatusConflict},
	CodeCategoryNotEmpty:   {KindDuplicate, http.StatusConflict},
	CodeNotFound:           {KindNotFound, http.StatusNotFound},
	CodeReferenceNotFound:  {KindNotFound, http.StatusBadRequest},
	CodeUnauthenticated:    {KindAuthentication, http.StatusUnauthorized},
	CodeInvalidToken:       {KindAuthentication, http.StatusUnauthorized},
	CodePrincipalNotFound:  {KindAuthentication, http.StatusUnauthorized},
	CodeInvalidCredentials: {KindAuthentication, http.StatusUnauthorized},
	CodeForbidden:          {KindAuthorization, http.StatusForbidden},
	CodeRateLimited:        {KindRateLimit, http.StatusTooManyRequests},
	CodeInternal:           {KindInternal, http.StatusInternalServerError},
}

// Error is the single error type returned by services and middleware.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Kind reports the taxonomy class of the error's code.
func (e *Error) Kind() Kind {
	if info, ok := codes[e.Code]; ok {
		return info.kind
	}
	return KindInternal
}

// Status is the HTTP status the API layer answers with.
func (e *Error) Status() int {
	if info, ok := codes[e.Code]; ok {
		return info.status
	}
	return http.StatusInternalServerError
}

// New builds an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a cause to a coded error.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// Internal wraps an unexpected failure. The cause is logged, not sent to clients.
func Internal(err error, message string) *Error {
	return &Error{Code: CodeInternal, Message: message, Err: err}
}

// From returns err as *Error, converting anything unknown into an internal error.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Internal(err, "something went wrong")
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code Code) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

// IsKind reports whether err belongs to the given class.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind() == kind
}
