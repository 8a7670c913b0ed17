// Package apperr defines the typed errors services return so route handlers
// can translate them to HTTP status codes in one place.
package apperr

import (
	"errors"
	"net/http"
)

type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func Validation(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: msg}
}

func Auth(msg string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Status: http.StatusConflict, Message: msg}
}

// TokenInvalid covers bad and expired reset tokens. It maps to 400, not 404,
// so a probe cannot learn whether a token value ever existed.
func TokenInvalid(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: msg}
}

func Storage(msg string) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: msg}
}

// From unwraps err into an *Error if there is one in the chain.
func From(err error) (*Error, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}
