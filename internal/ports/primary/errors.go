// Package primary defines the primary ports (driving adapters) for the application.
// CLI and HTTP adapters call the application through these interfaces.
package primary

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrNotAllowed is wrapped when a guard rejects an operation.
	ErrNotAllowed = errors.New("not allowed")

	// ErrInvalidRequest is wrapped when a request fails validation.
	ErrInvalidRequest = errors.New("invalid request")
)

// requestValidate checks the `validate` tags of request DTOs.
var requestValidate *validator.Validate

func init() {
	requestValidate = validator.New()
}

// Validate checks a request DTO, wrapping failures with ErrInvalidRequest.
func Validate(req any) error {
	if err := requestValidate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return nil
}

// NotAllowed wraps a guard failure with ErrNotAllowed.
func NotAllowed(err error) error {
	return fmt.Errorf("%w: %v", ErrNotAllowed, err)
}
