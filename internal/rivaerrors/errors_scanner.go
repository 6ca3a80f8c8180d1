package rivaerrors

import (
	"errors"
	"fmt"

	"github.com/riva-lang/riva/internal/token"
)

var (
	ErrScanUnexpectedCharacter = errors.New("Unexpected character.")
	ErrScanUnterminatedString  = errors.New("Unterminated string.")
)

// ScannerError wraps a scan failure cause with the source position at which
// it was raised and, optionally, the literal text that triggered it.
type ScannerError struct {
	position token.Position
	cause    error
	details  string
}

func NewScanError(position token.Position, cause error, details string) *ScannerError {
	return &ScannerError{position, cause, details}
}

// Position returns the source position of the failure.
func (s *ScannerError) Position() token.Position {
	return s.position
}

// Error implements error.
func (s *ScannerError) Error() string {
	details := s.details
	if details != "" {
		details = " " + details
	}
	return fmt.Sprintf("[%s] syntax error: %v%s", s.position, s.cause, details)
}

func (s *ScannerError) Unwrap() error {
	return s.cause
}

var _ error = (*ScannerError)(nil)
var _ unwrapInterface = (*ScannerError)(nil)
