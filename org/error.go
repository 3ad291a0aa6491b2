package org

import "fmt"

// ErrorType classifies a parse-time diagnostic. The grammar itself
// never fails outright (every recognizer falls back to a paragraph or
// raw text), so the only ParseError ever recorded is the
// ErrorTypeValidation value Parse adds when it recovers from an
// internal panic.
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation_error"
)

// ParseError is a single structured diagnostic, carrying the byte
// offset it concerns so a caller can map it back to a line/column.
type ParseError struct {
	Type    ErrorType
	Message string
	Offset  int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("offset %d: %s", e.Offset, e.Message)
}
