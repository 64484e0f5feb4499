// Package common defines shared sentinel errors and small utility helpers
// used across the math-notes client. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Account registry errors.
	ErrDuplicateUsername = errors.New("username already exists")

	// Authentication errors.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// Note validation errors. A single sentinel covers an empty title or an
	// empty text; the two cases are deliberately not distinguished.
	ErrValidation = errors.New("title and text cannot be empty")

	// Sanitizer errors (disallowed character in an expression).
	ErrInvalidInput = errors.New("only digits, operators, parentheses, the decimal point and spaces are allowed")

	// Note store errors (delete position out of range).
	ErrIndexOutOfRange = errors.New("index out of range")

	// Evaluator errors (malformed expression, division by zero).
	ErrEvaluation = errors.New("cannot evaluate expression")
)
