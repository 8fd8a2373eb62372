// Package errors defines the error-code registry of the imaging server
// and the typed error values built on top of it.
package errors

import (
	"errors"
	"fmt"
)

// AppError is the typed failure carrier used across the server. It
// associates a registry Code with a message and an optional cause.
type AppError struct {
	Code    Code
	Message string
	Err     error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the unwrap interface for errors.Is and errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithContext adds context information to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new AppError
func New(code Code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a registry code
func Wrap(err error, code Code, message string) *AppError {
	if err == nil {
		return nil
	}

	// If it's already an AppError, keep its context alongside the new code
	var appErr *AppError
	if errors.As(err, &appErr) {
		return &AppError{
			Code:    code,
			Message: message,
			Err:     appErr,
			Context: appErr.Context,
		}
	}

	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Is checks if the error carries a specific registry code
func Is(err error, code Code) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// CodeOf returns the registry code carried by the error, or
// CodeInternalError when the error is not an AppError.
func CodeOf(err error) Code {
	if err == nil {
		return CodeSuccess
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternalError
}

// Common error constructors

func NewInternalError(message string) *AppError {
	return New(CodeInternalError, message)
}

func WrapInternalError(err error, message string) *AppError {
	return Wrap(err, CodeInternalError, message)
}

func NewNotImplemented(message string) *AppError {
	return New(CodeNotImplemented, message)
}

func NewParameterOutOfRange(message string) *AppError {
	return New(CodeParameterOutOfRange, message)
}

func NewBadParameterType(message string) *AppError {
	return New(CodeBadParameterType, message)
}

func WrapBadParameterType(err error, message string) *AppError {
	return Wrap(err, CodeBadParameterType, message)
}

func NewBadSequenceOfCalls(message string) *AppError {
	return New(CodeBadSequenceOfCalls, message)
}

func NewBadRequest(message string) *AppError {
	return New(CodeBadRequest, message)
}

func WrapBadRequest(err error, message string) *AppError {
	return Wrap(err, CodeBadRequest, message)
}

func NewInexistentItem(message string) *AppError {
	return New(CodeInexistentItem, message)
}

func NewUnknownResource(message string) *AppError {
	return New(CodeUnknownResource, message)
}
