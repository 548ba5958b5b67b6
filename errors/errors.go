/*
 * Copyright © 2025 Cloudward Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrInvalidParam is returned when argument validation fails before any network call
	ErrInvalidParam = errors.New("invalid parameter")

	// ErrNotFound is returned when a fetched object has no body
	ErrNotFound = errors.New("object not found")

	// ErrFallbackExhausted is returned when both the primary and the fallback client failed
	ErrFallbackExhausted = errors.New("fallback exhausted")
)

// ParamError represents a synchronous argument-validation failure. It is
// raised before any backend invocation and is never retried.
type ParamError struct {
	Component string
	Op        string
	Field     string
	Params    map[string]any
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s.%s: invalid parameter %q (params: %v)", e.Component, e.Op, e.Field, e.Params)
}

func (e *ParamError) Is(target error) bool {
	return target == ErrInvalidParam
}

// NotFoundError represents a blob read whose response carried no body.
// It is distinct from transport errors and never retried.
type NotFoundError struct {
	Component string
	Op        string
	Bucket    string
	Key       string
}

func (e *NotFoundError) Error() string {
	if e.Bucket != "" {
		return fmt.Sprintf("%s.%s: %s/%s not found", e.Component, e.Op, e.Bucket, e.Key)
	}
	return fmt.Sprintf("%s.%s: %s not found", e.Component, e.Op, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// OpError is the context envelope wrapped around every surfaced backend
// failure. Unwrap exposes the backend's error unchanged so enrichment
// never alters the identity callers branch on.
type OpError struct {
	Component string
	Op        string
	Params    map[string]any
	Err       error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s.%s failed (params: %v): %v", e.Component, e.Op, e.Params, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// FallbackError reports a document-database operation that failed on the
// caching-proxy primary and then on the direct-database fallback. Unwrap
// exposes the fallback's error; the primary's original failure rides
// along as context.
type FallbackError struct {
	Op      string
	Primary error
	Err     error
}

func (e *FallbackError) Error() string {
	return fmt.Sprintf("%s: fallback failed: %v (primary: %v)", e.Op, e.Err, e.Primary)
}

func (e *FallbackError) Unwrap() error {
	return e.Err
}

func (e *FallbackError) Is(target error) bool {
	return target == ErrFallbackExhausted
}

// Helper functions for creating errors

// NewParamError creates a new ParamError
func NewParamError(component, op, field string, params map[string]any) error {
	return &ParamError{Component: component, Op: op, Field: field, Params: params}
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(component, op, bucket, key string) error {
	return &NotFoundError{Component: component, Op: op, Bucket: bucket, Key: key}
}

// NewOpError wraps err with component, operation and parameter context
func NewOpError(component, op string, params map[string]any, err error) error {
	return &OpError{Component: component, Op: op, Params: params, Err: err}
}

// NewFallbackError creates a new FallbackError
func NewFallbackError(op string, primary, err error) error {
	return &FallbackError{Op: op, Primary: primary, Err: err}
}

// IsInvalidParam checks if an error is a parameter-validation error
func IsInvalidParam(err error) bool {
	return errors.Is(err, ErrInvalidParam)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsFallbackExhausted checks if an error is a fallback-exhausted error
func IsFallbackExhausted(err error) bool {
	return errors.Is(err, ErrFallbackExhausted)
}
