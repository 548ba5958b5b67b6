/*
 * Copyright © 2025 Cloudward Inc., All rights reserved.
 */

package resilience

import "errors"

// retryableMarker is the transient marker AWS SDK and smithy transport
// errors attach to throttling and transient network failures.
type retryableMarker interface {
	RetryableError() bool
}

// Retryable reports whether the backend explicitly marked err as
// transient. The decision is binary and non-heuristic: an error chain
// without the marker, or with the marker returning false, is permanent.
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	var m retryableMarker
	if errors.As(err, &m) {
		return m.RetryableError()
	}
	return false
}
