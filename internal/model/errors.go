package model

import "errors"

var (
	// ErrNotFound reports a height or hash that does not exist on chain.
	ErrNotFound = errors.New("not found")
	// ErrUnavailable reports an unreachable or timed out backend. Retryable.
	ErrUnavailable = errors.New("unavailable")
)
