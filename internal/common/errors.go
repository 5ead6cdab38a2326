// Package common contains shared constants and sentinel errors used across
// admingate components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Auth errors.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")

	// Event log errors.
	ErrNoRecord   = errors.New("no record available")
	ErrOutOfRange = errors.New("index out of range")
	ErrLogClosed  = errors.New("log closed")

	// Engine errors.
	ErrEngineStopped = errors.New("engine stopped")
)
