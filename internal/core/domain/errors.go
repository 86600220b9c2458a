package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrAuthFailed indicates credential acquisition failed.
	// The run aborts before any pipeline work starts.
	ErrAuthFailed = errors.New("authentication failed")

	// ErrUndecodableContent indicates page content is not valid UTF-8.
	// Decoding failures are not expected to be recoverable.
	ErrUndecodableContent = errors.New("content is not valid UTF-8")

	// ErrIndexUnavailable indicates the embedding service or the vector
	// store failed. The corpus file for the affected section may already
	// have been written; the inconsistency is resolved by re-running.
	ErrIndexUnavailable = errors.New("semantic index unavailable")
)
