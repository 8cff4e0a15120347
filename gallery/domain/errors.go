package domain

import "errors"

var (
	// ErrUnreadable marks an ingestion input whose bytes could not be read.
	ErrUnreadable = errors.New("input could not be read")

	// ErrUndecodable marks an ingestion input that passed the content-type
	// filter but is not a decodable image.
	ErrUndecodable = errors.New("input is not a decodable image")

	// ErrUnauthorized is reported on a credential mismatch and on any
	// guarded operation attempted from a guest session.
	ErrUnauthorized = errors.New("not authorized")

	// ErrPersist wraps storage write failures. Mutations are applied in
	// memory before persisting and are never rolled back, so callers treat
	// this as a warning rather than a failed operation.
	ErrPersist = errors.New("persist failed")
)
