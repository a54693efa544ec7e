package conftree

import "errors"

// Taxonomy of store errors, matched with errors.Is. A read miss is not part
// of it: Get reports misses through Value.HasValue, never through an error.
var (
	// ErrInvalidDescriptor reports a descriptor that names no provider
	// type, an unrecognized type, or carries no settings. Raised before
	// any provider is constructed.
	ErrInvalidDescriptor = errors.New("invalid provider descriptor")

	// ErrBackendUnavailable reports that a provider's initial load failed:
	// the file is missing, unreadable, or malformed, or the remote store
	// is unreachable. Construction fails fast rather than deferring the
	// problem to first use.
	ErrBackendUnavailable = errors.New("backend unavailable")

	// ErrInvalidPath reports an empty key supplied to a write operation.
	ErrInvalidPath = errors.New("invalid path")

	// ErrPersistence reports a write that took effect in memory but never
	// reached the backing store. The in-memory tree keeps the mutation;
	// memory and store disagree until the caller retries or reloads.
	ErrPersistence = errors.New("persistence failure")

	// ErrNotImplemented reports an operation on a provider kind that
	// declares the capability but has no working implementation.
	ErrNotImplemented = errors.New("not implemented")
)
