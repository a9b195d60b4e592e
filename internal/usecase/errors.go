package usecase

import "errors"

// Sentinel errors returned by the services. The HTTP layer maps them to
// response statuses; wrap them with fmt.Errorf("%w: ...") to add detail.
var (
	// ErrInvalidInput marks a malformed instance key, window or request body.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound marks a lookup for an instance or match with no data.
	ErrNotFound = errors.New("resource not found")

	// ErrUnauthorized marks a missing or wrong internal job token.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrDependencyUnavailable marks a collaborator that is down or not
	// configured, such as the standings image renderer.
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
