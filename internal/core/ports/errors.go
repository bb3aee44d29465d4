package ports

import "errors"

// Failure taxonomy for the upstream collaborators. Adapters wrap these with
// fmt.Errorf("...: %w", ...) so callers can route on errors.Is.
var (
	// ErrNotConfigured means a required credential is absent. Checked
	// eagerly, before any network call.
	ErrNotConfigured = errors.New("backend not configured")

	// ErrClassification covers classifier network and non-success failures.
	ErrClassification = errors.New("classification failed")

	// ErrCompletion covers completion-backend network, non-success, and
	// malformed-response failures.
	ErrCompletion = errors.New("completion failed")

	// ErrCatalog covers catalog failures that the client does not swallow,
	// i.e. a malformed response body. Plain network and status failures
	// degrade to an empty result inside the client instead.
	ErrCatalog = errors.New("catalog lookup failed")
)
