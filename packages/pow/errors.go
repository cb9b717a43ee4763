package pow

import "github.com/cockroachdb/errors"

var (
	// ErrCancelled is returned when the context was cancelled before a nonce was found.
	ErrCancelled = errors.New("canceled")
	// ErrExhausted is returned when every worker cycled through its whole nonce space without a hit.
	ErrExhausted = errors.New("nonce space exhausted")
	// ErrInvalidWindow is returned when the nonce window does not fit the register or the number of workers.
	ErrInvalidWindow = errors.New("invalid nonce window")
	// ErrMissingChecker is returned when Mine is called without a checker.
	ErrMissingChecker = errors.New("missing checker")
	// ErrMissingTransformer is returned when the worker was created without a transformer.
	ErrMissingTransformer = errors.New("missing transformer")

	errDone = errors.New("done")
)
