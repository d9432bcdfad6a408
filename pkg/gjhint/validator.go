package gjhint

import "context"

// Validator turns raw file content into a ValidationResult.
// Implementations must be safe for concurrent use by multiple goroutines.
type Validator interface {
	// Validate parses content and hints it. A non-nil error is always an *Error
	// of kind KindInvalidJSON or KindInvalidGeoJSON; the returned result still
	// carries the issues found.
	Validate(path string, content []byte) (ValidationResult, error)
}

// Reporter receives the observable output of a run.
// Implementations must be safe for concurrent use by multiple goroutines.
type Reporter interface {
	// FileValid is called once per file that passed validation.
	FileValid(path string)

	// RunSucceeded is called once when every file passed.
	RunSucceeded(count int)

	// RunFailed is called once with the error that ended the run.
	RunFailed(err error)
}

// FileHinter validates a single file end to end.
type FileHinter interface {
	Hint(ctx context.Context, path string) error
}
