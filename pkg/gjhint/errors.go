package gjhint

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for each failure kind.
// These enable callers to distinguish error kinds using errors.Is().
//
// Example usage:
//
//	_, err := runner.Run(ctx, dir)
//	if errors.Is(err, gjhint.ErrInvalidGeoJSON) {
//	    // a file parsed but failed hinting
//	}
var (
	// ErrIO indicates a directory or file could not be read.
	ErrIO = errors.New("i/o error")

	// ErrInvalidJSON indicates file content is not syntactically valid JSON.
	ErrInvalidJSON = errors.New("invalid json")

	// ErrInvalidGeoJSON indicates valid JSON that fails GeoJSON validation.
	ErrInvalidGeoJSON = errors.New("invalid geojson")

	// ErrUnexpected indicates a programming or environment error.
	ErrUnexpected = errors.New("unexpected error")

	// ErrHintEngine indicates the hint engine itself failed on the input shape,
	// as opposed to reporting issues about it.
	ErrHintEngine = errors.New("hint engine failure")
)

// Kind discriminates the error taxonomy.
type Kind int

const (
	KindUnexpected Kind = iota
	KindIO
	KindInvalidJSON
	KindInvalidGeoJSON
)

// String returns the label printed by the reporter.
func (k Kind) String() string {
	switch k {
	case KindIO:
		return "IoError"
	case KindInvalidJSON:
		return "InvalidJson"
	case KindInvalidGeoJSON:
		return "InvalidGeoJson"
	default:
		return "UnexpectedError"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindIO:
		return ErrIO
	case KindInvalidJSON:
		return ErrInvalidJSON
	case KindInvalidGeoJSON:
		return ErrInvalidGeoJSON
	default:
		return ErrUnexpected
	}
}

// Error is the typed failure produced by every stage of a run.
type Error struct {
	Kind    Kind
	Path    string  // file or directory the failure refers to
	Message string  // human-readable summary
	Issues  []Issue // hint issues, only for KindInvalidGeoJSON
	Cause   error   // underlying error, propagated untouched
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	if len(e.Issues) > 0 {
		b.WriteString(" (")
		b.WriteString(Issues(e.Issues).Summary(MaxIssuesShown))
		b.WriteString(")")
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Cause }

// Is matches the sentinel for the error's kind.
func (e *Error) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// NewIOError wraps a filesystem failure for path.
func NewIOError(path string, cause error) *Error {
	return &Error{
		Kind:    KindIO,
		Path:    path,
		Message: fmt.Sprintf("Could not read %s", path),
		Cause:   cause,
	}
}

// NewInvalidJSONError reports that path could not be parsed as JSON.
func NewInvalidJSONError(path string, cause error) *Error {
	return &Error{
		Kind:    KindInvalidJSON,
		Path:    path,
		Message: fmt.Sprintf("File %s could not be parsed as valid JSON.", path),
		Cause:   cause,
	}
}

// NewInvalidGeoJSONError reports that path failed hinting with the given issues.
func NewInvalidGeoJSONError(path string, issues []Issue) *Error {
	return &Error{
		Kind:    KindInvalidGeoJSON,
		Path:    path,
		Message: fmt.Sprintf("File %s is invalid GeoJSON: %d issue(s).", path, len(issues)),
		Issues:  issues,
	}
}

// NewHintEngineError reports that the hint engine could not process path.
func NewHintEngineError(path string, cause error) *Error {
	return &Error{
		Kind:    KindInvalidGeoJSON,
		Path:    path,
		Message: fmt.Sprintf("File %s could not be hinted as GeoJSON.", path),
		Cause:   fmt.Errorf("%w: %v", ErrHintEngine, cause),
	}
}

// NewUnexpectedError wraps an error that fits no other kind.
func NewUnexpectedError(path string, cause error) *Error {
	return &Error{
		Kind:    KindUnexpected,
		Path:    path,
		Message: "An unexpected error occurred",
		Cause:   cause,
	}
}

// KindOf classifies err. Errors that are not *Error are KindUnexpected.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnexpected
}

// PathOf returns the file path carried by err, or "" when it carries none.
func PathOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Path
	}
	return ""
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if isUsageError(err) {
		return ExitUsageError
	}

	// errors.Join in report-all mode: the first classified kind wins.
	switch {
	case errors.Is(err, ErrIO):
		return ExitIOError
	case errors.Is(err, ErrInvalidJSON):
		return ExitInvalidJSON
	case errors.Is(err, ErrInvalidGeoJSON):
		return ExitInvalidGeoJSON
	}

	return ExitGeneralError
}

// isUsageError recognises the messages cobra and pflag produce for bad invocations.
func isUsageError(err error) bool {
	msg := err.Error()
	for _, prefix := range []string{
		"unknown flag",
		"unknown shorthand flag",
		"unknown command",
		"invalid argument",
		"flag needs an argument",
		"accepts ",
	} {
		if strings.HasPrefix(msg, prefix) {
			return true
		}
	}
	return false
}
