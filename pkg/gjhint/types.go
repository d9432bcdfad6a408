package gjhint

import (
	"fmt"
	"strings"
)

// Level is the severity of a hint issue.
type Level string

const (
	// LevelError marks a violation of RFC 7946.
	LevelError Level = "error"

	// LevelMessage marks a recommendation (winding order, precision, deprecated members).
	LevelMessage Level = "message"
)

// Issue codes reported by the hint engine.
const (
	CodeInvalidType    = "invalid_type"
	CodeRequired       = "required"
	CodeUnknownType    = "unknown_type"
	CodeCaseMismatch   = "case_mismatch"
	CodeForeignMember  = "foreign_member"
	CodeDuplicateKey   = "duplicate_key"
	CodeTooShort       = "too_short"
	CodeTooLong        = "too_long"
	CodeRingNotClosed  = "ring_not_closed"
	CodeRightHandRule  = "right_hand_rule"
	CodePrecision      = "precision"
	CodeInvalidBBox    = "invalid_bbox"
	CodeInvalidCRS     = "invalid_crs"
	CodeSingleGeometry = "single_geometry"
)

// Issue is a single hint entry about one location in a document.
type Issue struct {
	Path    string // JSON Pointer to the offending value, "" for the root
	Code    string
	Message string
	Level   Level
}

// Location returns the path for display, "(root)" for the document itself.
func (i Issue) Location() string {
	if i.Path == "" {
		return "(root)"
	}
	return i.Path
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Location(), i.Message)
}

// Issues is an ordered list of hint entries.
type Issues []Issue

// Errors returns only the issues at LevelError.
func (iss Issues) Errors() Issues {
	var out Issues
	for _, it := range iss {
		if it.Level == LevelError {
			out = append(out, it)
		}
	}
	return out
}

// Summary renders the first limit issues on one line.
func (iss Issues) Summary(limit int) string {
	if len(iss) == 0 {
		return ""
	}
	lim := len(iss)
	if limit > 0 && lim > limit {
		lim = limit
	}
	b := &strings.Builder{}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(b, "%s at %s", iss[i].Code, iss[i].Location())
	}
	if len(iss) > lim {
		fmt.Fprintf(b, "; ... (total %d)", len(iss))
	}
	return b.String()
}

// ValidationResult is the outcome of hinting one parsed document.
// It is computed in one pass and never partially populated.
type ValidationResult struct {
	Path   string
	Issues Issues
}

// Valid reports whether hinting produced no issues.
func (r ValidationResult) Valid() bool {
	return len(r.Issues) == 0
}

// HintOptions toggles the optional hint rules.
type HintOptions struct {
	// NoDuplicateMembers reports objects with repeated member names.
	NoDuplicateMembers bool

	// PrecisionWarning reports coordinates with more than MaxPrecision decimals.
	PrecisionWarning bool
	MaxPrecision     int

	// IgnoreRightHandRule disables the polygon winding order check.
	IgnoreRightHandRule bool

	// FailOnMessages makes LevelMessage issues fail validation, not only LevelError.
	FailOnMessages bool
}

// DefaultHintOptions returns the options used when no configuration is given.
func DefaultHintOptions() HintOptions {
	return HintOptions{
		NoDuplicateMembers: true,
		PrecisionWarning:   false,
		MaxPrecision:       DefaultMaxPrecision,
		FailOnMessages:     true,
	}
}

// FileOutcome records the result of hinting one file.
type FileOutcome struct {
	Path string
	Err  error
}

// RunOutcome is the aggregate state of one batch run.
type RunOutcome struct {
	Dir   string
	Files []FileOutcome
}

// Succeeded reports whether every processed file passed.
func (o RunOutcome) Succeeded() bool {
	for _, f := range o.Files {
		if f.Err != nil {
			return false
		}
	}
	return true
}

// Failures returns the outcomes that carry an error, in run order.
func (o RunOutcome) Failures() []FileOutcome {
	var out []FileOutcome
	for _, f := range o.Files {
		if f.Err != nil {
			out = append(out, f)
		}
	}
	return out
}
