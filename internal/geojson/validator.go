package geojson

import (
	"fmt"

	"github.com/vvka-141/gjhint/internal/geojson/hint"
	"github.com/vvka-141/gjhint/pkg/gjhint"
)

// Validator parses and hints GeoJSON content.
// Validator is safe for concurrent use by multiple goroutines.
type Validator struct {
	opts gjhint.HintOptions
	hint func(doc any) gjhint.Issues
}

// NewValidator creates a Validator applying opts.
func NewValidator(opts gjhint.HintOptions) *Validator {
	return &Validator{
		opts: opts,
		hint: hint.New(opts).Hint,
	}
}

// Validate parses content as JSON and hints it as GeoJSON.
//
// Returns:
//   - gjhint.ValidationResult: every issue found, empty when valid
//   - error: nil on success; *gjhint.Error of KindInvalidJSON when content
//     is not JSON, KindInvalidGeoJSON when issues fail the document or the
//     hint engine breaks down
func (v *Validator) Validate(path string, content []byte) (gjhint.ValidationResult, error) {
	result := gjhint.ValidationResult{Path: path}

	doc, err := parse(content)
	if err != nil {
		return result, gjhint.NewInvalidJSONError(path, err)
	}

	var issues gjhint.Issues
	if v.opts.NoDuplicateMembers {
		// content already parsed, so the token pass cannot fail on syntax
		dups, _ := duplicateMembers(content)
		issues = append(issues, dups...)
	}

	hinted, err := v.safeHint(doc)
	if err != nil {
		return result, gjhint.NewHintEngineError(path, err)
	}
	issues = append(issues, hinted...)
	result.Issues = issues

	failing := issues
	if !v.opts.FailOnMessages {
		failing = issues.Errors()
	}
	if len(failing) > 0 {
		return result, gjhint.NewInvalidGeoJSONError(path, issues)
	}
	return result, nil
}

func (v *Validator) safeHint(doc any) (issues gjhint.Issues, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("hint engine panicked: %v", r)
		}
	}()
	return v.hint(doc), nil
}

// Verify Validator implements the interface at compile time
var _ gjhint.Validator = (*Validator)(nil)
