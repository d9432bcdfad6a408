package services

import (
	"context"

	"github.com/vvka-141/gjhint/pkg/gjhint"
)

// HintService reads one file as UTF-8 and validates it as GeoJSON.
// Safe for concurrent use when its dependencies are.
type HintService struct {
	reader    gjhint.FileReader
	validator gjhint.Validator
	reporter  gjhint.Reporter
	logger    gjhint.Logger
}

// NewHintService creates a HintService. Panics on nil dependencies.
func NewHintService(
	reader gjhint.FileReader,
	validator gjhint.Validator,
	reporter gjhint.Reporter,
	logger gjhint.Logger,
) *HintService {
	if reader == nil {
		panic("reader cannot be nil")
	}
	if validator == nil {
		panic("validator cannot be nil")
	}
	if reporter == nil {
		panic("reporter cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &HintService{
		reader:    reader,
		validator: validator,
		reporter:  reporter,
		logger:    logger,
	}
}

// Hint validates the file at path and reports it as valid on success.
// Errors from reading or validation are returned unchanged and not reported.
// Once ctx is done the success line is suppressed; the work still completes.
func (s *HintService) Hint(ctx context.Context, path string) error {
	s.logger.Verbose("Hinting %s", path)

	content, err := s.reader.Read(path, gjhint.EncodingUTF8)
	if err != nil {
		return err
	}

	result, err := s.validator.Validate(path, content)
	if err != nil {
		return err
	}
	if len(result.Issues) > 0 {
		s.logger.Verbose("%s passed with %d non-failing issue(s): %s",
			path, len(result.Issues), result.Issues.Summary(gjhint.MaxIssuesShown))
	}

	if ctx.Err() != nil {
		s.logger.Verbose("Run already finished, not reporting %s", path)
		return nil
	}
	s.reporter.FileValid(path)
	return nil
}

var _ gjhint.FileHinter = (*HintService)(nil)
