package services

import (
	"context"
	"errors"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/vvka-141/gjhint/internal/files/scanner"
	"github.com/vvka-141/gjhint/pkg/gjhint"
)

// RunService hints every GeoJSON file directly inside a directory.
type RunService struct {
	lister    gjhint.FileScanner
	hinter    gjhint.FileHinter
	logger    gjhint.Logger
	reportAll bool
}

// NewRunService creates a RunService. Panics on nil dependencies.
//
// With reportAll false the run fails on the first invalid file; with
// reportAll true every file is hinted and all failures are returned joined.
func NewRunService(
	lister gjhint.FileScanner,
	hinter gjhint.FileHinter,
	logger gjhint.Logger,
	reportAll bool,
) *RunService {
	if lister == nil {
		panic("lister cannot be nil")
	}
	if hinter == nil {
		panic("hinter cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &RunService{
		lister:    lister,
		hinter:    hinter,
		logger:    logger,
		reportAll: reportAll,
	}
}

// Run lists dir, keeps the *.geojson entries and hints them concurrently.
//
// A listing failure ends the run before any file is read. Files are hinted
// with one goroutine each and no ordering between them.
func (s *RunService) Run(ctx context.Context, dir string) (gjhint.RunOutcome, error) {
	outcome := gjhint.RunOutcome{Dir: dir}

	entries, err := s.lister.List(dir)
	if err != nil {
		return outcome, err
	}

	names := scanner.FilterGeoJSON(entries)
	s.logger.Verbose("Found %d GeoJSON file(s) among %d entries in %s", len(names), len(entries), dir)
	if len(names) == 0 {
		return outcome, nil
	}

	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(dir, name)
	}

	if s.reportAll {
		return s.runAll(ctx, outcome, paths)
	}
	return s.runFailFast(ctx, outcome, paths)
}

func (s *RunService) runFailFast(ctx context.Context, outcome gjhint.RunOutcome, paths []string) (gjhint.RunOutcome, error) {
	g, gctx := errgroup.WithContext(ctx)

	// errgroup keeps the first error; results arriving after it are dropped
	// by the hinter through gctx.
	for _, path := range paths {
		g.Go(func() error {
			return s.hinter.Hint(gctx, path)
		})
	}

	if err := g.Wait(); err != nil {
		outcome.Files = []gjhint.FileOutcome{{Path: gjhint.PathOf(err), Err: err}}
		return outcome, err
	}

	outcome.Files = make([]gjhint.FileOutcome, len(paths))
	for i, path := range paths {
		outcome.Files[i] = gjhint.FileOutcome{Path: path}
	}
	return outcome, nil
}

func (s *RunService) runAll(ctx context.Context, outcome gjhint.RunOutcome, paths []string) (gjhint.RunOutcome, error) {
	outcome.Files = make([]gjhint.FileOutcome, len(paths))

	var g errgroup.Group
	for i, path := range paths {
		g.Go(func() error {
			outcome.Files[i] = gjhint.FileOutcome{Path: path, Err: s.hinter.Hint(ctx, path)}
			return nil
		})
	}
	_ = g.Wait()

	var errs []error
	for _, f := range outcome.Files {
		if f.Err != nil {
			errs = append(errs, f.Err)
		}
	}
	return outcome, errors.Join(errs...)
}
