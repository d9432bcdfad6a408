package services

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/vvka-141/gjhint/pkg/gjhint"
)

type recordingReporter struct {
	mu    sync.Mutex
	valid []string
}

func (r *recordingReporter) FileValid(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.valid = append(r.valid, path)
}

func (r *recordingReporter) RunSucceeded(int) {}

func (r *recordingReporter) RunFailed(error) {}

// Valid returns the reported paths sorted, since hints finish in any order.
func (r *recordingReporter) Valid() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := append([]string(nil), r.valid...)
	sort.Strings(out)
	return out
}

type countingReader struct {
	inner gjhint.FileReader
	reads atomic.Int32
}

func (c *countingReader) Read(path, encoding string) ([]byte, error) {
	c.reads.Add(1)
	return c.inner.Read(path, encoding)
}

type mockValidator struct {
	result gjhint.ValidationResult
	err    error
}

func (m *mockValidator) Validate(path string, _ []byte) (gjhint.ValidationResult, error) {
	res := m.result
	res.Path = path
	return res, m.err
}

type mockHinter struct {
	errs map[string]error

	mu    sync.Mutex
	calls []string
}

func (m *mockHinter) Hint(_ context.Context, path string) error {
	m.mu.Lock()
	m.calls = append(m.calls, path)
	m.mu.Unlock()
	return m.errs[path]
}

func (m *mockHinter) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := append([]string(nil), m.calls...)
	sort.Strings(out)
	return out
}

type mockLister struct {
	entries []string
	err     error
}

func (m *mockLister) List(string) ([]string, error) {
	return m.entries, m.err
}
