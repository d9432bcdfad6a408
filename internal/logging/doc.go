// Package logging provides concrete implementations of the gjhint.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes prefixed diagnostics to a writer (stderr for the CLI)
//   - NullLogger: Discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
