// Package testutil provides shared helpers for invoicehandler tests.
//
// Key components:
//   - file helpers for real temporary directories
//   - MockSource: a config.Source backed by functions
//   - FlakyFs: an afero.Fs that fails lock probes and records renames
//   - CaptureLogs: redirects the global zerolog logger into a buffer
//
// Usage guidelines:
//   - prefer afero.NewMemMapFs() wrapped in FlakyFs over the real filesystem
//   - tests that capture logs must not run in parallel
package testutil
