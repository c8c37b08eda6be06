// Package paths provides centralized path handling for invoicehandler.
//
// It handles:
//
//   - Configuration file discovery
//   - Path normalization and home expansion
//   - Validation of computed rename targets
//
// # Environment Variables
//
//   - INVOICEHANDLER_CONFIG: Override the configuration file location
//   - XDG_CONFIG_HOME: Base for the default config path outside Linux
//
// # Path identity
//
// Two paths are the same when their normalized absolute forms are byte-equal.
// Symlinks are not resolved and no case folding is applied.
package paths
