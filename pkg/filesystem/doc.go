// Package filesystem provides the filesystem collaborator used by the lock
// guard and the rename engine.
//
// Everything operates on an afero.Fs: the OS filesystem in production and
// afero's in-memory filesystem in tests.
package filesystem
