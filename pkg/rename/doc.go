// Package rename decides the new name of a file from a rule set and performs
// the move.
//
// Rules are scanned in declared order and the first rule whose pattern occurs
// in the file name wins, even when its result equals the current name. The
// scan is linear in the number of rules. The only side effect is a single
// rename inside the file's own directory; existing files are never
// overwritten and failed renames are not retried.
package rename
