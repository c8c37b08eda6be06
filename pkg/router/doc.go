// Package router consumes the ordered event stream and dispatches each path
// either to a rule reload or to the lock guard and rename engine.
//
// The router owns the rule set. It is written on reload and read by the
// engine, both on the single goroutine that runs Run, so it is replaced by
// value and needs no locking. Running Handle from more than one goroutine is
// not supported.
//
// A failed reload keeps the previous rules in force. A failure on one path is
// logged and never stops the loop or the other paths of the same event.
package router
