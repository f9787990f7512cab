// Package execshell provides structured helpers for invoking external tools.
//
// It wraps os/exec with logging via ShellExecutor, exposes OSCommandRunner
// for default process execution, and defines abstractions used throughout
// pmentry to run the libpointmatcher installer and pass-through commands in
// a testable manner.
package execshell
