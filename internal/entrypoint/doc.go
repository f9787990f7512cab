// Package entrypoint implements the container entrypoint dispatch sequence:
// environment file loading, required installer variable validation, installer
// invocation with derived flags, and pass-through command execution.
package entrypoint
