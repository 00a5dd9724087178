// Package logger provides structured logging for the launcher, built on
// zerolog. It supports console and json output, level configuration from
// the environment, and a process-wide default logger used by the command
// entry points.
package logger
