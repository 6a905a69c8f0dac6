// Package logging builds the structured logger used by the command line tool.
// The generation packages never log; the CLI reports per-declaration progress
// through a Logger.
package logging
