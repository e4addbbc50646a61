// Package debug provides optional file-based debug logging.
//
// When the DOCK_DEBUG environment variable is set to a file path, log
// records are appended to that file. Otherwise, logging is a no-op.
package debug
