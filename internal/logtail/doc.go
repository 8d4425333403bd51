// Package logtail reads the tail of liftoff's structured log file.
//
// # Overview
//
// liftoff's TUI owns the terminal, so query failures are written as logrus
// JSON lines to <log_dir>/liftoff.log. The diagnostics view reads them back
// through this package.
//
//	entries, err := logtail.Read(cfg.LogPath(), 200)
//
// # Reading
//
// Read keeps a ring buffer of the last maxLines lines, so it makes one pass
// over the file and uses O(maxLines) memory. A missing file is not an error;
// it just means nothing has been logged yet.
//
// # Parsing
//
// Each line is parsed with gjson. The logrus keys time, level, msg and error
// map onto Entry fields; every other key lands in Entry.Fields as a string.
// Lines that are not JSON objects are kept verbatim in Entry.Message.
package logtail
