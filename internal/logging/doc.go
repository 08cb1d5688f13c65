// Package logging builds the slog loggers used across marquee.
//
// Two output formats are supported: a compact console format for interactive
// runs and a JSON format for machine consumption. Log records go to stderr so
// stdout stays free for tables, prompts, and progress rendering. Helpers in
// attrs.go keep attribute construction consistent and provide the no-op
// logger components fall back to when none is supplied.
package logging
