// Package main hosts the Marquee CLI entrypoint and command graph.
//
// The Cobra-based command tree loads a movie CSV, resolves its columns,
// fills blank trailer and related films cells through the lookup services,
// and writes the file back in place. It centralizes configuration
// resolution, terminal rendering, and structured logging setup so the
// enrichment pipeline in internal/enrich stays free of presentation
// concerns.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
