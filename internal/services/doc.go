// Package services defines what the external lookup clients share: the error
// marker that separates recoverable lookup failures from fatal ones, and
// context helpers that carry a correlation identifier through a run.
//
// The clients themselves live in subpackages, one per provider. Wire new
// providers through these helpers so error handling and logging stay uniform.
package services
