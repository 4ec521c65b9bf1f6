// Package pipe provides left-to-right function application for composing
// option and result combinators into pipelines.
//
// Key operations:
// - Pipe: thread a value through same-type steps, variadically
// - Pipe2..Pipe8: thread a value through steps whose types differ
// - Chain: fluent wrapper over same-type threading (From/Then/Tap/Value)
//
// Execution is fail-fast: pipe does no error handling, so a panic inside a
// step aborts the remaining chain with no partial result.
package pipe
