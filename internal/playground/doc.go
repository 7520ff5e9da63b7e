// Package playground drives a board interactively: renderer switching,
// random elements, resets and in-place benchmarks, with live stats and an
// event log. It holds no terminal code; internal/tui renders it.
package playground
