// Package elements defines the board's drawable primitives and the factory
// that stamps them with ids.
//
//   - [Point]: a filled circle at a position
//   - [Segment]: a stroked line between two endpoints
//   - [Factory]: builds elements with ids such as "pt-7" or "seg-3"
//
// Ids come from a single [Counter] per factory. Factories built with
// [NewFactory] share one process-wide counter, so ids are never reused for
// the lifetime of the process, even after the element is removed from a
// board.
package elements
