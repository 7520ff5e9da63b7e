// Package tui is the terminal playground for boardlab, built on Bubble Tea.
//
// # Key Bindings
//
//	p     - Add a random point
//	s     - Add a random segment
//	r     - Reset the board to the demo scene
//	b     - Benchmark the current renderer
//	Tab   - Next renderer (1-3 select directly)
//	t     - Cycle color themes
//	?     - Toggle help
//	q     - Quit
package tui
