// Package bench drives a board with random elements and measures how long
// each resulting render pass takes.
package bench
