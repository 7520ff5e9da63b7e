// Package telemetry tracks render timings over a sliding window.
//
// A [Tracker] holds at most Window samples, newest first. Every Record
// recomputes the last, average, min and max durations together with a
// frames-per-second estimate derived from the average.
package telemetry
