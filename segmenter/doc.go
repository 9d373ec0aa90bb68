// Package segmenter cuts a 1-D signal into overlapping fixed-length windows,
// optionally first-differencing the series and auto-selecting the window
// size from the signal's autocorrelation function.
//
// AI-HINT: SlidingWindow caches its autocorrelation-derived window size on
// the first Segment call; every subsequent call on the same instance reuses
// that cached size even if the data changes, matching the "on the FIRST
// call only" rule in the component design.
package segmenter
