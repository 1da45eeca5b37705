// Package buffer provides fixed-capacity circular sample storage for
// streaming DSP with bounded memory. A Ring overwrites its oldest
// sample once full and reports the evicted value, which lets callers
// maintain O(1) running aggregates over a sliding window.
package buffer
