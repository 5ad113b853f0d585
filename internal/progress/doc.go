// Package progress renders a text progress bar for a long-running
// partitioning run, driven by a relaxed atomic counter shared with
// internal/partition's worker pool.
//
// It mirrors kerrigoon/bader-rs's progress.rs: an atomically-incremented
// counter observed by a background goroutine on a fixed tick, which
// stops itself once told the owning run is done rather than being
// cancelled mid-render.
package progress
