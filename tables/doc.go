// Package tables turns a clustered table region into a row-major grid.
//
// Reconstruction happens in two steps:
//
//  1. [HeaderDetector] finds the row of fragments that constitutes the
//     column headers and derives one [model.ColumnSpec] per header fragment,
//     with non-overlapping x-bands that cover the region's full horizontal
//     extent.
//  2. [ColumnAligner] maps every remaining fragment into the header's column
//     grid, producing ordered rows with exactly one cell per column.
//
// # Header Scoring
//
// Header detection is deterministic rule evaluation, not a trained model.
// The top few horizontal bands of a region are scored: vocabulary words,
// unit suffixes like "(mm)", and short token counts raise a band's score,
// while pure numbers and alphanumeric codes lower it. The best band above
// [Config].ScoreThreshold becomes the header; otherwise detection fails with
// [ErrNoHeaderFound] and the region is skipped.
//
// # Configuration
//
// Behavior is controlled by [Config]:
//
//	config := tables.DefaultConfig()
//	config.ScoreThreshold = 0.5
//	detector.Configure(config)
package tables
