// Package cluster groups OCR text fragments into candidate table regions.
//
// Clustering is density-based: a region forms wherever enough fragment
// centroids sit within a configurable reach of each other, and isolated
// fragments are dropped as noise. No document-specific geometric constant is
// baked in; the eps and minSamples parameters come from configuration.
//
// # Regions
//
//	regions := cluster.Regions(fragments, 50, 3)
//
// Returned [TableRegion] values are sorted top-to-bottom for stable
// downstream processing. The same technique, restricted to the y-axis, is
// exposed as [Bands] and reused for header and row banding.
package cluster
