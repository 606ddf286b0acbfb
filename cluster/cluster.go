package cluster

import (
	"sort"

	"github.com/tsawler/scantab/model"
)

// noiseLabel marks points not reachable from any dense neighborhood.
const noiseLabel = -1

// Regions groups fragments into candidate table regions using density-based
// spatial clustering over fragment centroids. Two fragments are reachable if
// their centroid distance is at most eps; a cluster forms around any fragment
// with at least minSamples reachable neighbors (itself included), and grows
// transitively through further dense fragments. Fragments reachable from
// nothing are dropped as noise.
//
// Cluster membership is deterministic for a fixed input order and parameters.
// Cluster labels are assignment-order-dependent and are not part of the
// result; callers identify regions by bounding geometry. Returned regions are
// sorted top-to-bottom by the top edge of their bounding box.
func Regions(fragments []model.TextFragment, eps float64, minSamples int) []*TableRegion {
	if len(fragments) == 0 {
		return nil
	}
	if minSamples < 1 {
		minSamples = 1
	}

	labels := scan(fragments, eps, minSamples)

	grouped := make(map[int][]model.TextFragment)
	var order []int
	for i, label := range labels {
		if label == noiseLabel {
			continue
		}
		if _, seen := grouped[label]; !seen {
			order = append(order, label)
		}
		grouped[label] = append(grouped[label], fragments[i])
	}

	regions := make([]*TableRegion, 0, len(order))
	for _, label := range order {
		regions = append(regions, NewTableRegion(grouped[label]))
	}

	sort.SliceStable(regions, func(i, j int) bool {
		return regions[i].BBox.Top() < regions[j].BBox.Top()
	})

	return regions
}

// scan runs the density-based clustering and returns one label per fragment,
// with noiseLabel for unclustered points.
func scan(fragments []model.TextFragment, eps float64, minSamples int) []int {
	const unvisited = -2

	n := len(fragments)
	centroids := make([]model.Point, n)
	for i, f := range fragments {
		centroids[i] = f.Centroid()
	}

	labels := make([]int, n)
	for i := range labels {
		labels[i] = unvisited
	}

	nextLabel := 0
	for i := 0; i < n; i++ {
		if labels[i] != unvisited {
			continue
		}

		neighbors := neighborsOf(centroids, i, eps)
		if len(neighbors) < minSamples {
			labels[i] = noiseLabel
			continue
		}

		// Seed a new cluster and expand it breadth-first through every
		// density-reachable point.
		labels[i] = nextLabel
		queue := append([]int(nil), neighbors...)
		for head := 0; head < len(queue); head++ {
			j := queue[head]
			if labels[j] == noiseLabel {
				// Border point: reachable but not dense itself.
				labels[j] = nextLabel
			}
			if labels[j] != unvisited {
				continue
			}
			labels[j] = nextLabel

			jNeighbors := neighborsOf(centroids, j, eps)
			if len(jNeighbors) >= minSamples {
				queue = append(queue, jNeighbors...)
			}
		}
		nextLabel++
	}

	return labels
}

// neighborsOf returns the indices of all points within eps of point i,
// including i itself.
func neighborsOf(centroids []model.Point, i int, eps float64) []int {
	var neighbors []int
	for j, c := range centroids {
		if centroids[i].Distance(c) <= eps {
			neighbors = append(neighbors, j)
		}
	}
	return neighbors
}

// Bands groups fragments into horizontal bands by vertical-centroid
// proximity: fragments whose centroids are within eps of the band's running
// extent share a band. This is the one-dimensional form of the clustering
// used for regions, applied to the y-axis only. Bands are returned top to
// bottom; fragments within a band are sorted left to right.
func Bands(fragments []model.TextFragment, eps float64) [][]model.TextFragment {
	if len(fragments) == 0 {
		return nil
	}

	sorted := make([]model.TextFragment, len(fragments))
	copy(sorted, fragments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Centroid().Y < sorted[j].Centroid().Y
	})

	var bands [][]model.TextFragment
	current := []model.TextFragment{sorted[0]}
	lastY := sorted[0].Centroid().Y

	for _, f := range sorted[1:] {
		y := f.Centroid().Y
		if y-lastY > eps {
			bands = append(bands, current)
			current = nil
		}
		current = append(current, f)
		lastY = y
	}
	bands = append(bands, current)

	for _, band := range bands {
		model.SortFragmentsByX(band)
	}

	return bands
}
