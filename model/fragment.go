package model

import "sort"

// TextFragment represents one recognized text span from an OCR engine:
// the recognized string, its bounding box in page coordinates, and the
// engine's confidence in the recognition. Fragments are immutable once
// produced; the pipeline copies rather than mutates them.
type TextFragment struct {
	Text       string
	BBox       BBox
	Confidence float64 // 0-1
}

// Centroid returns the center point of the fragment's bounding box.
func (f TextFragment) Centroid() Point {
	return f.BBox.Center()
}

// SortFragmentsByReadingOrder sorts fragments top-to-bottom, then
// left-to-right, in place.
func SortFragmentsByReadingOrder(fragments []TextFragment) {
	sort.SliceStable(fragments, func(i, j int) bool {
		ci := fragments[i].Centroid()
		cj := fragments[j].Centroid()
		if ci.Y != cj.Y {
			return ci.Y < cj.Y
		}
		return ci.X < cj.X
	})
}

// SortFragmentsByX sorts fragments left-to-right by centroid, in place.
func SortFragmentsByX(fragments []TextFragment) {
	sort.SliceStable(fragments, func(i, j int) bool {
		return fragments[i].Centroid().X < fragments[j].Centroid().X
	})
}

// FragmentsBBox returns the union of all fragment bounding boxes.
// Returns a zero box for an empty slice.
func FragmentsBBox(fragments []TextFragment) BBox {
	if len(fragments) == 0 {
		return BBox{}
	}
	box := fragments[0].BBox
	for _, f := range fragments[1:] {
		box = box.Union(f.BBox)
	}
	return box
}
