package cluster

import "github.com/tsawler/scantab/model"

// TableRegion is a set of spatially proximate text fragments plus the union
// of their bounding boxes. Regions partition the clustered fragment set:
// every fragment belongs to at most one region, and fragments that failed
// the clustering thresholds belong to none.
type TableRegion struct {
	Fragments []model.TextFragment
	BBox      model.BBox
}

// NewTableRegion builds a region from its member fragments and computes the
// region bounding box.
func NewTableRegion(fragments []model.TextFragment) *TableRegion {
	return &TableRegion{
		Fragments: fragments,
		BBox:      model.FragmentsBBox(fragments),
	}
}

// Size returns the number of member fragments.
func (r *TableRegion) Size() int {
	return len(r.Fragments)
}

// FilterMalformed splits fragments into those with valid bounding boxes and
// those with degenerate ones (zero or negative width or height). Malformed
// fragments must never reach clustering; callers record them as warnings.
func FilterMalformed(fragments []model.TextFragment) (valid, malformed []model.TextFragment) {
	for _, f := range fragments {
		if f.BBox.IsValid() {
			valid = append(valid, f)
		} else {
			malformed = append(malformed, f)
		}
	}
	return valid, malformed
}
