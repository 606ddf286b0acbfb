package tables

import (
	"math"

	"github.com/tsawler/scantab/cluster"
	"github.com/tsawler/scantab/model"
)

// ColumnAligner assigns every non-header fragment of a region to a
// (row, column) cell using the header's column bands and the same vertical
// banding used for header detection.
type ColumnAligner struct {
	config Config
}

// NewColumnAligner creates a column aligner with default configuration.
func NewColumnAligner() *ColumnAligner {
	return &ColumnAligner{config: DefaultConfig()}
}

// Configure sets the aligner configuration.
func (a *ColumnAligner) Configure(config Config) {
	a.config = config
}

// Align maps a region's data fragments into the header's column grid and
// returns the rows in vertical order. Header fragments, and anything above
// the header band (titles, page furniture), are excluded. Fragments landing
// in the same cell are concatenated left-to-right with a single space;
// bands that align to no column at all are dropped as blank-line artifacts.
// Every returned row has exactly one cell per column.
func (a *ColumnAligner) Align(region *cluster.TableRegion, header *Header) [][]model.Cell {
	if header == nil || len(header.Columns) == 0 {
		return nil
	}

	data := excludeHeader(region.Fragments, header.Fragments)
	if len(data) == 0 {
		return nil
	}

	var rows [][]model.Cell
	for _, band := range cluster.Bands(data, a.config.RowBandEps) {
		row := make([]model.Cell, len(header.Columns))
		filled := false

		// Bands arrive sorted left to right, so same-cell fragments
		// concatenate in reading order.
		for _, f := range band {
			col := columnFor(f.Centroid().X, header.Columns)
			if col < 0 {
				continue
			}
			cell := &row[col]
			if cell.Text != "" {
				cell.Text += " "
			}
			cell.Text += f.Text
			if cell.BBox.IsEmpty() {
				cell.BBox = f.BBox
			} else {
				cell.BBox = cell.BBox.Union(f.BBox)
			}
			filled = true
		}

		if filled {
			rows = append(rows, row)
		}
	}

	return rows
}

// excludeHeader filters out the header fragments themselves and any fragment
// whose centroid sits at or above the header row. Content above the header
// is region furniture such as a table title, never table data.
func excludeHeader(fragments, header []model.TextFragment) []model.TextFragment {
	headerSet := make(map[model.TextFragment]bool, len(header))
	headerMaxY := math.Inf(-1)
	for _, h := range header {
		headerSet[h] = true
		if y := h.Centroid().Y; y > headerMaxY {
			headerMaxY = y
		}
	}

	var data []model.TextFragment
	for _, f := range fragments {
		if headerSet[f] {
			continue
		}
		if f.Centroid().Y <= headerMaxY {
			continue
		}
		data = append(data, f)
	}
	return data
}

// columnFor returns the index of the column whose x-band contains x. If the
// point sits on a shared boundary the nearest band center wins.
func columnFor(x float64, columns []model.ColumnSpec) int {
	best := -1
	bestDist := math.Inf(1)
	for i, col := range columns {
		if col.XBand.Contains(x) {
			return i
		}
		if d := math.Abs(x - col.XBand.Center()); d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}
