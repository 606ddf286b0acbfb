package tables

import (
	"testing"

	"github.com/tsawler/scantab/cluster"
	"github.com/tsawler/scantab/model"
)

func detect(t *testing.T, region *cluster.TableRegion) *Header {
	t.Helper()
	header, err := NewHeaderDetector().Detect(region)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	return header
}

func TestAlign(t *testing.T) {
	region := partsRegion()
	header := detect(t, region)

	rows := NewColumnAligner().Align(region, header)
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}

	want := [][]string{
		{"PN-482-4", "M-03", "12.5"},
		{"PN-SSI-C", "M-03", "8.0"},
	}
	for r, wantRow := range want {
		if len(rows[r]) != len(header.Columns) {
			t.Fatalf("Row %d has %d cells, expected %d", r, len(rows[r]), len(header.Columns))
		}
		for c, wantText := range wantRow {
			if rows[r][c].Text != wantText {
				t.Errorf("Cell (%d,%d): expected %q, got %q", r, c, wantText, rows[r][c].Text)
			}
		}
	}
}

func TestAlignExcludesTitleAboveHeader(t *testing.T) {
	fragments := append([]model.TextFragment{
		boxFrag("Manufacturing Parts Log", 100, -40, 200, 20),
	}, partsRegion().Fragments...)
	region := cluster.NewTableRegion(fragments)

	header := detect(t, region)
	if len(header.Columns) != 3 {
		t.Fatalf("Expected 3 columns, got %d", len(header.Columns))
	}

	rows := NewColumnAligner().Align(region, header)
	if len(rows) != 2 {
		t.Fatalf("Expected 2 data rows, got %d", len(rows))
	}
	for _, row := range rows {
		for _, cell := range row {
			if cell.Text == "Manufacturing Parts Log" {
				t.Error("Title fragment should not appear in data rows")
			}
		}
	}
}

func TestAlignConcatenatesSplitCells(t *testing.T) {
	// Two fragments in the same row and column are one logical cell split
	// by the OCR engine
	fragments := []model.TextFragment{
		boxFrag("Part Number", 50, 0, 100, 20),
		boxFrag("Description", 200, 0, 100, 20),

		boxFrag("PN-1", 50, 40, 50, 20),
		boxFrag("steel", 200, 40, 40, 20),
		boxFrag("rod", 250, 40, 40, 20),
	}
	region := cluster.NewTableRegion(fragments)

	header := detect(t, region)
	rows := NewColumnAligner().Align(region, header)
	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(rows))
	}

	if rows[0][1].Text != "steel rod" {
		t.Errorf("Expected concatenated cell %q, got %q", "steel rod", rows[0][1].Text)
	}

	// The cell's box covers both source fragments
	box := rows[0][1].BBox
	if box.Left() != 200 || box.Right() != 290 {
		t.Errorf("Unexpected cell box: %+v", box)
	}
}

func TestAlignBoundaryFragment(t *testing.T) {
	region := partsRegion()
	header := detect(t, region)

	// A fragment whose centroid sits exactly on the shared band boundary
	// belongs to the right-hand column, whose band includes its left edge
	boundary := header.Columns[1].XBand.Left
	fragments := append(region.Fragments,
		boxFrag("M-07", boundary-50, 120, 100, 20))

	rows := NewColumnAligner().Align(cluster.NewTableRegion(fragments), header)
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	if rows[2][1].Text != "M-07" {
		t.Errorf("Expected boundary fragment in column 1, got row %v", rows[2])
	}
}

func TestAlignNilHeader(t *testing.T) {
	if rows := NewColumnAligner().Align(partsRegion(), nil); rows != nil {
		t.Errorf("Expected nil rows for nil header, got %v", rows)
	}
}

func TestAlignHeaderOnlyRegion(t *testing.T) {
	fragments := []model.TextFragment{
		boxFrag("Part Number", 50, 0, 100, 20),
		boxFrag("Quantity", 160, 0, 100, 20),
	}
	region := cluster.NewTableRegion(fragments)

	header := detect(t, region)
	if rows := NewColumnAligner().Align(region, header); rows != nil {
		t.Errorf("Expected no rows for header-only region, got %v", rows)
	}
}
