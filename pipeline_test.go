package scantab

import (
	"errors"
	"testing"

	"github.com/tsawler/scantab/config"
	"github.com/tsawler/scantab/model"
)

func boxFrag(text string, x, y, w, h float64) model.TextFragment {
	return model.TextFragment{
		Text:       text,
		BBox:       model.NewBBox(x, y, w, h),
		Confidence: 0.9,
	}
}

// partsPage is a scanned parts log: a three-column header, two data rows,
// and the OCR corruption SSI for 551 in one part number.
func partsPage() []model.TextFragment {
	return []model.TextFragment{
		boxFrag("Part Number", 50, 0, 100, 20),
		boxFrag("Machine Number", 160, 0, 100, 20),
		boxFrag("Diameter (mm)", 270, 0, 100, 20),

		boxFrag("PN-482-4", 50, 40, 100, 20),
		boxFrag("M-03", 160, 40, 100, 20),
		boxFrag("12.5", 270, 40, 100, 20),

		boxFrag("PN-SSI-C", 50, 80, 100, 20),
		boxFrag("M-03", 160, 80, 100, 20),
		boxFrag("8.0", 270, 80, 100, 20),
	}
}

// wideConfig spaces the cluster eps for the synthetic page geometry, whose
// columns sit further apart than 300 DPI word spacing.
func wideConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.ClusterEps = 150
	return cfg
}

func TestReconstructPartsPage(t *testing.T) {
	result, err := New(wideConfig()).Reconstruct(partsPage())
	if err != nil {
		t.Fatalf("Reconstruct failed: %v", err)
	}

	if len(result.Tables) != 1 {
		t.Fatalf("Expected 1 table, got %d", len(result.Tables))
	}
	table := result.Tables[0]

	wantHeaders := []string{"Part Number", "Machine Number", "Diameter (mm)"}
	headers := table.Headers()
	for i, want := range wantHeaders {
		if headers[i] != want {
			t.Errorf("Header %d: expected %q, got %q", i, want, headers[i])
		}
	}

	if table.RowCount() != 2 || table.ColCount() != 3 {
		t.Fatalf("Expected 2x3 table, got %dx%d", table.RowCount(), table.ColCount())
	}

	// Column types inferred from the data
	if table.Columns[0].InferredType != model.TypeIdentifier {
		t.Errorf("Column 0: expected Identifier, got %v", table.Columns[0].InferredType)
	}
	if table.Columns[2].InferredType != model.TypeNumeric {
		t.Errorf("Column 2: expected Numeric, got %v", table.Columns[2].InferredType)
	}

	// The corrupted part number is repaired per the identifier rules
	if got := table.GetCell(1, 0).Text; got != "PN-551-C" {
		t.Errorf("Expected repaired part number %q, got %q", "PN-551-C", got)
	}
	if got := table.GetCell(0, 0).Text; got != "PN-482-4" {
		t.Errorf("Clean part number changed: %q", got)
	}
	if got := table.GetCell(1, 2).Text; got != "8.0" {
		t.Errorf("Expected %q, got %q", "8.0", got)
	}

	if table.Confidence <= 0 || table.Confidence > 1 {
		t.Errorf("Confidence out of range: %f", table.Confidence)
	}
}

func TestReconstructToleranceColumn(t *testing.T) {
	fragments := []model.TextFragment{
		boxFrag("Dimension", 50, 0, 100, 20),
		boxFrag("Tolerance", 160, 0, 100, 20),

		boxFrag("12.5", 50, 40, 100, 20),
		boxFrag("t0.05", 160, 40, 100, 20),

		boxFrag("8.0", 50, 80, 100, 20),
		boxFrag("+0.02", 160, 80, 100, 20),

		boxFrag("15.0", 50, 120, 100, 20),
		boxFrag("T0.1", 160, 120, 100, 20),
	}

	result, err := New(wideConfig()).Reconstruct(fragments)
	if err != nil {
		t.Fatalf("Reconstruct failed: %v", err)
	}
	if len(result.Tables) != 1 {
		t.Fatalf("Expected 1 table, got %d", len(result.Tables))
	}
	table := result.Tables[0]

	if table.Columns[1].InferredType != model.TypeTolerance {
		t.Fatalf("Expected Tolerance column, got %v", table.Columns[1].InferredType)
	}

	// The OCR-corrupted signs are standardized; the genuine plus is not
	if got := table.GetCell(0, 1).Text; got != "±0.05" {
		t.Errorf("Expected %q, got %q", "±0.05", got)
	}
	if got := table.GetCell(1, 1).Text; got != "+0.02" {
		t.Errorf("Expected %q, got %q", "+0.02", got)
	}
	if got := table.GetCell(2, 1).Text; got != "±0.1" {
		t.Errorf("Expected %q, got %q", "±0.1", got)
	}
}

func TestReconstructEmptyRegionSet(t *testing.T) {
	// Scattered fragments, none with enough neighbors to seed a region
	fragments := []model.TextFragment{
		boxFrag("lonely", 0, 0, 50, 20),
		boxFrag("words", 2000, 0, 50, 20),
		boxFrag("here", 0, 2000, 50, 20),
	}

	result, err := New(config.DefaultConfig()).Reconstruct(fragments)
	if !errors.Is(err, ErrEmptyRegionSet) {
		t.Fatalf("Expected ErrEmptyRegionSet, got %v", err)
	}
	if result == nil {
		t.Fatal("Expected a usable result alongside ErrEmptyRegionSet")
	}
	if len(result.Tables) != 0 {
		t.Errorf("Expected no tables, got %d", len(result.Tables))
	}
}

func TestReconstructDropsMalformedFragments(t *testing.T) {
	fragments := append(partsPage(),
		model.TextFragment{Text: "ghost", BBox: model.NewBBox(50, 40, 0, 0)})

	result, err := New(wideConfig()).Reconstruct(fragments)
	if err != nil {
		t.Fatalf("Reconstruct failed: %v", err)
	}

	if len(result.Tables) != 1 {
		t.Fatalf("Expected 1 table despite malformed fragment, got %d", len(result.Tables))
	}

	found := false
	for _, w := range result.Warnings {
		if w.Stage == "cluster" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected a cluster warning for the malformed fragment, got %v", result.Warnings)
	}
}

func TestReconstructSkipsHeaderlessRegion(t *testing.T) {
	// A second region of raw numbers far below the parts table
	fragments := partsPage()
	for row := 0; row < 3; row++ {
		y := 600 + float64(row)*40
		fragments = append(fragments,
			boxFrag("12.5", 50, y, 100, 20),
			boxFrag("30.2", 160, y, 100, 20))
	}

	result, err := New(wideConfig()).Reconstruct(fragments)
	if err != nil {
		t.Fatalf("Reconstruct failed: %v", err)
	}

	if len(result.Tables) != 1 {
		t.Errorf("Expected 1 table, got %d", len(result.Tables))
	}
	if len(result.Skipped) != 1 {
		t.Fatalf("Expected 1 skipped region, got %d", len(result.Skipped))
	}
	if !errors.Is(result.Skipped[0].Err, ErrNoHeaderFound) {
		t.Errorf("Expected ErrNoHeaderFound, got %v", result.Skipped[0].Err)
	}
}

func TestReconstructDefault(t *testing.T) {
	// The package-level convenience runs with default geometry; this page's
	// word spacing fits within the default eps
	fragments := []model.TextFragment{
		boxFrag("Part", 0, 0, 40, 20),
		boxFrag("Qty", 50, 0, 30, 20),

		boxFrag("PN-1", 0, 40, 40, 20),
		boxFrag("150", 50, 40, 30, 20),

		boxFrag("PN-2", 0, 80, 40, 20),
		boxFrag("200", 50, 80, 30, 20),
	}

	result, err := Reconstruct(fragments)
	if err != nil {
		t.Fatalf("Reconstruct failed: %v", err)
	}
	if len(result.Tables) != 1 {
		t.Fatalf("Expected 1 table, got %d", len(result.Tables))
	}
	if result.Tables[0].RowCount() != 2 {
		t.Errorf("Expected 2 rows, got %d", result.Tables[0].RowCount())
	}
}

func TestFormatWarnings(t *testing.T) {
	warnings := []Warning{
		{Stage: "cluster", Message: "dropped fragment"},
		{Stage: "header", Message: "skipped region"},
	}
	got := FormatWarnings(warnings)
	want := "[cluster] dropped fragment; [header] skipped region"
	if got != want {
		t.Errorf("FormatWarnings = %q, want %q", got, want)
	}
}

func TestMust(t *testing.T) {
	if got := Must(42, nil); got != 42 {
		t.Errorf("Must = %d, want 42", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("Expected Must to panic on error")
		}
	}()
	Must(0, errors.New("boom"))
}
