package scantab

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tsawler/scantab/classify"
	"github.com/tsawler/scantab/cluster"
	"github.com/tsawler/scantab/config"
	"github.com/tsawler/scantab/model"
	"github.com/tsawler/scantab/normalize"
	"github.com/tsawler/scantab/tables"
)

// ErrEmptyRegionSet is returned when clustering yields zero non-noise
// regions. Nothing was extracted; this is a run-level outcome, not an
// internal failure, and the returned Result still carries any warnings.
var ErrEmptyRegionSet = errors.New("no table regions found")

// ErrNoHeaderFound is the per-region failure re-exported for callers
// inspecting Result.Skipped.
var ErrNoHeaderFound = tables.ErrNoHeaderFound

// Warning describes a non-fatal issue encountered during reconstruction,
// such as a dropped malformed fragment or a skipped region.
type Warning struct {
	Stage   string
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("[%s] %s", w.Stage, w.Message)
}

// FormatWarnings renders warnings as a single semicolon-separated string
// for logging.
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}

// RegionError records a region that failed reconstruction and was skipped.
// Regions are identified by bounding geometry, never by cluster label.
type RegionError struct {
	BBox model.BBox
	Err  error
}

// Result is the outcome of one reconstruction run: the tables that were
// recovered, the regions that were skipped, and accumulated warnings.
type Result struct {
	Tables   []*model.Table
	Skipped  []RegionError
	Warnings []Warning
}

// Pipeline runs the reconstruction stages in order: region clustering,
// header detection, column alignment, type classification, and cell
// normalization. A Pipeline is immutable after construction and safe for
// concurrent use.
type Pipeline struct {
	cfg        config.Config
	detector   *tables.HeaderDetector
	aligner    *tables.ColumnAligner
	normalizer *normalize.Normalizer
}

// New creates a pipeline from the given configuration.
func New(cfg config.Config) *Pipeline {
	detector := tables.NewHeaderDetector()
	detector.Configure(cfg.TablesConfig())

	aligner := tables.NewColumnAligner()
	aligner.Configure(cfg.TablesConfig())

	return &Pipeline{
		cfg:        cfg,
		detector:   detector,
		aligner:    aligner,
		normalizer: normalize.NewWithTables(cfg.ConfusableRunes(), cfg.TokenRemaps),
	}
}

// Reconstruct runs the pipeline over one document's fragments. Fragments
// with degenerate bounding boxes are dropped with a warning before
// clustering. A region whose header cannot be detected is skipped and
// reported in Result.Skipped; remaining regions still process. Returns
// ErrEmptyRegionSet, alongside a usable Result, when clustering finds no
// regions at all.
func (p *Pipeline) Reconstruct(fragments []model.TextFragment) (*Result, error) {
	result := &Result{}

	valid, malformed := cluster.FilterMalformed(fragments)
	for _, f := range malformed {
		result.Warnings = append(result.Warnings, Warning{
			Stage:   "cluster",
			Message: fmt.Sprintf("dropped fragment %q: degenerate bounding box", f.Text),
		})
	}

	regions := cluster.Regions(valid, p.cfg.ClusterEps, p.cfg.ClusterMinSamples)
	if len(regions) == 0 {
		return result, ErrEmptyRegionSet
	}

	for _, region := range regions {
		table, err := p.reconstructRegion(region)
		if err != nil {
			result.Skipped = append(result.Skipped, RegionError{BBox: region.BBox, Err: err})
			result.Warnings = append(result.Warnings, Warning{
				Stage:   "header",
				Message: fmt.Sprintf("skipped region at (%.0f,%.0f): %v", region.BBox.X, region.BBox.Y, err),
			})
			continue
		}
		result.Tables = append(result.Tables, table)
	}

	return result, nil
}

// reconstructRegion runs header detection, alignment, classification and
// normalization for a single region.
func (p *Pipeline) reconstructRegion(region *cluster.TableRegion) (*model.Table, error) {
	header, err := p.detector.Detect(region)
	if err != nil {
		return nil, err
	}

	table := model.NewTable(header.Columns)
	table.Rows = p.aligner.Align(region, header)
	table.BBox = region.BBox
	table.Confidence = header.Score

	for col := range table.Columns {
		table.Columns[col].InferredType = classify.Classify(table.ColumnValues(col))
	}

	for _, row := range table.Rows {
		for col := range row {
			row[col].Text = p.normalizer.Normalize(row[col].Text, table.Columns[col].InferredType)
		}
	}

	return table, nil
}
