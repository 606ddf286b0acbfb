package tables

import (
	"errors"
	"math"
	"regexp"
	"strings"

	"github.com/tsawler/scantab/cluster"
	"github.com/tsawler/scantab/model"
)

// ErrNoHeaderFound is returned when no band near the top of a region scores
// above the configured threshold. The caller skips the region and continues
// with the rest of the page.
var ErrNoHeaderFound = errors.New("no header row found")

// Header is a detected header row: the fragments that form it and the column
// grid derived from them.
type Header struct {
	Fragments []model.TextFragment
	Columns   []model.ColumnSpec
	Score     float64
}

// HeaderDetector identifies the row of fragments that constitutes a region's
// column headers, using lexical scoring of the top few horizontal bands.
type HeaderDetector struct {
	config Config
	vocab  map[string]bool
}

// NewHeaderDetector creates a header detector with default configuration.
func NewHeaderDetector() *HeaderDetector {
	d := &HeaderDetector{}
	d.Configure(DefaultConfig())
	return d
}

// Configure sets the detector configuration.
func (d *HeaderDetector) Configure(config Config) {
	d.config = config
	d.vocab = make(map[string]bool, len(config.Vocabulary))
	for _, w := range config.Vocabulary {
		d.vocab[strings.ToLower(w)] = true
	}
}

var (
	unitPattern    = regexp.MustCompile(`\([a-zA-Z]+\)`)
	numericPattern = regexp.MustCompile(`^\d+([.,]\d+)?$`)
	codePattern    = regexp.MustCompile(`^[A-Z0-9-]+$`)
)

// Detect finds the header row in a region. Fragments are grouped into
// horizontal bands by vertical-centroid proximity; the top few bands are
// scored as header candidates and the best band above the threshold wins.
// Returns ErrNoHeaderFound if no band qualifies.
func (d *HeaderDetector) Detect(region *cluster.TableRegion) (*Header, error) {
	bands := cluster.Bands(region.Fragments, d.config.RowBandEps)
	if len(bands) == 0 {
		return nil, ErrNoHeaderFound
	}

	limit := d.config.HeaderBands
	if limit <= 0 || limit > len(bands) {
		limit = len(bands)
	}

	bestScore := math.Inf(-1)
	bestBand := -1
	for i := 0; i < limit; i++ {
		score := d.scoreBand(bands[i])
		if score > bestScore {
			bestScore = score
			bestBand = i
		}
	}

	if bestBand < 0 || bestScore < d.config.ScoreThreshold {
		return nil, ErrNoHeaderFound
	}

	header := bands[bestBand]
	columns := deriveColumns(header)

	return &Header{
		Fragments: header,
		Columns:   columns,
		Score:     clampScore(bestScore),
	}, nil
}

// scoreBand returns the mean header-likeness score of a band's fragments.
func (d *HeaderDetector) scoreBand(band []model.TextFragment) float64 {
	if len(band) == 0 {
		return math.Inf(-1)
	}
	total := 0.0
	for _, f := range band {
		total += d.scoreFragment(f)
	}
	return total / float64(len(band))
}

// scoreFragment scores one fragment for header-likeness. Vocabulary hits and
// unit suffixes raise the score; content that looks like data (pure numbers,
// alphanumeric codes) lowers it.
func (d *HeaderDetector) scoreFragment(f model.TextFragment) float64 {
	text := strings.TrimSpace(f.Text)
	if text == "" {
		return 0
	}

	score := 0.0
	lower := strings.ToLower(text)
	for _, token := range strings.FieldsFunc(lower, func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	}) {
		if d.vocab[token] {
			score += 1.0
		}
	}

	if unitPattern.MatchString(text) {
		score += 0.5
	}
	if len(strings.Fields(text)) <= 3 {
		score += 0.3
	}

	// Penalize data-shaped content.
	if numericPattern.MatchString(text) {
		score -= 1.0
	} else if codePattern.MatchString(text) && strings.ContainsAny(text, "0123456789") {
		score -= 1.0
	}

	return score
}

// deriveColumns builds one ColumnSpec per header fragment. Each column's
// x-band runs from the midpoint with its left neighbor to the midpoint with
// its right neighbor, so the bands are non-overlapping and leave no gap. The
// outermost bands extend to -Inf and +Inf so stray fragments still map to
// the nearest column.
func deriveColumns(header []model.TextFragment) []model.ColumnSpec {
	sorted := make([]model.TextFragment, len(header))
	copy(sorted, header)
	model.SortFragmentsByX(sorted)

	columns := make([]model.ColumnSpec, len(sorted))
	for i, f := range sorted {
		left := math.Inf(-1)
		if i > 0 {
			left = (sorted[i-1].BBox.Right() + f.BBox.Left()) / 2
		}
		right := math.Inf(1)
		if i < len(sorted)-1 {
			right = (f.BBox.Right() + sorted[i+1].BBox.Left()) / 2
		}

		columns[i] = model.ColumnSpec{
			Label:      collapseWhitespace(f.Text),
			XBand:      model.Band{Left: left, Right: right},
			OrderIndex: i,
		}
	}
	return columns
}

// collapseWhitespace trims a label and squeezes interior runs of whitespace
// into single spaces.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// clampScore limits a raw band score to the 0-1 confidence range.
func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
