package tables

// Config holds header detection and row alignment parameters. All geometric
// and lexical constants live here rather than in the algorithms, so nothing
// is tuned to a particular document.
type Config struct {
	// Vertical centroid distance within which fragments share a row band
	RowBandEps float64

	// How many bands from the top of a region are considered as header
	// candidates
	HeaderBands int

	// Minimum mean fragment score for a band to qualify as the header row
	ScoreThreshold float64

	// Lowercase words that suggest a fragment is a column header
	Vocabulary []string
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		RowBandEps:     30.0,
		HeaderBands:    3,
		ScoreThreshold: 0.3,
		Vocabulary:     DefaultVocabulary(),
	}
}

// DefaultVocabulary returns the built-in header vocabulary: generic label
// words that appear in column headers across domains.
func DefaultVocabulary() []string {
	return []string{
		"number", "no", "id", "code",
		"name", "description", "item", "product",
		"quantity", "qty", "amount", "count",
		"price", "cost", "rate", "value",
		"date", "time",
		"size", "dimension", "length", "width", "height", "diameter",
		"tolerance", "precision", "accuracy",
		"machine", "equipment", "device",
		"part", "component", "element",
		"total", "sum", "subtotal",
	}
}
