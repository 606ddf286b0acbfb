// Package config holds the immutable per-process configuration consumed by
// the reconstruction pipeline.
//
// Every geometric or lexical constant the pipeline depends on lives here
// with a documented default; nothing is hardcoded per document. A Config is
// loaded once and shared read-only between any number of concurrent
// pipeline runs.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/tsawler/scantab/normalize"
	"github.com/tsawler/scantab/tables"
)

// Config carries the tunable parameters for all pipeline stages.
type Config struct {
	// Region clustering: centroid reachability distance and the minimum
	// neighborhood size for a fragment to seed a region.
	ClusterEps        float64 `mapstructure:"cluster_eps"`
	ClusterMinSamples int     `mapstructure:"cluster_min_samples"`

	// Vertical centroid distance within which fragments share a row band,
	// used for both header detection and row grouping.
	RowBandEps float64 `mapstructure:"row_band_eps"`

	// How many bands from the top of a region may be the header.
	HeaderBands int `mapstructure:"header_bands"`

	// Minimum mean band score for header acceptance.
	HeaderScoreThreshold float64 `mapstructure:"header_score_threshold"`

	// Words that mark a fragment as header-like. Empty means the built-in
	// vocabulary.
	HeaderVocabulary []string `mapstructure:"header_vocabulary"`

	// Single-character OCR confusions applied in digit-expected positions.
	// Keys and values are single characters; longer keys are rejected by
	// Validate.
	Confusables map[string]string `mapstructure:"confusable_character_map"`

	// Multi-character identifier corrections, matched as whole tokens.
	TokenRemaps map[string]string `mapstructure:"token_remap_table"`
}

// DefaultConfig returns the documented defaults. The geometric values match
// the scale of 300 DPI page rasters.
func DefaultConfig() Config {
	confusables := make(map[string]string)
	for from, to := range normalize.DefaultConfusables() {
		confusables[string(from)] = string(to)
	}

	return Config{
		ClusterEps:           50.0,
		ClusterMinSamples:    3,
		RowBandEps:           30.0,
		HeaderBands:          3,
		HeaderScoreThreshold: 0.3,
		HeaderVocabulary:     tables.DefaultVocabulary(),
		Confusables:          confusables,
		TokenRemaps:          normalize.DefaultTokenRemaps(),
	}
}

// Validate checks the configuration for values the pipeline cannot work
// with.
func (c Config) Validate() error {
	if c.ClusterEps <= 0 {
		return fmt.Errorf("cluster_eps must be positive, got %g", c.ClusterEps)
	}
	if c.ClusterMinSamples < 1 {
		return fmt.Errorf("cluster_min_samples must be at least 1, got %d", c.ClusterMinSamples)
	}
	if c.RowBandEps <= 0 {
		return fmt.Errorf("row_band_eps must be positive, got %g", c.RowBandEps)
	}
	for from, to := range c.Confusables {
		if len([]rune(from)) != 1 || len([]rune(to)) != 1 {
			return fmt.Errorf("confusable_character_map entries must map single characters, got %q -> %q", from, to)
		}
	}
	return nil
}

// ConfusableRunes converts the character map to the rune table the
// normalizer consumes. Call Validate first; multi-character entries are
// silently skipped here.
func (c Config) ConfusableRunes() map[rune]rune {
	table := make(map[rune]rune, len(c.Confusables))
	for from, to := range c.Confusables {
		fr := []rune(from)
		tr := []rune(to)
		if len(fr) == 1 && len(tr) == 1 {
			table[fr[0]] = tr[0]
		}
	}
	return table
}

// TablesConfig projects the header/alignment parameters into the tables
// package's configuration.
func (c Config) TablesConfig() tables.Config {
	tc := tables.Config{
		RowBandEps:     c.RowBandEps,
		HeaderBands:    c.HeaderBands,
		ScoreThreshold: c.HeaderScoreThreshold,
		Vocabulary:     c.HeaderVocabulary,
	}
	if len(tc.Vocabulary) == 0 {
		tc.Vocabulary = tables.DefaultVocabulary()
	}
	return tc
}

// Load reads configuration from an optional YAML file and SCANTAB_-prefixed
// environment variables, layered over the defaults. If cfgFile is empty,
// config.yaml is searched in the working directory and $HOME/.scantab; a
// missing file is not an error.
func Load(cfgFile string) (Config, error) {
	defaults := DefaultConfig()
	viper.SetDefault("cluster_eps", defaults.ClusterEps)
	viper.SetDefault("cluster_min_samples", defaults.ClusterMinSamples)
	viper.SetDefault("row_band_eps", defaults.RowBandEps)
	viper.SetDefault("header_bands", defaults.HeaderBands)
	viper.SetDefault("header_score_threshold", defaults.HeaderScoreThreshold)
	viper.SetDefault("header_vocabulary", defaults.HeaderVocabulary)
	viper.SetDefault("confusable_character_map", defaults.Confusables)
	viper.SetDefault("token_remap_table", defaults.TokenRemaps)

	viper.SetEnvPrefix("SCANTAB")
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.scantab")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
