// Package scantab reconstructs structured tables from flat OCR output.
//
// Given a list of text fragments, each a recognized string with a bounding
// box and confidence score, scantab recovers which fragments belong to
// which table, which row and column each belongs to, what each column's
// semantic data type is, and repairs OCR-induced corruption consistent with
// that type.
//
// Basic usage:
//
//	result, err := scantab.Reconstruct(fragments)
//	if err != nil {
//	    // handle error
//	}
//	for _, table := range result.Tables {
//	    fmt.Println(table.GetText())
//	}
//
// With configuration:
//
//	cfg := config.DefaultConfig()
//	cfg.ClusterEps = 75
//	result, err := scantab.New(cfg).Reconstruct(fragments)
//
// A Pipeline holds no per-run state: one Pipeline may serve any number of
// concurrent document runs over the same immutable configuration.
package scantab

import (
	"github.com/tsawler/scantab/config"
	"github.com/tsawler/scantab/model"
)

// Reconstruct runs the full reconstruction pipeline over fragments with the
// default configuration.
func Reconstruct(fragments []model.TextFragment) (*Result, error) {
	return New(config.DefaultConfig()).Reconstruct(fragments)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	result := scantab.Must(scantab.Reconstruct(fragments))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
