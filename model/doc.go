// Package model provides the intermediate representation for reconstructed
// table content.
//
// This package defines the data structures that flow through the
// reconstruction pipeline: OCR text fragments going in, row-major tables
// coming out.
//
// # Fragments
//
// A [TextFragment] is one recognized span from an OCR engine: text, an
// axis-aligned [BBox] in page coordinates, and a confidence score. Fragments
// are immutable inputs; every downstream structure is derived from them.
//
// # Tables
//
// A reconstructed [Table] is an ordered list of [ColumnSpec] definitions plus
// rows of [Cell] values aligned to them. Each column carries the horizontal
// [Band] it claims and the [DataType] inferred for its values.
//
// # Geometry
//
// Geometric primitives support position and layout calculations:
//
//   - [BBox] - bounding box with union, intersection and containment
//   - [Point] - 2D point with distance calculation
//
// All coordinates are in image space: the origin is the page's top-left
// corner and Y grows downward, as reported by OCR engines working on
// rasterized pages.
package model
