// Package model defines the core data structures used throughout wordhist.
//
// This package contains the following main types:
//   - Entry: A single (word, count) pair
//   - RankedList: Entries ordered by count, most frequent first
//   - Analysis: The per-run record that flows through the pipeline
//   - Artifact: An output file produced by an exporter or chart
//
// The freq, export, chart and pipeline packages all share these types.
package model
