// Package pipeline runs the stages of a word-frequency analysis in sequence.
//
// A run reads one file, counts and ranks its words, then hands the ranked
// list to any number of exporters and charts. Each stage is a Step that
// receives the shared model.Analysis and adds its own results to it.
//
// Steps fail the run only for problems that make the remaining output
// meaningless: an unreadable input or an export that could not be written.
// Optional features such as charts record a skip in the analysis and let
// the run continue.
package pipeline
