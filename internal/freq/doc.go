// Package freq turns raw text into ranked word counts.
//
// The work happens in three stages:
//   - Normalize lowercases the text and drops every rune outside [a-z0-9 ]
//   - Tokenize splits the normalized text on runs of whitespace
//   - Count tallies tokens in a single pass into an insertion-ordered Table
//
// Rank then orders the table by count, most frequent first. Words with the
// same count keep the order in which they first appeared, so the output is
// reproducible for identical input.
package freq
