// Package chart renders word-frequency visualizations.
//
// Three charts are available:
//   - Bar: one vertical bar per word for the most frequent words
//   - WordCloud: words drawn with a font size proportional to their count
//   - Distribution: histogram of how many words occur k times
//
// Charts are built with go-hep's hplot on top of gonum/plot and written with
// Render, which picks the image format from the file extension. Viewer
// renders a chart into a cache directory and opens it with the system image
// viewer, which is how charts are "displayed" when no output path is given.
package chart
