// Package export writes ranked word counts to output files.
//
// This package contains writers for different output formats:
//   - TextWriter: Fixed-width "<count> <word>" lines
//   - XLSXWriter: Excel workbook with a Word/Count header row
//   - CSVWriter: Comma separated Word/Count rows
//   - MarkdownWriter: Summary report with tables and a mermaid pie chart
//   - JSONWriter: Summary report for tool integration
//   - SummaryWriter: Human-readable console summary
//
// Writers work on an io.Writer and know nothing about files. The Write*
// helpers in file.go create the files and report failures as ErrWrite.
package export
