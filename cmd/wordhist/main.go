// Package main provides the entry point for the wordhist CLI.
//
// wordhist counts the words of a text file, exports the counts to text and
// spreadsheet files, and draws a histogram of the most frequent words.
//
// Usage:
//
//	wordhist [input-file] [flags]
//	wordhist init
//	wordhist version
//
// See --help for all available options.
package main

// main is the entry point for wordhist.
func main() {
	Execute()
}
