package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nao1215/wordhist/internal/config"
)

// NewRootCmd creates the root command for wordhist.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordhist [input-file]",
		Short: "Count word frequencies in a text file",
		Long: `wordhist reads a text file, counts how often each word occurs and writes
the counts, most frequent first, to a text file and a spreadsheet. It then
shows a bar chart of the most frequent words and, optionally, a word cloud.

Words are lowercased and everything except letters a-z, digits and spaces
is removed before splitting on whitespace. The input defaults to text.txt.

Examples:
  # Analyze text.txt with the default outputs (out.txt, out.xlsx)
  wordhist

  # Analyze a book and save the chart instead of displaying it
  wordhist book.txt --save-plot histogram.png

  # Export CSV only, no chart
  wordhist book.txt --text-output "" --excel-output counts.csv --no-plot

  # Bar chart and word cloud saved side by side
  wordhist book.txt --wordcloud --save-plot chart.png
  # -> chart.png and chart-wordcloud.png

Configuration file (.wordhist.yaml) example:
  output:
    excel: counts.csv
  chart:
    limit: 20
    wordcloud: true`,
		Version:       currentBuildInfo().displayVersion(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRootCmd,
	}
	cmd.SetVersionTemplate(appTitle + " {{.Version}}\n")

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Export flags
	cmd.Flags().String("text-output", config.DefaultTextOutput,
		`Text output file ("" disables)`)
	cmd.Flags().String("excel-output", config.DefaultExcelOutput,
		`Spreadsheet output file, .xlsx or .csv ("" disables)`)
	cmd.Flags().String("markdown-output", "",
		"Markdown report file")
	cmd.Flags().String("json-output", "",
		"JSON report file")

	// Visualization flags
	cmd.Flags().IntP("limit", "l", config.DefaultLimit,
		"Number of words shown in the histogram and word cloud")
	cmd.Flags().String("title", config.DefaultTitle,
		"Histogram title")
	cmd.Flags().Bool("no-plot", false,
		"Do not display the histogram")
	cmd.Flags().Bool("wordcloud", false,
		"Generate a word cloud visualization")
	cmd.Flags().String("save-plot", "",
		"Save the histogram to a file (png, svg, pdf, jpg, eps, tif) instead of displaying it")
	cmd.Flags().String("save-wordcloud", "",
		"Save the word cloud to a file (default: <save-plot name>-wordcloud<ext>)")
	cmd.Flags().String("save-distribution", "",
		"Save a histogram of how many words occur k times")

	// Console flags
	cmd.Flags().Int("top", config.DefaultTop,
		"Number of words printed in the summary (0 hides the table)")
	cmd.Flags().Bool("progress", false,
		"Show a progress bar while reading the input")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .wordhist.yaml in current, XDG config or home directory)")

	// Add subcommands
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
