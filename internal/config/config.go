package config

import (
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "wordhist"

	// DefaultInput is the file read when no input is given.
	DefaultInput = "text.txt"

	// DefaultTextOutput is the default path of the text export.
	DefaultTextOutput = "out.txt"

	// DefaultExcelOutput is the default path of the spreadsheet export.
	DefaultExcelOutput = "out.xlsx"

	// DefaultLimit is the number of words drawn in charts.
	DefaultLimit = 30

	// DefaultTop is the number of words printed in the console summary.
	DefaultTop = 10

	// DefaultTitle is the bar chart title.
	DefaultTitle = "Word Frequency Histogram"

	// wordCloudSuffix is appended to the bar chart file name to derive the
	// word cloud file name.
	wordCloudSuffix = "-wordcloud"
)

// Config holds all options for one run.
// It is populated from the config file and CLI flags and passed down
// explicitly rather than kept in global state.
type Config struct {
	// Input is the path of the text file to analyze.
	Input string

	// TextOutput is the path of the fixed-width text export.
	// Empty disables the export.
	TextOutput string

	// ExcelOutput is the path of the spreadsheet export (.xlsx or .csv).
	// Empty disables the export.
	ExcelOutput string

	// MarkdownOutput is the path of the markdown report. Empty disables it.
	MarkdownOutput string

	// JSONOutput is the path of the JSON report. Empty disables it.
	JSONOutput string

	// Limit is the number of words shown in the bar chart and word cloud.
	Limit int

	// Top is the number of words printed in the console summary.
	Top int

	// Title is the bar chart title.
	Title string

	// NoPlot disables the bar chart.
	NoPlot bool

	// WordCloud enables the word cloud.
	WordCloud bool

	// SavePlot saves the bar chart to this file instead of displaying it.
	SavePlot string

	// SaveWordCloud saves the word cloud to this file instead of
	// displaying it. See WordCloudPath for the default.
	SaveWordCloud string

	// SaveDistribution saves the count distribution histogram to this
	// file. Empty disables the chart.
	SaveDistribution string

	// Progress shows a progress bar while the input is read.
	Progress bool

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, FindConfigFile searches the default locations.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Input:       DefaultInput,
		TextOutput:  DefaultTextOutput,
		ExcelOutput: DefaultExcelOutput,
		Limit:       DefaultLimit,
		Top:         DefaultTop,
		Title:       DefaultTitle,
	}
}

// XDGConfigDir returns the XDG config directory for wordhist.
// On Linux: ~/.config/wordhist
// On macOS: ~/Library/Application Support/wordhist
// On Windows: %APPDATA%\wordhist
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// XDGCacheDir returns the XDG cache directory for wordhist.
// Charts that are displayed rather than saved are rendered here.
// On Linux: ~/.cache/wordhist
// On macOS: ~/Library/Caches/wordhist
// On Windows: %LOCALAPPDATA%\wordhist\cache
func XDGCacheDir() string {
	return filepath.Join(xdg.CacheHome, AppName)
}

// WordCloudPath returns the file the word cloud is saved to, or "" when
// it should be displayed.
//
// An explicit SaveWordCloud wins. Otherwise, when the bar chart is
// disabled the cloud takes over SavePlot, and when both charts are drawn
// the cloud is saved next to the bar chart as "<name>-wordcloud<ext>".
func (c *Config) WordCloudPath() string {
	switch {
	case c.SaveWordCloud != "":
		return c.SaveWordCloud
	case c.SavePlot == "":
		return ""
	case c.NoPlot:
		return c.SavePlot
	}

	ext := filepath.Ext(c.SavePlot)
	return strings.TrimSuffix(c.SavePlot, ext) + wordCloudSuffix + ext
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	if c.Input == "" {
		return ErrNoInput
	}

	if c.Limit <= 0 {
		return ErrInvalidLimit
	}

	if c.Top < 0 {
		return ErrInvalidTop
	}

	// Every chart that is saved needs its own file.
	seen := make(map[string]struct{})
	for _, path := range c.chartPaths() {
		if _, ok := seen[path]; ok {
			return ErrSamePlotPath
		}
		seen[path] = struct{}{}
	}

	return nil
}

// chartPaths returns the save paths of the enabled charts that are saved
// rather than displayed.
func (c *Config) chartPaths() []string {
	var paths []string
	if !c.NoPlot && c.SavePlot != "" {
		paths = append(paths, filepath.Clean(c.SavePlot))
	}
	if c.WordCloud {
		if p := c.WordCloudPath(); p != "" {
			paths = append(paths, filepath.Clean(p))
		}
	}
	if c.SaveDistribution != "" {
		paths = append(paths, filepath.Clean(c.SaveDistribution))
	}
	return paths
}
