package config

// File represents the structure of the .wordhist.yaml configuration file.
// Every field is optional; a nil field leaves the built-in default alone.
// Pointers distinguish "not set" from an empty string, which disables
// an export.
type File struct {
	// Input is the default input file.
	Input *string `yaml:"input,omitempty"`

	// Output holds the export destinations.
	Output OutputFile `yaml:"output,omitempty"`

	// Chart holds the visualization settings.
	Chart ChartFile `yaml:"chart,omitempty"`

	// Top is the number of words printed in the console summary.
	Top *int `yaml:"top,omitempty"`

	// Progress shows a progress bar while the input is read.
	Progress *bool `yaml:"progress,omitempty"`

	// Verbose enables debug logging.
	Verbose *bool `yaml:"verbose,omitempty"`
}

// OutputFile is the output section of the configuration file.
type OutputFile struct {
	Text     *string `yaml:"text,omitempty"`
	Excel    *string `yaml:"excel,omitempty"`
	Markdown *string `yaml:"markdown,omitempty"`
	JSON     *string `yaml:"json,omitempty"`
}

// ChartFile is the chart section of the configuration file.
type ChartFile struct {
	Limit            *int    `yaml:"limit,omitempty"`
	Title            *string `yaml:"title,omitempty"`
	NoPlot           *bool   `yaml:"noPlot,omitempty"`
	WordCloud        *bool   `yaml:"wordcloud,omitempty"`
	SavePlot         *string `yaml:"savePlot,omitempty"`
	SaveWordCloud    *string `yaml:"saveWordcloud,omitempty"`
	SaveDistribution *string `yaml:"saveDistribution,omitempty"`
}

// Apply copies every value set in f into c.
func (c *Config) Apply(f *File) {
	if f == nil {
		return
	}

	setString(&c.Input, f.Input)
	setString(&c.TextOutput, f.Output.Text)
	setString(&c.ExcelOutput, f.Output.Excel)
	setString(&c.MarkdownOutput, f.Output.Markdown)
	setString(&c.JSONOutput, f.Output.JSON)

	setInt(&c.Limit, f.Chart.Limit)
	setString(&c.Title, f.Chart.Title)
	setBool(&c.NoPlot, f.Chart.NoPlot)
	setBool(&c.WordCloud, f.Chart.WordCloud)
	setString(&c.SavePlot, f.Chart.SavePlot)
	setString(&c.SaveWordCloud, f.Chart.SaveWordCloud)
	setString(&c.SaveDistribution, f.Chart.SaveDistribution)

	setInt(&c.Top, f.Top)
	setBool(&c.Progress, f.Progress)
	setBool(&c.Verbose, f.Verbose)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
