// Package config provides the run configuration for wordhist: input and
// output paths, chart settings and logging verbosity, together with the
// YAML file that can supply defaults for them.
package config
