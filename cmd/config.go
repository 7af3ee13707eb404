package cmd

import (
	"github.com/spf13/pflag"

	"github.com/harx-tools/harx/config"
	"github.com/harx-tools/harx/extractor"
)

// Config is the parsed command line. Each invocation builds its own.
type Config struct {
	// Selection
	MimeType string

	// Extraction
	OutDir      string
	Force       bool
	DryRun      bool
	Concurrency int

	// Listing
	URLs bool

	// General
	ConfigFile  string
	Verbose     bool
	ShowVersion bool
}

// DefaultConfig returns the defaults used before flags and config files apply.
func DefaultConfig() Config {
	d := extractor.DefaultOptions()
	return Config{
		OutDir:      d.OutDir,
		Concurrency: d.Concurrency,
	}
}

// applyFile copies values from a config file into cfg for every flag the
// user did not set explicitly.
func (cfg *Config) applyFile(f config.File, flags *pflag.FlagSet) {
	if f.MimeType != nil && !flags.Changed("mimetype") {
		cfg.MimeType = *f.MimeType
	}
	if f.OutDir != nil && !flags.Changed("outdir") {
		cfg.OutDir = *f.OutDir
	}
	if f.Force != nil && !flags.Changed("force") {
		cfg.Force = *f.Force
	}
	if f.Concurrency != nil && !flags.Changed("concurrency") {
		cfg.Concurrency = *f.Concurrency
	}
}

func (cfg *Config) extractOptions() extractor.Options {
	opts := extractor.DefaultOptions()
	opts.OutDir = cfg.OutDir
	opts.Force = cfg.Force
	opts.Concurrency = cfg.Concurrency
	return opts
}
