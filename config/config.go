// Package config loads optional harx defaults from a JSONC file.
//
// Example:
//
//	{
//	  // only pull images
//	  "mimetype": "image/*",
//	  "outdir": "./assets",
//	  "concurrency": 4,
//	}
package config

import (
	"bytes"
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/tailscale/hujson"

	"github.com/harx-tools/harx/logger"
)

// File holds defaults read from a config file. Nil fields were not set.
type File struct {
	MimeType    *string `json:"mimetype,omitempty"`
	OutDir      *string `json:"outdir,omitempty"`
	Force       *bool   `json:"force,omitempty"`
	Concurrency *int    `json:"concurrency,omitempty"`
}

// Load reads and validates a config file. Comments and trailing commas are
// allowed; unknown keys are not.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("failed to read config file: %w", err)
	}

	f, err := Parse(data)
	if err != nil {
		return File{}, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	logger.Debug("loaded config", "path", path)
	return f, nil
}

// Parse decodes JSONC config data.
func Parse(data []byte) (File, error) {
	std, err := hujson.Standardize(data)
	if err != nil {
		return File{}, err
	}

	var f File
	dec := jsoniter.ConfigCompatibleWithStandardLibrary.NewDecoder(bytes.NewReader(std))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return File{}, err
	}

	if f.Concurrency != nil && *f.Concurrency < 1 {
		return File{}, fmt.Errorf("concurrency must be at least 1, got %d", *f.Concurrency)
	}
	if f.OutDir != nil && *f.OutDir == "" {
		return File{}, fmt.Errorf("outdir must not be empty")
	}
	return f, nil
}
