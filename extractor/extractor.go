// Package extractor writes captured response bodies beneath an output
// directory, one file per HAR entry.
package extractor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/harx-tools/harx/har"
	"github.com/harx-tools/harx/logger"
	"github.com/harx-tools/harx/pathmap"
)

const (
	defaultConcurrency = 10
	dirPerm            = 0o755
	filePerm           = 0o644
)

// Options configures extraction
type Options struct {
	OutDir      string
	Force       bool // overwrite existing files instead of failing
	Concurrency int
	Strategy    pathmap.Strategy
}

// DefaultOptions returns sensible defaults
func DefaultOptions() Options {
	return Options{
		OutDir:      ".",
		Concurrency: defaultConcurrency,
		Strategy:    pathmap.Default,
	}
}

// Target is an entry paired with its mapped relative path.
type Target struct {
	Entry har.Entry
	Path  string // slash-separated, relative to the output directory
	Err   error  // set when the URL could not be mapped
}

// EntryError reports a single entry that could not be extracted.
type EntryError struct {
	URL  string
	Path string
	Err  error
}

func (e *EntryError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("%s -> %s: %v", e.URL, e.Path, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

// Written records one file produced by Extract.
type Written struct {
	URL   string
	Path  string // full path on disk
	Bytes int
}

// Result is the outcome of an extraction run. Written and Failed keep the
// order of the entries passed in.
type Result struct {
	Written []Written
	Failed  []*EntryError
	Bytes   int64
}

// Err joins every entry failure, or returns nil.
func (r *Result) Err() error {
	if len(r.Failed) == 0 {
		return nil
	}
	errs := make([]error, len(r.Failed))
	for i, f := range r.Failed {
		errs[i] = f
	}
	return errors.Join(errs...)
}

// Plan maps every entry with strategy, keeping failures in place.
func Plan(entries []har.Entry, strategy pathmap.Strategy) []Target {
	if strategy == nil {
		strategy = pathmap.Default
	}
	targets := make([]Target, len(entries))
	for i, e := range entries {
		p, err := strategy(e.Request.URL)
		targets[i] = Target{Entry: e, Path: p, Err: err}
	}
	return targets
}

// Extract writes every entry and waits for all writes to settle. A failure
// on one entry never stops the others; the returned error joins all of them.
func Extract(ctx context.Context, entries []har.Entry, opts Options) (*Result, error) {
	if opts.Concurrency < 1 {
		opts.Concurrency = defaultConcurrency
	}
	if opts.OutDir == "" {
		opts.OutDir = "."
	}

	targets := Plan(entries, opts.Strategy)
	written := make([]*Written, len(targets))
	failed := make([]*EntryError, len(targets))
	var total atomic.Int64

	logger.Debug("extracting entries", "count", len(targets), "outdir", opts.OutDir, "force", opts.Force, "concurrency", opts.Concurrency)

	var g errgroup.Group
	g.SetLimit(opts.Concurrency)

	for i, t := range targets {
		if t.Err != nil {
			failed[i] = &EntryError{URL: t.Entry.Request.URL, Err: t.Err}
			continue
		}

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				failed[i] = &EntryError{URL: t.Entry.Request.URL, Path: t.Path, Err: err}
				return nil
			}

			w, err := writeTarget(opts.OutDir, t, opts.Force)
			if err != nil {
				logger.Debug("failed to extract entry", "url", t.Entry.Request.URL, "path", t.Path, "error", err)
				failed[i] = &EntryError{URL: t.Entry.Request.URL, Path: t.Path, Err: err}
				return nil
			}

			total.Add(int64(w.Bytes))
			written[i] = &w
			return nil
		})
	}

	// Workers only ever return nil; errors are collected per entry.
	_ = g.Wait()

	res := &Result{Bytes: total.Load()}
	for i := range targets {
		if written[i] != nil {
			res.Written = append(res.Written, *written[i])
		}
		if failed[i] != nil {
			res.Failed = append(res.Failed, failed[i])
		}
	}
	return res, res.Err()
}

// writeTarget decodes the body and writes it, creating parent directories.
// Without force the file is created exclusively and an existing file yields
// an error wrapping fs.ErrExist.
func writeTarget(outDir string, t Target, force bool) (Written, error) {
	data, err := Body(t.Entry.Response.Content)
	if err != nil {
		return Written{}, err
	}

	dst := filepath.Join(outDir, filepath.FromSlash(t.Path))
	if err := os.MkdirAll(filepath.Dir(dst), dirPerm); err != nil {
		return Written{}, fmt.Errorf("failed to create directory: %w", err)
	}

	flag := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if force {
		flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}

	f, err := os.OpenFile(dst, flag, filePerm)
	if err != nil {
		return Written{}, err
	}

	n, err := f.Write(data)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return Written{}, fmt.Errorf("failed to write %s: %w", dst, err)
	}

	logger.Debug("wrote file", "url", t.Entry.Request.URL, "path", dst, "bytes", n, "overwrite", force)
	return Written{URL: t.Entry.Request.URL, Path: dst, Bytes: n}, nil
}
