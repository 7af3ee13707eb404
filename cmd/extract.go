package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/harx-tools/harx/extractor"
	"github.com/harx-tools/harx/har"
	"github.com/harx-tools/harx/pathmap"
	"github.com/harx-tools/harx/ui"
)

func newExtractCmd(cfg *Config) *cobra.Command {
	c := &cobra.Command{
		Use:   "extract [input...]",
		Short: "Write each entry's response body to a file derived from its URL",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.ShowVersion {
				return printVersion(cmd.OutOrStdout())
			}
			if cfg.Concurrency < 1 {
				return &UsageError{Msg: fmt.Sprintf("--concurrency must be at least 1, got %d", cfg.Concurrency)}
			}

			entries, err := loadEntries(cmd.Context(), cfg, args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				ui.WarnMsg("No entries to extract")
				return nil
			}

			if cfg.DryRun {
				return writePlan(cmd.OutOrStdout(), cfg.OutDir, entries)
			}
			return runExtract(cmd, cfg, entries)
		},
	}

	f := c.Flags()
	f.StringVar(&cfg.OutDir, "outdir", cfg.OutDir, "root directory for extracted files")
	f.BoolVar(&cfg.Force, "force", false, "overwrite files that already exist")
	f.BoolVar(&cfg.DryRun, "dry-run", false, "show what would be written without writing")
	f.IntVar(&cfg.Concurrency, "concurrency", cfg.Concurrency, "maximum number of files written at once")
	return c
}

func runExtract(cmd *cobra.Command, cfg *Config, entries []har.Entry) error {
	start := time.Now()

	var res *extractor.Result
	var extractErr error
	err := ui.RunWithSpinner(fmt.Sprintf("Extracting %d entries...", len(entries)), func() error {
		res, extractErr = extractor.Extract(cmd.Context(), entries, cfg.extractOptions())
		return nil
	})
	if err != nil {
		return err
	}

	printSummary(res, cfg.OutDir, time.Since(start))
	if extractErr != nil {
		return fmt.Errorf("%d of %d entries failed", len(res.Failed), len(entries))
	}
	return nil
}

func printSummary(res *extractor.Result, outDir string, duration time.Duration) {
	if len(res.Written) > 0 {
		ui.SuccessMsg(fmt.Sprintf("Wrote %d files (%s) to %s in %s",
			len(res.Written), ui.FormatBytes(res.Bytes), ui.Primary.Render(outDir), ui.FormatDuration(duration)))
	}
	if len(res.Failed) == 0 {
		return
	}

	ui.WarnMsg(fmt.Sprintf("%d entries could not be extracted:", len(res.Failed)))
	for _, f := range res.Failed {
		ui.Detail(f.Error())
	}
	for _, f := range res.Failed {
		if errors.Is(f, fs.ErrExist) {
			ui.Detail(ui.Dim.Render("Hint: use --force to overwrite existing files"))
			break
		}
	}
}

// writePlan prints "URL -> path" for each entry without touching the disk.
func writePlan(w io.Writer, outDir string, entries []har.Entry) error {
	bw := bufio.NewWriter(w)
	for _, t := range extractor.Plan(entries, pathmap.Default) {
		if t.Err != nil {
			fmt.Fprintf(bw, "%s -> (skipped: %v)\n", t.Entry.Request.URL, t.Err)
			continue
		}
		fmt.Fprintf(bw, "%s -> %s\n", t.Entry.Request.URL, filepath.Join(outDir, filepath.FromSlash(t.Path)))
	}
	return bw.Flush()
}
