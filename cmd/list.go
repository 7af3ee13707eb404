package cmd

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/harx-tools/harx/har"
	"github.com/harx-tools/harx/pathmap"
	"github.com/harx-tools/harx/ui"
)

func newListCmd(cfg *Config) *cobra.Command {
	c := &cobra.Command{
		Use:     "list [input...]",
		Aliases: []string{"ls"},
		Short:   "Print the path each entry would be extracted to, in start-time order",
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.ShowVersion {
				return printVersion(cmd.OutOrStdout())
			}

			entries, err := loadEntries(cmd.Context(), cfg, args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			return writeList(cmd.OutOrStdout(), entries, cfg.URLs)
		},
	}

	c.Flags().BoolVar(&cfg.URLs, "urls", false, "print request URLs instead of mapped paths")
	return c
}

// writeList prints one line per entry. Entries whose URL cannot be mapped
// are reported on the diagnostics stream and fail the command once every
// other line has been printed.
func writeList(w io.Writer, entries []har.Entry, urls bool) error {
	bw := bufio.NewWriter(w)

	var unmapped int
	for _, e := range entries {
		line := e.Request.URL
		if !urls {
			p, err := pathmap.Default(e.Request.URL)
			if err != nil {
				unmapped++
				ui.WarnMsg(fmt.Sprintf("%s: %v", e.Request.URL, err))
				continue
			}
			line = p
		}
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return err
		}
	}

	if err := bw.Flush(); err != nil {
		return err
	}
	if unmapped > 0 {
		return fmt.Errorf("%d of %d entries could not be mapped to a path", unmapped, len(entries))
	}
	return nil
}
