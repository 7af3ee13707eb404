package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/harx-tools/harx/har"
	"github.com/harx-tools/harx/logger"
	"github.com/harx-tools/harx/mimetype"
	"github.com/harx-tools/harx/ui"
)

// loadEntries reads every input, then filters and orders the combined
// entries. Nothing is returned unless every input parsed.
func loadEntries(ctx context.Context, cfg *Config, inputs []string, stdin io.Reader) ([]har.Entry, error) {
	filter := mimetype.NewFilter(cfg.MimeType)
	if cfg.MimeType != "" && !filter.Active() {
		ui.WarnMsg(fmt.Sprintf("Ignoring unparsable --mimetype %q, all entries match", cfg.MimeType))
	}
	logger.Debug("mimetype filter", "pattern", filter.Pattern(), "active", filter.Active())

	sources, err := har.ReadSources(ctx, inputs, stdin)
	if err != nil {
		return nil, err
	}

	entries, err := har.Collate(sources, func(e har.Entry) bool {
		return filter.Match(e.Response.Content.MimeType)
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("collated entries", "sources", len(sources), "entries", len(entries))
	return entries, nil
}
