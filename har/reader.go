package har

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/harx-tools/harx/logger"
)

// StdinName is the operand that selects standard input.
const StdinName = "-"

// Source is the raw text of one input operand.
type Source struct {
	Name string
	Data []byte
}

// ReadSources reads every operand concurrently and returns them in operand
// order. No operands means standard input. stdin is read at most once; repeated
// "-" operands share its contents.
func ReadSources(ctx context.Context, names []string, stdin io.Reader) ([]Source, error) {
	if len(names) == 0 {
		names = []string{StdinName}
	}

	readStdin := sync.OnceValues(func() ([]byte, error) {
		if stdin == nil {
			return nil, nil
		}
		return io.ReadAll(stdin)
	})

	results := make([]Source, len(names))

	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			var data []byte
			var err error
			if name == StdinName {
				data, err = readStdin()
			} else {
				data, err = os.ReadFile(name)
			}
			if err != nil {
				logger.Debug("failed to read source", "source", name, "error", err)
				return fmt.Errorf("failed to read %s: %w", displayName(name), err)
			}

			logger.Debug("read source", "source", name, "bytes", len(data))
			results[i] = Source{Name: name, Data: data}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func displayName(name string) string {
	if name == StdinName {
		return "standard input"
	}
	return name
}
