package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harx-tools/harx/config"
	"github.com/harx-tools/harx/logger"
	"github.com/harx-tools/harx/ui"
)

// Version information set by goreleaser
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const (
	description = "List and extract response bodies captured in HAR files"
	homepage    = "https://github.com/harx-tools/harx"

	exitError = 1
)

var commandNames = []string{"list", "ls", "extract"}

// UsageError reports a missing or unrecognized command, or bad flags.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}

func errMissingCommand() error {
	return &UsageError{Msg: "expecting a command, one of: " + strings.Join(commandNames, ", ")}
}

// Execute runs harx against the process's standard streams and returns the
// exit status.
func Execute(ctx context.Context, args []string) int {
	return Run(ctx, args, os.Stdin, os.Stdout, os.Stderr)
}

// Run executes one invocation with explicit streams.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	ui.SetOutput(stderr)

	cfg := DefaultConfig()
	root := newRootCmd(&cfg)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var uerr *UsageError
	if errors.As(err, &uerr) {
		ui.ErrorMsg(uerr.Msg, nil, "Run 'harx --help' for usage")
		return exitError
	}
	ui.ErrorMsg("harx failed", err)
	return exitError
}

func newRootCmd(cfg *Config) *cobra.Command {
	root := &cobra.Command{
		Use:   "harx <command> [options] [input...]",
		Short: description,
		Long: description + `.

Inputs are HAR files, or "-" for standard input (the default).
Entries from all inputs are merged and ordered by start time.

Homepage: ` + homepage,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.SetLogger(logger.New(cmd.ErrOrStderr(), cfg.Verbose))
			if cfg.ShowVersion || cfg.ConfigFile == "" {
				return nil
			}
			f, err := config.Load(cfg.ConfigFile)
			if err != nil {
				return err
			}
			cfg.applyFile(f, cmd.Flags())
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.ShowVersion {
				return printVersion(cmd.OutOrStdout())
			}
			return errMissingCommand()
		},
	}

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &UsageError{Msg: err.Error()}
	})

	pf := root.PersistentFlags()
	pf.BoolVarP(&cfg.ShowVersion, "version", "v", false, "print the version and exit")
	pf.StringVar(&cfg.MimeType, "mimetype", "", `only use entries whose response MIME type matches, e.g. "image/*"`)
	pf.StringVar(&cfg.ConfigFile, "config", "", "read default options from a JSONC file")
	pf.BoolVar(&cfg.Verbose, "verbose", false, "log debug details to stderr")

	root.AddCommand(newListCmd(cfg), newExtractCmd(cfg))
	return root
}

func printVersion(w io.Writer) error {
	_, err := fmt.Fprintf(w, "harx %s (%s, %s)\n", version, commit, date)
	return err
}
