// Command md2docx converts a Markdown file into a Word .docx document.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dgallion1/md2docx/internal/config"
	"github.com/dgallion1/md2docx/internal/convert"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stderr).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// app carries state shared by the commands once configuration is loaded.
type app struct {
	cfg config.Config
	log *slog.Logger
}

func newRootCmd(logOut io.Writer) *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "md2docx [input [output]]",
		Short: "Convert a Markdown document to .docx",
		Long: `md2docx converts a Markdown file into a Word document, keeping headings,
bullet, checkbox and numbered lists, tables, code blocks, horizontal rules and
inline bold, italic and link emphasis.

With no arguments it reads PROJECT_PLAN.md and writes PROJECT_PLAN.docx in the
working directory. Settings come from md2docx.yaml (in . or ~/.config/md2docx)
and MD2DOCX_* environment variables.`,
		Args:         cobra.MaximumNArgs(2),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(logOut)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.convert(cmd, args)
		},
	}
	cmd.AddCommand(newOutlineCmd(a))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func (a *app) init(logOut io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	level, _ := cfg.Level()
	a.cfg = cfg
	a.log = slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{Level: level}))
	if cfg.File != "" {
		a.log.Debug("using config file", "path", cfg.File)
	}
	return nil
}

func (a *app) convert(cmd *cobra.Command, args []string) error {
	cfg := a.cfg
	if len(args) > 0 {
		cfg.Input = args[0]
		cfg.Output = ""
	}
	if len(args) > 1 {
		cfg.Output = args[1]
	}
	out := cfg.OutputPath()

	if _, err := convert.New(cfg, a.log).File(cmd.Context(), cfg.Input, out); err != nil {
		a.log.Error("conversion failed", "input", cfg.Input, "error", err)
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Word document created: %s\n", out)
	return nil
}
