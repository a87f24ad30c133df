package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kakkky/cnsole/analyzer"
	"github.com/kakkky/cnsole/completer"
	"github.com/kakkky/cnsole/config"
	"github.com/kakkky/cnsole/console"
	"github.com/kakkky/cnsole/errs"
	"github.com/kakkky/cnsole/repl"
	"github.com/kakkky/cnsole/version"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		errs.HandleError(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var configFile string

	cmd := &cobra.Command{
		Use:           "cnsole",
		Short:         "Interactive console for the C programming language",
		Long:          "cnsole compiles each line of C you type into a shared object, loads it into the running process and prints the value of expressions.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.VERSION,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v, configFile)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.SetVersionTemplate(version.String() + "\n")

	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", "", "path to the config file")
	flags.String(config.KeyCC, "", "C compiler used to build each input")
	flags.String(config.KeyClang, "", "clang used to analyze each input")
	flags.String(config.KeyStd, "", "C language standard (e.g. gnu99, c11)")
	flags.StringSlice(config.KeyCFlags, nil, "extra flags passed to the compiler and clang")
	flags.StringSlice(config.KeyLibs, nil, "libraries each module is linked against")
	flags.String(config.KeyLibc, "", "C library used to flush stdio after each statement")
	flags.String(config.KeyReader, "", "line reader (prompt, liner or stdio)")
	flags.String(config.KeyHistory, "", "history file used by the liner reader")
	flags.Bool(config.KeyDebug, false, "print debug logs to stderr")
	for _, key := range []string{
		config.KeyCC, config.KeyClang, config.KeyStd, config.KeyCFlags, config.KeyLibs,
		config.KeyLibc, config.KeyReader, config.KeyHistory, config.KeyDebug,
	} {
		_ = v.BindPFlag(key, flags.Lookup(key))
	}
	return cmd
}

func run(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) error {
	logger := slog.New(slog.DiscardHandler)
	if cfg.Debug {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	clangVersion, err := analyzer.NewClangAnalyzer(cfg.Clang, cfg.Std, cfg.CFlags, logger).CheckVersion(ctx)
	if err != nil {
		return err
	}
	logger.Debug("clang found", "version", clangVersion)

	// 端末に繋がっていなければ行単位で読む
	if f, ok := in.(*os.File); ok && !isatty.IsTerminal(f.Fd()) {
		cfg.Reader = config.ReaderStdio
	}

	c, err := console.New(cfg, out, logger)
	if err != nil {
		return err
	}
	onInterrupt := func() {
		if err := c.Close(); err != nil {
			errs.HandleError(err)
		}
		os.Exit(0)
	}
	reader, err := repl.NewReader(cfg.Reader, cfg.History, completer.NewCompleter(c), in, out, onInterrupt)
	if err != nil {
		return err
	}

	if cfg.Reader != config.ReaderStdio {
		repl.PrintBanner(out)
	}
	return repl.NewRepl(c, reader, out).Run(ctx)
}
