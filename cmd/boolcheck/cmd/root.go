// Package cmd implements the boolcheck command line.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/db47h/boolassign"
	"github.com/db47h/boolassign/internal/config"
	"github.com/db47h/boolassign/parser"
	"github.com/db47h/boolassign/report"
	"github.com/spf13/cobra"
)

// ErrRejected is returned when the input is rejected by the scanner or parser.
// The diagnostic has already been printed.
var ErrRejected = errors.New("input rejected")

type options struct {
	cfgFile   string
	envFile   string
	verbose   bool
	snippet   bool
	acceptEnd bool
}

// NewRootCommand returns the boolcheck root command.
func NewRootCommand() *cobra.Command {
	var o options

	root := &cobra.Command{
		Use:   "boolcheck [file]",
		Short: "Check boolean assignments",
		Long: `boolcheck scans and parses a file written in the boolean assignment
language, then reports the first scanner or parser error:

  Scanner Error: at line L char C
  Parser Error: <message> at line L char C

The input file defaults to the configured input (test.txt).`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := o.load(cmd)
			if err != nil {
				return err
			}
			if len(args) > 0 {
				cfg.Input = args[0]
			}
			return check(cmd.OutOrStdout(), cfg, log)
		},
	}

	root.PersistentFlags().StringVar(&o.cfgFile, "config", "", "config file (.yaml, .yml or .toml)")
	root.PersistentFlags().StringVar(&o.envFile, "env", ".env", "dotenv file, overridden by ENV_PATH")
	root.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "print parser trace")
	root.Flags().BoolVar(&o.snippet, "snippet", false, "show the offending source line")
	root.Flags().BoolVar(&o.acceptEnd, "accept-end", false, "accept the end of input after an operand")

	root.AddCommand(newTokensCommand(&o))
	root.AddCommand(newVersionCommand())
	return root
}

// Execute runs the root command.
func Execute() error {
	err := NewRootCommand().Execute()
	if err != nil && !errors.Is(err, ErrRejected) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

// load loads the configuration and sets up logging. Command line flags take
// precedence over configuration values.
func (o *options) load(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	if err := config.LoadDotEnv(o.envFile); err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load(o.cfgFile)
	if err != nil {
		return nil, nil, err
	}
	if cmd.Flags().Changed("snippet") {
		cfg.Snippet = o.snippet
	}
	if cmd.Flags().Changed("accept-end") {
		cfg.Grammar.AcceptEnd = o.acceptEnd
	}
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, nil, err
	}
	if o.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return cfg, log, nil
}

func check(out io.Writer, cfg *config.Config, log *slog.Logger) error {
	s, err := boolassign.Open(cfg.Input,
		parser.WithLogger(log),
		parser.AcceptEnd(cfg.Grammar.AcceptEnd))
	if err != nil {
		return err
	}
	defer s.Close()
	s.Snippet = cfg.Snippet

	log.Info("Parsing", "file", s.Name(), "accept_end", cfg.Grammar.AcceptEnd)
	if err := s.Run(); err != nil {
		fmt.Fprintln(out, s.Report(err))
		if _, ok := report.Position(err); ok {
			return ErrRejected
		}
		return err
	}
	fmt.Fprintf(out, "%s: OK\n", s.Name())
	return nil
}
