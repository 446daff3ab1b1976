// Package cli implements the femto command line
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/riordanpawley/femto/internal/app"
	"github.com/riordanpawley/femto/internal/config"
	"github.com/riordanpawley/femto/internal/domain"
	"github.com/riordanpawley/femto/internal/log"
	"github.com/riordanpawley/femto/internal/services/editor"
	"github.com/riordanpawley/femto/internal/services/files"
	"github.com/riordanpawley/femto/internal/terminal"
)

var errTooManyArgs = errors.New("too many arguments")

// Runner starts the editor on path ("" for an untitled document)
type Runner func(cmd *cobra.Command, cfg *config.Config, path string) error

// NewRootCommand builds the femto command. run is called once the
// arguments and configuration have been resolved.
func NewRootCommand(run Runner) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "femto [FILE]",
		Short: "A very small terminal text editor",
		Long: `femto edits one plain text file at a time.

  ctrl+o  open a file      ctrl+s  save
  esc     cancel a prompt  ctrl+q  quit`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errTooManyArgs
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// past argument checking, failures are not usage errors
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true

			if err := config.Bind(v, cmd.Flags()); err != nil {
				return err
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}

			var path string
			if len(args) == 1 {
				path = args[0]
			}
			return run(cmd, cfg, path)
		},
	}

	config.RegisterFlags(cmd.Flags())
	return cmd
}

// RunEditor runs the interactive editor on the command's input and output
func RunEditor(cmd *cobra.Command, cfg *config.Config, path string) error {
	logger, cleanup, err := log.Setup(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	in, out := cmd.InOrStdin(), cmd.OutOrStdout()
	size, err := probe(in, out)
	if err != nil {
		logger.Error("terminal probe failed", "error", err)
		return err
	}

	ed := editor.NewService(files.NewOSService(logger), cfg.IdleLabel, logger)
	ed.Resize(size.Width, size.Height)
	if path != "" {
		// failures are shown in the status bar
		_ = ed.OpenInitial(path)
	}

	opts := []tea.ProgramOption{tea.WithInput(in), tea.WithOutput(out)}
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	logger.Info("starting editor", "path", path, "width", size.Width, "height", size.Height)
	p := tea.NewProgram(app.New(ed, cfg, logger), opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	logger.Info("editor exited", "path", ed.Path())
	return nil
}

func probe(in io.Reader, out io.Writer) (terminal.Size, error) {
	inFile, ok := in.(terminal.File)
	if !ok {
		return terminal.Size{}, &domain.TerminalError{Op: "input", Err: errors.New("not a file")}
	}
	outFile, ok := out.(terminal.File)
	if !ok {
		return terminal.Size{}, &domain.TerminalError{Op: "output", Err: errors.New("not a file")}
	}
	return terminal.Probe(inFile, outFile)
}

// Execute runs femto and returns the process exit status. Usage errors go
// to stdout together with the usage text; other errors go to stderr.
func Execute() int {
	cmd := NewRootCommand(RunEditor)
	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stdout)

	if err := cmd.Execute(); err != nil {
		if cmd.SilenceErrors {
			fmt.Fprintf(os.Stderr, "femto: %v\n", err)
		}
		return 1
	}
	return 0
}
