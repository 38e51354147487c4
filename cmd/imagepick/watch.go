package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/imagepick/internal/infrastructure/transport"
)

func newWatchCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch FILE",
		Short: "Render a snapshot file and re-render whenever it changes",
		Long: `Use a JSON file as the host. The file holds one render message (or bare
render arguments) and is re-rendered on every save. Component values are
printed to stdout as protocol lines, or logged when stdout is the terminal.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Setup(cmd, logToFile); err != nil {
				return err
			}
			ctx, logger := app.CommandContext(cmd, "command.watch")

			path := args[0]
			if info, err := os.Stat(path); err != nil {
				return fmt.Errorf("snapshot file: %w", err)
			} else if info.IsDir() {
				return fmt.Errorf("snapshot file %s is a directory", path)
			}

			tty, err := openTerminal()
			if err != nil {
				logger.Error(ctx, "terminal unavailable", "error", err)
				return err
			}
			defer tty.Close()

			var hostOut io.Writer = cmd.OutOrStdout()
			if isTerminal(hostOut) {
				hostOut = logLineWriter{ctx: ctx, logger: logger}
			}

			source := transport.NewFileSource(path, logger)
			p, err := newPicker(ctx, app.Settings, logger, source, hostOut, tea.WithInput(tty), tea.WithOutput(tty))
			if err != nil {
				return err
			}
			if err := p.Run(ctx); err != nil {
				logger.Error(ctx, "watch command failed", "error", err)
				return err
			}
			return nil
		},
	}

	return cmd
}
