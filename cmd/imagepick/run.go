package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/imagepick/internal/infrastructure/transport"
)

func newRunCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the picker with the host on stdin and stdout",
		Long: `Run the picker with the host on stdin and stdout. Each stdin line is a
render message; component values and frame heights are written to stdout.
The grid is drawn on the controlling terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStdio(cmd, app)
		},
	}

	return cmd
}

func runStdio(cmd *cobra.Command, app *AppContext) error {
	if err := app.Setup(cmd, logToFile); err != nil {
		return err
	}
	ctx, logger := app.CommandContext(cmd, "command.run")

	tty, err := openTerminal()
	if err != nil {
		logger.Error(ctx, "terminal unavailable", "error", err)
		return err
	}
	defer tty.Close()

	source := transport.NewLineSource(cmd.InOrStdin(), logger)
	p, err := newPicker(ctx, app.Settings, logger, source, cmd.OutOrStdout(), tea.WithInput(tty), tea.WithOutput(tty))
	if err != nil {
		return err
	}
	if err := p.Run(ctx); err != nil {
		logger.Error(ctx, "run command failed", "error", err)
		return err
	}
	return nil
}
