package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/imagepick/internal/infrastructure/transport"
	"github.com/alexisbeaulieu97/imagepick/internal/snapshot"
	apperrors "github.com/alexisbeaulieu97/imagepick/pkg/errors"
)

type validateOptions struct {
	strict bool
}

func newValidateCmd(app *AppContext) *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate FILE",
		Short: "Normalize a snapshot file and report what would be rendered",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Setup(cmd, logToStderr); err != nil {
				return err
			}
			ctx, logger := app.CommandContext(cmd, "command.validate")

			event, err := transport.ReadFile(args[0])
			if err != nil {
				logger.Error(ctx, "snapshot file rejected", "path", args[0], "error", err)
				return err
			}

			snap := snapshot.NewValidator(logger, nil).Normalize(ctx, event.Merged())
			printSummary(cmd.OutOrStdout(), snap)

			if opts.strict && len(snap.Diagnostics) > 0 {
				return fmt.Errorf("%s: %d invalid image entries", args[0], len(snap.Diagnostics))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Fail when any image entry is invalid")

	return cmd
}

func printSummary(w io.Writer, snap snapshot.Snapshot) {
	fmt.Fprintf(w, "label: %q\n", snap.Label)
	fmt.Fprintf(w, "form: %s\n", snap.Form)
	fmt.Fprintf(w, "rows: %d\n", len(snap.Rows))
	fmt.Fprintf(w, "images: %d valid, %d invalid\n", snap.ImageCount(), len(snap.Diagnostics))

	if snap.Selection != nil {
		fmt.Fprintf(w, "selection: row %d, index %d\n", snap.Selection.Row, snap.Selection.Image)
	} else {
		fmt.Fprintln(w, "selection: none")
	}
	fmt.Fprintf(w, "disabled: %t\n", snap.Disabled)

	if snap.Theme != nil {
		fmt.Fprintf(w, "theme: %s\n", snap.Theme.Base)
	} else {
		fmt.Fprintln(w, "theme: none")
	}
	if snap.CustomCSS != nil {
		fmt.Fprintf(w, "custom css: %d bytes\n", len(*snap.CustomCSS))
	} else {
		fmt.Fprintln(w, "custom css: none")
	}

	if len(snap.Diagnostics) == 0 {
		return
	}
	fmt.Fprintln(w, "diagnostics:")
	for _, d := range snap.Diagnostics {
		field, message := fmt.Sprintf("row %d column %d", d.Row, d.Column), fmt.Sprint(d.Err)
		var verr *apperrors.ValidationError
		if errors.As(d.Err, &verr) {
			field, message = verr.Field, verr.Message
		}
		fmt.Fprintf(w, "  %s: %s (value %v)\n", field, message, d.Value)
	}
}
