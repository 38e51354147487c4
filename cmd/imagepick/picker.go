package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/imagepick/internal/config"
	"github.com/alexisbeaulieu97/imagepick/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/imagepick/internal/infrastructure/transport"
	"github.com/alexisbeaulieu97/imagepick/internal/ports"
	"github.com/alexisbeaulieu97/imagepick/internal/snapshot"
	"github.com/alexisbeaulieu97/imagepick/internal/tui"
	"github.com/alexisbeaulieu97/imagepick/internal/widget"
)

// picker is one assembled widget session.
type picker struct {
	widget  *widget.Widget
	program *tea.Program
	source  transport.Source
	logger  ports.Logger
}

func newPicker(ctx context.Context, settings *config.Settings, logger ports.Logger, source transport.Source, hostOut io.Writer, opts ...tea.ProgramOption) (*picker, error) {
	publisher := events.NewPublisher(logger)
	if _, err := publisher.Subscribe(ports.EventSelectionChanged, func(ctx context.Context, event ports.DomainEvent) error {
		fields, _ := event.Payload().(map[string]interface{})
		logger.Info(ctx, "selection committed", "row", fields["row"], "column", fields["column"])
		return nil
	}); err != nil {
		return nil, fmt.Errorf("subscribe to selection events: %w", err)
	}

	w := widget.New(widget.Options{
		Host:      transport.NewHost(hostOut, logger),
		Logger:    logger,
		Publisher: publisher,
	})
	renderer := tui.NewRenderer(tui.Options{
		CellWidth:       settings.Layout.CellWidth,
		RowLabelWidth:   settings.Layout.RowLabelWidth,
		MaxCaptionLines: settings.Layout.MaxCaptionLines,
	}, logger)
	model := tui.NewModel(ctx, tui.Config{
		Widget:    w,
		Validator: snapshot.NewValidator(logger, publisher),
		Renderer:  renderer,
		Logger:    logger,
		Mouse:     settings.Input.Mouse,
	})

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if settings.Input.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	if settings.Input.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	programOpts = append(programOpts, opts...)

	return &picker{
		widget:  w,
		program: tea.NewProgram(model, programOpts...),
		source:  source,
		logger:  logger,
	}, nil
}

// Run announces readiness, starts feeding host snapshots into the program
// and blocks until the user quits.
func (p *picker) Run(ctx context.Context) error {
	if err := p.widget.Start(ctx); err != nil {
		return fmt.Errorf("announce readiness: %w", err)
	}

	sourceCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		err := p.source.Run(sourceCtx, func(event transport.RenderEvent) {
			p.program.Send(tui.SnapshotMsg{Event: event})
		})
		p.program.Send(tui.SourceClosedMsg{Err: err})
	}()

	p.logger.Info(ctx, "picker started")
	if _, err := p.program.Run(); err != nil {
		return fmt.Errorf("run picker: %w", err)
	}
	p.logger.Info(ctx, "picker closed")
	return nil
}

// openTerminal opens the controlling terminal so the picker can draw while
// stdin and stdout carry the host protocol.
func openTerminal() (*os.File, error) {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("imagepick needs a terminal: %w", err)
	}
	if !term.IsTerminal(int(tty.Fd())) {
		tty.Close()
		return nil, fmt.Errorf("imagepick needs a terminal: /dev/tty is not a terminal")
	}
	return tty, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// logLineWriter sends protocol lines to the log when stdout is the terminal
// the picker draws on.
type logLineWriter struct {
	ctx    context.Context
	logger ports.Logger
}

func (w logLineWriter) Write(p []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		w.logger.Info(w.ctx, "host message", "line", line)
	}
	return len(p), nil
}
