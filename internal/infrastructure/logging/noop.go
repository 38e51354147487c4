package logging

import (
	"context"

	"github.com/alexisbeaulieu97/imagepick/internal/ports"
)

// NoOpLogger discards everything. The zero value is ready to use.
type NoOpLogger struct{}

var _ ports.Logger = NoOpLogger{}

func (NoOpLogger) Debug(context.Context, string, ...interface{}) {}
func (NoOpLogger) Info(context.Context, string, ...interface{})  {}
func (NoOpLogger) Warn(context.Context, string, ...interface{})  {}
func (NoOpLogger) Error(context.Context, string, ...interface{}) {}

func (n NoOpLogger) With(...interface{}) ports.Logger { return n }

// NewNoOpLogger returns a logger that discards all entries.
func NewNoOpLogger() ports.Logger {
	return NoOpLogger{}
}

// OrNoOp returns logger, or a discarding logger when it is nil. Constructors
// use it so a nil logger in options is always valid.
func OrNoOp(logger ports.Logger) ports.Logger {
	if logger == nil {
		return NoOpLogger{}
	}
	return logger
}
