package log

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cleitonmarx/symbiont/depend"
)

// NewLogger creates the application logger writing to "stdout" or "stderr".
func NewLogger(output string) (*log.Logger, error) {
	var w io.Writer
	switch output {
	case "", "stdout":
		w = os.Stdout
	case "stderr":
		w = os.Stderr
	default:
		return nil, fmt.Errorf("unsupported log output %q", output)
	}
	return log.New(w, "", log.LstdFlags|log.Lmsgprefix), nil
}

// InitLogger is the initializer for the logger dependency.
type InitLogger struct {
	Output string `config:"LOG_OUTPUT" default:"stdout"`
}

// Initialize registers the logger in the dependency container.
func (il InitLogger) Initialize(ctx context.Context) (context.Context, error) {
	logger, err := NewLogger(il.Output)
	if err != nil {
		return ctx, err
	}
	depend.Register(logger)
	return ctx, nil
}
