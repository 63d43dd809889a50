package dbmigrate

import (
	"fmt"
	"log/slog"

	"github.com/datakeep/communities-service/internal/shared/logging"
)

// Logger adapts our slog logger to golang-migrate's Logger interface.
type Logger struct {
	wrapped *slog.Logger
	verbose bool
}

func NewLogger(verbose bool) *Logger {
	return &Logger{
		wrapped: logging.Default.With(slog.String("type", "dbmigrate.Logger")),
		verbose: verbose,
	}
}

func (l *Logger) Printf(format string, v ...any) {
	l.wrapped.Info(fmt.Sprintf(trimNewline(format), v...))
}

func (l *Logger) Verbose() bool {
	return l.verbose
}

func trimNewline(format string) string {
	if len(format) > 0 && format[len(format)-1] == '\n' {
		return format[:len(format)-1]
	}
	return format
}
