package logging

import (
	"log/slog"
	"os"
)

// Default is the base logger for the service. Handlers add invocation-scoped
// context with With before passing it on.
var Default = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
	Level: Level(),
}))

const LogLevelKey = "LOG_LEVEL"

// Level reads the slog level from the LOG_LEVEL environment variable,
// defaulting to info if it is unset or unparsable.
func Level() slog.Level {
	levelStr, isSet := os.LookupEnv(LogLevelKey)
	if !isSet {
		return slog.LevelInfo
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelStr)); err != nil {
		return slog.LevelInfo
	}
	return level
}
