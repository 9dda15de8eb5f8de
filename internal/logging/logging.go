package logging

import (
	"fmt"

	"github.com/wb-go/wbf/logger"
)

// New initializes the structured logger used for service and lifecycle
// events. HTTP access logging stays on the gin middleware; this logger
// covers everything behind the handlers.
func New(engine, level string, isProduction bool) (logger.Logger, error) {
	mode := "debug"
	if isProduction {
		mode = "release"
	}

	log, err := logger.InitLogger(
		logger.Engine(engine),
		"shoseki-backend",
		mode,
		logger.WithLevel(parseLevel(level)),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	return log, nil
}

func parseLevel(level string) logger.Level {
	switch level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}
