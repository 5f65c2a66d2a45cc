package logger

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// LevelEnvVar overrides the default log level when no flag is given.
const LevelEnvVar = "FTREE_LOG_LEVEL"

// Logger is the process-wide logger. Components derive their own entry with
// Logger.WithField("logger", "<Component>").
var Logger = logrus.New()

func init() {
	Logger.SetOutput(os.Stderr)
	Logger.SetLevel(logrus.WarnLevel)
	Logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
}

// InitLogger sets the level from its name ("debug", "info", ...). An empty
// name falls back to $FTREE_LOG_LEVEL and then to "warn".
func InitLogger(level string) error {
	if level == "" {
		level = os.Getenv(LevelEnvVar)
	}
	if level == "" {
		level = "warn"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	Logger.SetLevel(lvl)
	return nil
}
