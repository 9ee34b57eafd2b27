package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. It is usable before Init with logrus defaults.
var Log = logrus.New()

// Init configures Log. Production gets JSON lines, everything else a readable text format.
func Init(level string, production bool) {
	Log.SetOutput(os.Stdout)

	if production {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		Log.Warnf("[Logger] Unknown LOG_LEVEL %q, falling back to info", level)
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)
}

// WithComponent tags entries with the emitting component.
func WithComponent(name string) *logrus.Entry {
	return Log.WithField("component", name)
}
