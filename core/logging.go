package core

import (
	"os"

	"github.com/sirupsen/logrus"
)

// ConfigureLogging selects the logrus formatter and level. LOGRUS_FORMAT=json
// forces JSON output regardless of the config file.
func ConfigureLogging(cfg Config, debug bool) {
	logrus.SetFormatter(newLogFormatter(cfg))
	if debug {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
}

func newLogFormatter(cfg Config) logrus.Formatter {
	if cfg.JSONLogs || os.Getenv("LOGRUS_FORMAT") == "json" {
		return &logrus.JSONFormatter{}
	}
	return &logrus.TextFormatter{FullTimestamp: true}
}
