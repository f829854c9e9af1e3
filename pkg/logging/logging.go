package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

var logFile *os.File

/*
Init configures the global charm logger. The terminal belongs to the UI while
vimnav runs, so output goes to the file at logFilePath, or nowhere when the
path is empty.
*/
func Init(logFilePath, level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	log.SetLevel(lvl)
	log.SetReportCaller(true)
	log.SetReportTimestamp(true)
	log.SetTimeFormat("2006-01-02 15:04:05.000000")

	if logFilePath == "" {
		log.SetOutput(io.Discard)
		return nil
	}

	if logFile, err = os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err != nil {
		return fmt.Errorf("failed to open log file %s: %w", logFilePath, err)
	}

	log.SetOutput(logFile)
	log.Info("logging initialized", "file", logFilePath, "level", lvl)
	return nil
}

// Close closes the log file and hands the logger back to stderr.
func Close() {
	if logFile != nil {
		log.Info("closing log file")
		logFile.Close()
		logFile = nil
	}

	log.SetOutput(os.Stderr)
}
