// Package logging routes logrus output to a file so it does not interfere
// with the terminal UI.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// Setup points the standard logrus logger at path. The returned closer must
// be closed on exit. If path is empty, logging is discarded.
func Setup(path string, level log.Level) (io.Closer, error) {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
		DisableColors:   true,
	})
	log.SetLevel(level)

	if path == "" {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), fmt.Errorf("failed to create log directory: %w", err)
	}

	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), fmt.Errorf("could not open log file: %w", err)
	}
	log.SetOutput(logFile)
	return logFile, nil
}
