package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
)

const (
	logDir      = "logs"
	logFileName = "debug.log"
)

// setupLogging routes the standard logger to a file when debug is enabled
// and discards it otherwise. Log writes must never reach the raw-mode
// screen. Returns the open log file, or nil when logging is disabled or
// the file cannot be created (logging is never a reason to fail startup).
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.Println("debug logging enabled")
	return f
}
