package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/vi-snake/constants"
)

// setupLogging routes the standard logger to logs/vi-snake.log when debug is set, and discards it otherwise
// The terminal owns stdout/stderr while the game runs, so logs never go there
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(constants.LogDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(constants.LogDir, constants.LogFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > constants.MaxLogSize {
		rotated := filepath.Join(constants.LogDir, fmt.Sprintf("vi-snake-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			// Rotation failure keeps appending to the oversized file
			fmt.Fprintf(os.Stderr, "log rotation failed: %v\n", err)
		}
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(logFile)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return logFile
}
