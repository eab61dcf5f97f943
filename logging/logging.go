// Package logging routes the standard logger to a rotating debug file
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	Dir      = "logs"
	FileName = "bingo.log"
	MaxSize  = 10 * 1024 * 1024
)

// Setup routes the standard logger to logs/bingo.log when debug is set
// Otherwise log output is discarded so the terminal stays clean
// An oversized log is rotated to a timestamped file first
func Setup(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(Dir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(Dir, FileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > MaxSize {
		rotated := filepath.Join(Dir, fmt.Sprintf("bingo-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	return f
}
