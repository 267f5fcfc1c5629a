package main

import (
	"fmt"
	"log"
	"os"

	"github.com/natefinch/lumberjack"
)

// LogConfig selects where log messages go. An empty Logfile logs to stderr.
type LogConfig struct {
	Logfile string
	MaxSize int `toml:"max_log_size"`
	MaxAge  int `toml:"max_log_age"`
}

type stdLogger struct {
	*lumberjack.Logger
}

var logger stdLogger

// SetLogger creates a logger that saves to a rotating log file.
func (c *LogConfig) SetLogger() {
	if c == nil || c.Logfile == "" {
		log.SetOutput(os.Stderr)
		return
	}
	l := &lumberjack.Logger{
		Filename: c.Logfile,
		MaxSize:  c.MaxSize, // megabytes
		MaxAge:   c.MaxAge,  // days
	}
	log.SetOutput(l)
	logger = stdLogger{l}
}

// Infof formats its arguments analogous to fmt.Printf and records the text as a log
// message at Info level.
func Infof(format string, args ...interface{}) {
	log.Printf(" INFO "+format, args...)
}

// Warningf is like Infof, but at Warning level.
func Warningf(format string, args ...interface{}) {
	log.Printf(" WARNING "+format, args...)
}

// Errorf is like Infof, but at Error level.
func Errorf(format string, args ...interface{}) {
	log.Printf(" ERROR "+format, args...)
}

// Shutdown closes the log file, if any, and restores stderr logging.
func Shutdown() {
	if logger.Logger != nil {
		if err := logger.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "closing log file: %v\n", err)
		}
		logger = stdLogger{}
	}
	log.SetOutput(os.Stderr)
}
