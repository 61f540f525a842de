// Package logging provides the small leveled logger the CLI and its
// collaborators use for run/error logging, independent of the human-
// readable result report. It is a thin wrapper around the standard log
// package — no third-party structured-logging library appears anywhere in
// the codebase this project grew from, so none is introduced here.
package logging

import (
	"log"
	"os"
)

// Logger is a level-prefixed wrapper around a *log.Logger.
type Logger struct {
	l       *log.Logger
	verbose bool
}

// New constructs a Logger writing to stderr. verbose gates Debugf output.
func New(verbose bool) *Logger {
	return &Logger{l: log.New(os.Stderr, "", log.LstdFlags), verbose: verbose}
}

func (lg *Logger) Info(msg string) {
	lg.l.Print("INFO  " + msg)
}

func (lg *Logger) Infof(format string, args ...interface{}) {
	lg.l.Printf("INFO  "+format, args...)
}

func (lg *Logger) Warn(msg string) {
	lg.l.Print("WARN  " + msg)
}

func (lg *Logger) Warnf(format string, args ...interface{}) {
	lg.l.Printf("WARN  "+format, args...)
}

func (lg *Logger) Error(msg string) {
	lg.l.Print("ERROR " + msg)
}

func (lg *Logger) Errorf(format string, args ...interface{}) {
	lg.l.Printf("ERROR "+format, args...)
}

func (lg *Logger) Debugf(format string, args ...interface{}) {
	if !lg.verbose {
		return
	}
	lg.l.Printf("DEBUG "+format, args...)
}
