package utils

import (
	"fmt"
	"log"
	"os"
	"time"
)

// Logger provides leveled, timestamped logging throughout the application.
type Logger struct {
	out    *log.Logger
	errOut *log.Logger
}

// NewLogger creates a new Logger writing to stdout/stderr.
func NewLogger() *Logger {
	return &Logger{
		out:    log.New(os.Stdout, "", 0),
		errOut: log.New(os.Stderr, "", 0),
	}
}

func (l *Logger) emit(dst *log.Logger, level, format string, args ...any) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	dst.Printf(fmt.Sprintf("[%s] %s %s\n", ts, level, format), args...)
}

func (l *Logger) Info(format string, args ...any) {
	l.emit(l.out, "\033[32mINFO\033[0m ", format, args...)
}

func (l *Logger) Warn(format string, args ...any) {
	l.emit(l.out, "\033[33mWARN\033[0m ", format, args...)
}

func (l *Logger) Error(format string, args ...any) {
	l.emit(l.errOut, "\033[31mERROR\033[0m", format, args...)
}

func (l *Logger) Debug(format string, args ...any) {
	l.emit(l.out, "\033[36mDEBUG\033[0m", format, args...)
}
