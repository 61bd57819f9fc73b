// Package logger provides leveled, categorised logging with colored
// terminal output and a JSON file sink under the data directory.
package logger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
)

type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
	FATAL
)

type entry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Category  string `json:"category"`
	Message   string `json:"message"`
}

type Logger struct {
	file *os.File
}

// New creates a logger writing colored lines to stdout and JSON lines to
// <dir>/frameshop-<date>.log. A nil file sink (e.g. in tests) is fine.
func New(dir string) (*Logger, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	name := filepath.Join(dir, fmt.Sprintf("frameshop-%s.log", time.Now().Format("2006-01-02")))
	file, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return &Logger{file: file}, nil
}

func (l *Logger) log(level Level, category, message string) {
	e := entry{
		Timestamp: time.Now().UTC().Format("2006-01-02T15:04:05.000Z"),
		Level:     levelName(level),
		Category:  category,
		Message:   message,
	}

	fmt.Print(terminalLine(e))

	if l != nil && l.file != nil {
		if line, err := json.Marshal(e); err == nil {
			l.file.Write(append(line, '\n'))
		}
	}

	if level == FATAL {
		os.Exit(1)
	}
}

func terminalLine(e entry) string {
	var levelColor *color.Color
	switch e.Level {
	case "DEBUG":
		levelColor = color.New(color.FgCyan)
	case "INFO":
		levelColor = color.New(color.FgGreen)
	case "WARN":
		levelColor = color.New(color.FgYellow)
	case "ERROR", "FATAL":
		levelColor = color.New(color.FgRed)
	default:
		levelColor = color.New(color.FgWhite)
	}

	timeStr := color.New(color.FgBlue).Sprint(e.Timestamp[11:19])
	levelStr := levelColor.Sprintf("%-5s", e.Level)
	categoryStr := levelColor.Add(color.Bold).Sprintf("[%s]", e.Category)

	return fmt.Sprintf("%s %s %s %s\n", timeStr, levelStr, categoryStr, e.Message)
}

func levelName(level Level) string {
	switch level {
	case DEBUG:
		return "DEBUG"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	case FATAL:
		return "FATAL"
	default:
		return "INFO"
	}
}

func (l *Logger) Debug(category, format string, args ...interface{}) {
	l.log(DEBUG, category, fmt.Sprintf(format, args...))
}

func (l *Logger) Info(category, format string, args ...interface{}) {
	l.log(INFO, category, fmt.Sprintf(format, args...))
}

func (l *Logger) Warn(category, format string, args ...interface{}) {
	l.log(WARN, category, fmt.Sprintf(format, args...))
}

func (l *Logger) Error(category, format string, args ...interface{}) {
	l.log(ERROR, category, fmt.Sprintf(format, args...))
}

func (l *Logger) Fatal(category, format string, args ...interface{}) {
	l.log(FATAL, category, fmt.Sprintf(format, args...))
}

func (l *Logger) Close() {
	if l != nil && l.file != nil {
		l.file.Close()
	}
}
