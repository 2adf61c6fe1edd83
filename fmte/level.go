package fmte

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
)

// Level is the severity of a log line
type Level int8

const (
	LevelNotSet Level = iota
	LevelDebug
	LevelInfo
	LevelWarning
	LevelError
	LevelCritical
)

const timeLayout = "2006-01-02 15:04:05"

var level = LevelError

var levelNames = map[Level]string{
	LevelNotSet:   "NOTSET",
	LevelDebug:    "DEBUG",
	LevelInfo:     "INFO",
	LevelWarning:  "WARNING",
	LevelError:    "ERROR",
	LevelCritical: "CRITICAL",
}

var levelColors = map[Level]func(a ...any) string{
	LevelDebug:    color.New(color.FgHiBlack).SprintFunc(),
	LevelInfo:     color.New(color.FgCyan).SprintFunc(),
	LevelWarning:  color.New(color.FgYellow).SprintFunc(),
	LevelError:    color.New(color.FgRed).SprintFunc(),
	LevelCritical: color.New(color.FgRed, color.Bold).SprintFunc(),
}

// LevelNames lists accepted level names, most verbose last
func LevelNames() []string {
	return []string{"CRITICAL", "ERROR", "WARNING", "INFO", "DEBUG", "NOTSET"}
}

// ParseLevel converts a level name (case-insensitive) into a Level
func ParseLevel(name string) (Level, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for l, n := range levelNames {
		if n == upper {
			return l, nil
		}
	}
	return LevelError, fmt.Errorf("unknown logging level %q (expected one of %s)", name,
		strings.Join(LevelNames(), ", "))
}

// SetLevel sets the minimum level of log lines that get written
func SetLevel(l Level) {
	mx.Lock()
	level = l
	mx.Unlock()
}

func (l Level) String() string {
	return levelNames[l]
}

func logf(l Level, format string, a ...any) {
	mx.Lock()
	defer mx.Unlock()
	if l < level {
		return
	}
	name := l.String()
	if colorize, ok := levelColors[l]; ok {
		name = colorize(name)
	}
	_, _ = p.Fprintf(logOutput, "%s - %s - %s\n", time.Now().Format(timeLayout), name, p.Sprintf(format, a...))
}

// Debugf logs at DEBUG level
func Debugf(format string, a ...any) {
	logf(LevelDebug, format, a...)
}

// Infof logs at INFO level
func Infof(format string, a ...any) {
	logf(LevelInfo, format, a...)
}

// Warnf logs at WARNING level
func Warnf(format string, a ...any) {
	logf(LevelWarning, format, a...)
}

// LogErrorf logs at ERROR level. Unlike fmt.Errorf it returns nothing.
func LogErrorf(format string, a ...any) {
	logf(LevelError, format, a...)
}

// Criticalf logs at CRITICAL level
func Criticalf(format string, a ...any) {
	logf(LevelCritical, format, a...)
}
