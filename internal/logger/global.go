package logger

import (
	"os"
	"strings"
)

// globalLogger is the process-wide logger, configured from LOG_LEVEL and
// LOG_FORMAT at startup.
var globalLogger = newFromEnv()

func newFromEnv() *Logger {
	l := NewDefault()
	if level := parseLogLevel(os.Getenv("LOG_LEVEL")); level != -1 {
		l.SetLevel(level)
	}
	if format := parseLogFormat(os.Getenv("LOG_FORMAT")); format != -1 {
		l.SetFormat(format)
	}
	return l
}

// parseLogLevel parses a log level string, -1 when unrecognized
func parseLogLevel(level string) LogLevel {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "WARN", "WARNING":
		return WARN
	case "ERROR":
		return ERROR
	case "FATAL":
		return FATAL
	}
	return -1
}

// parseLogFormat parses a log format string, -1 when unrecognized
func parseLogFormat(format string) LogFormat {
	switch strings.ToLower(format) {
	case "json":
		return JSONFormat
	case "text":
		return TextFormat
	}
	return -1
}

// GetGlobalLogger returns the global logger instance
func GetGlobalLogger() *Logger {
	return globalLogger
}

// SetGlobalLogger sets the global logger instance
func SetGlobalLogger(logger *Logger) {
	globalLogger = logger
}

// Package-level convenience functions forwarding to the global logger.

func Debug(message string, fields ...map[string]interface{}) {
	globalLogger.Debug(message, fields...)
}

func Info(message string, fields ...map[string]interface{}) {
	globalLogger.Info(message, fields...)
}

func Warn(message string, fields ...map[string]interface{}) {
	globalLogger.Warn(message, fields...)
}

func Error(message string, err error, fields ...map[string]interface{}) {
	globalLogger.Error(message, err, fields...)
}

func Fatal(message string, err error, fields ...map[string]interface{}) {
	globalLogger.Fatal(message, err, fields...)
}

func Debugf(format string, args ...interface{}) {
	globalLogger.Debugf(format, args...)
}

func Infof(format string, args ...interface{}) {
	globalLogger.Infof(format, args...)
}

func Warnf(format string, args ...interface{}) {
	globalLogger.Warnf(format, args...)
}

func Errorf(format string, args ...interface{}) {
	globalLogger.Errorf(format, args...)
}

func Fatalf(format string, args ...interface{}) {
	globalLogger.Fatalf(format, args...)
}
