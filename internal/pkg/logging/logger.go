package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Logger *logrus.Logger

// LogConfig represents logging configuration
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // json, text, simple, or compact
	File   string `yaml:"file"`   // rotated log file; stdout when empty
}

// Keys rendered as bracketed prefixes by CompactFormatter.
const (
	fieldComponent = "component"
	fieldService   = "service"
)

// CompactFormatter implements a custom formatter for compact logging
type CompactFormatter struct {
	ShowTime bool
}

// Format renders a single log entry
func (f *CompactFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b *bytes.Buffer
	if entry.Buffer != nil {
		b = entry.Buffer
	} else {
		b = &bytes.Buffer{}
	}

	if f.ShowTime {
		fmt.Fprintf(b, "[%s]", entry.Time.Format("15:04:05"))
	}

	fmt.Fprintf(b, "[%s]", strings.ToUpper(entry.Level.String()))

	if component, ok := entry.Data[fieldComponent]; ok {
		fmt.Fprintf(b, "[%s]", component)
	}
	if service, ok := entry.Data[fieldService]; ok {
		fmt.Fprintf(b, "[%s]", service)
	}

	b.WriteString(" ")
	b.WriteString(entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		if k != fieldComponent && k != fieldService {
			keys = append(keys, k)
		}
	}

	if len(keys) > 0 {
		sort.Strings(keys)

		b.WriteString(" (")
		for i, key := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(b, "%s=%v", key, entry.Data[key])
		}
		b.WriteString(")")
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

// InitLogger initializes the global logger with the provided configuration
func InitLogger(config LogConfig) {
	Logger = logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		// Default to info if invalid level
		level = logrus.InfoLevel
		Logger.Warnf("Invalid log level '%s', defaulting to 'info'", config.Level)
	}
	Logger.SetLevel(level)

	switch strings.ToLower(config.Format) {
	case "json":
		Logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	case "simple":
		Logger.SetFormatter(&CompactFormatter{ShowTime: false})
	case "compact":
		Logger.SetFormatter(&CompactFormatter{ShowTime: true})
	case "text", "":
		Logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	default:
		Logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
		Logger.Warnf("Invalid log format '%s', defaulting to 'text'", config.Format)
	}

	Logger.SetOutput(output(config))

	Logger.Debugf("Logger initialized with level: %s, format: %s", level.String(), config.Format)
}

// output returns stdout, or a rotating file writer when a log file is set.
// A menu-bar app has no terminal, so the tray command always logs to a file.
func output(config LogConfig) io.Writer {
	if config.File == "" {
		return os.Stdout
	}

	return &lumberjack.Logger{
		Filename:   config.File,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}
}

// GetLogger returns the global logger instance
func GetLogger() *logrus.Logger {
	if Logger == nil {
		// Initialize with default config if not already initialized
		InitLogger(LogConfig{
			Level:  "info",
			Format: "text",
		})
	}
	return Logger
}

// Helper functions for common logging patterns
func WithComponent(component string) *logrus.Entry {
	return GetLogger().WithField(fieldComponent, component)
}

func WithService(service string) *logrus.Entry {
	return GetLogger().WithField(fieldService, service)
}

func WithComponentAndService(component, service string) *logrus.Entry {
	return GetLogger().WithFields(logrus.Fields{
		fieldComponent: component,
		fieldService:   service,
	})
}

func WithError(err error) *logrus.Entry {
	return GetLogger().WithError(err)
}
