package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

var Logger *logrus.Logger

// LogConfig represents logging configuration
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // json, text, simple, or compact

	// Output receives log lines. Nil means stderr, stdout is reserved for tool output.
	Output io.Writer `yaml:"-"`
}

// Formats lists the accepted values of LogConfig.Format.
var Formats = []string{"json", "text", "simple", "compact"}

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
		b.WriteString(fmt.Sprintf("[%s]", entry.Time.Format("15:04:05")))
	}

	level := strings.ToUpper(entry.Level.String())
	b.WriteString(fmt.Sprintf("[%s]", level))

	// Component and interface go in brackets ahead of the message
	component, hasComponent := entry.Data["component"]
	iface, hasInterface := entry.Data["interface"]

	if hasComponent {
		b.WriteString(fmt.Sprintf("[%s]", component))
	}
	if hasInterface {
		b.WriteString(fmt.Sprintf("[%q]", iface))
	}

	b.WriteString(" ")
	b.WriteString(entry.Message)

	remainingFields := make(map[string]interface{})
	for k, v := range entry.Data {
		if k != "component" && k != "interface" {
			remainingFields[k] = v
		}
	}

	if len(remainingFields) > 0 {
		b.WriteString(" (")

		// Sort fields for consistent output
		keys := make([]string, 0, len(remainingFields))
		for k := range remainingFields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for i, key := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(fmt.Sprintf("%s=%v", key, remainingFields[key]))
		}
		b.WriteString(")")
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

// InitLogger initializes the global logger with the provided configuration
func InitLogger(config LogConfig) {
	Logger = logrus.New()

	output := config.Output
	if output == nil {
		output = os.Stderr
	}
	Logger.SetOutput(output)

	validFormat := true
	switch strings.ToLower(config.Format) {
	case "json":
		Logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	case "simple", "":
		Logger.SetFormatter(&CompactFormatter{ShowTime: false})
	case "compact":
		Logger.SetFormatter(&CompactFormatter{ShowTime: true})
	case "text":
		Logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	default:
		Logger.SetFormatter(&CompactFormatter{ShowTime: false})
		validFormat = false
	}

	// Formatter must be in place before the warnings below.
	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.WarnLevel
	}
	Logger.SetLevel(level)

	if err != nil {
		Logger.Warnf("Invalid log level '%s', defaulting to 'warn'", config.Level)
	}
	if !validFormat {
		Logger.Warnf("Invalid log format '%s', defaulting to 'simple'", config.Format)
	}

	Logger.Debugf("Logger initialized with level: %s, format: %s", level.String(), config.Format)
}

// GetLogger returns the global logger instance
func GetLogger() *logrus.Logger {
	if Logger == nil {
		InitLogger(LogConfig{
			Level:  "warn",
			Format: "simple",
		})
	}
	return Logger
}

// Helper functions for common logging patterns
func WithComponent(component string) *logrus.Entry {
	return GetLogger().WithField("component", component)
}

func WithInterface(iface string) *logrus.Entry {
	return GetLogger().WithField("interface", iface)
}

func WithComponentAndInterface(component, iface string) *logrus.Entry {
	return GetLogger().WithFields(logrus.Fields{
		"component": component,
		"interface": iface,
	})
}

func WithError(err error) *logrus.Entry {
	return GetLogger().WithError(err)
}
