// Package log is a thin leveled-logging facade over logrus. The CLI wires
// the --log-level flag through Init; everything below warn stays quiet by
// default so command output is not interleaved with log lines.
package log

import (
	"os"

	"github.com/sirupsen/logrus"
)

var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.WarnLevel)
	return l
}

// Init sets the level from its string name (debug, info, warn, error).
// An empty level keeps the default.
func Init(level string) error {
	if level == "" {
		return nil
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	logger.SetLevel(parsed)
	return nil
}

// Fields attaches structured context to a log line.
type Fields = logrus.Fields

func Debug(msg string, fields ...Fields) { entry(fields).Debug(msg) }
func Info(msg string, fields ...Fields)  { entry(fields).Info(msg) }
func Warn(msg string, fields ...Fields)  { entry(fields).Warn(msg) }

// Error logs msg with the error attached.
func Error(msg string, err error, fields ...Fields) {
	e := entry(fields)
	if err != nil {
		e = e.WithError(err)
	}
	e.Error(msg)
}

func entry(fields []Fields) *logrus.Entry {
	merged := logrus.Fields{}
	for _, f := range fields {
		for k, v := range f {
			merged[k] = v
		}
	}
	return logger.WithFields(merged)
}
