// Package logger builds the process logrus logger
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// FileName is the log file created under the log directory in debug mode
const FileName = "gamekit.log"

// Options selects level, format and sink
type Options struct {
	Level  string // logrus level name, invalid falls back to info
	Format string // "json" or "text"
	Debug  bool   // write to Dir/FileName instead of discarding
	Dir    string
}

// New builds a logger; the returned closer releases the log file and is never nil
// Without Debug, output is discarded because the terminal belongs to the game screen
func New(opts Options) (*logrus.Logger, io.Closer, error) {
	log := logrus.New()

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if strings.ToLower(opts.Format) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: true,
		})
	}

	if !opts.Debug {
		log.SetOutput(io.Discard)
		return log, io.NopCloser(nil), nil
	}

	dir := opts.Dir
	if dir == "" {
		dir = "logs"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, FileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return log, f, nil
}
