package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls log level and optional rotating file output.
type Options struct {
	Level   string
	Path    string // empty disables file output
	MaxMB   int
	MaxAge  int // days
	Backups int
}

// Setup configures the global logrus logger and returns it. When Path is set,
// output goes to stdout and a size-rotated file.
func Setup(opts Options) *logrus.Logger {
	log := logrus.StandardLogger()

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if opts.Path != "" {
		_ = os.MkdirAll(filepath.Dir(opts.Path), 0o755)
		rotated := &lumberjack.Logger{
			Filename:   opts.Path,
			MaxSize:    opts.MaxMB,
			MaxAge:     opts.MaxAge,
			MaxBackups: opts.Backups,
			Compress:   true,
		}
		log.SetOutput(io.MultiWriter(os.Stdout, rotated))
	}

	return log
}
