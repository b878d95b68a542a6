package log

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"quote-scraper/pkg/config"
)

// Setup builds the application logger. Events go to stdout and, when
// cfg.File is non-empty, to that file as well (opened append-mode so earlier
// runs stay inspectable). The returned closer flushes and closes the file
// copy; it is a no-op when no file is configured.
func Setup(cfg config.LogConfig) (*logrus.Logger, func() error, error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "15:04:05.000"})
	log.SetLevel(logrus.InfoLevel)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		log.Warnf("Invalid log level '%s', using default 'info'. Error: %v", cfg.Level, err)
	} else {
		log.SetLevel(level)
	}

	closer := func() error { return nil }

	if cfg.File != "" {
		file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file '%s': %w", cfg.File, err)
		}
		log.SetOutput(io.MultiWriter(os.Stdout, file))
		closer = func() error {
			if syncErr := file.Sync(); syncErr != nil {
				file.Close()
				return syncErr
			}
			return file.Close()
		}
	}

	return log, closer, nil
}
