package infra

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/umalmyha/customer-relay/internal/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger builds logrus logger writing to stdout and, if configured, to rotated log file.
// Returned func closes log file.
func Logger(cfg config.LogCfg) (*logrus.Logger, func() error, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse log level - %w", err)
	}

	logger := logrus.New()
	logger.SetLevel(level)

	if cfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if cfg.File == "" {
		logger.SetOutput(os.Stdout)
		return logger, func() error { return nil }, nil
	}

	file := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
	}
	logger.SetOutput(io.MultiWriter(os.Stdout, file))

	return logger, file.Close, nil
}
