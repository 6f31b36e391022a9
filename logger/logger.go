package logger

import (
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/dsneed1234/slime-volleyball/config"
)

// New builds the process logger. With a log file configured, output is JSON
// through a rotating writer; otherwise human-readable text on stderr.
func New(cfg config.Log) *logrus.Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if cfg.File == "" {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		return log
	}

	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(&lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	})
	return log
}
