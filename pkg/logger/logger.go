package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New создает JSON-логгер с уровнем из конфигурации
func New(logLevel string) *logrus.Logger {
	log := logrus.New()

	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})

	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		// Уровень по умолчанию, если передан некорректный
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}
