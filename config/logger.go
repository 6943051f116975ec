package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the service-wide logrus instance.
func NewLogger() *logrus.Logger {
	log := logrus.New()

	// Set formatter to JSON
	log.SetFormatter(&logrus.JSONFormatter{})

	// Set output to stdout (default)
	log.SetOutput(os.Stdout)

	level := logrus.InfoLevel
	if lvl, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		level = lvl
	}
	log.SetLevel(level)

	return log
}
