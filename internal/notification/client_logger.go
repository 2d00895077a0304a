package notification

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// newClientLogger builds the logger handed to the pulsar client for its
// connection and producer internals
func newClientLogger(level string) (*logrus.Logger, error) {
	logger := logrus.New()

	logger.SetFormatter(&logrus.JSONFormatter{})

	if level == "" {
		level = "warn"
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid pulsar client log level: %w", err)
	}
	logger.SetLevel(parsed)

	return logger, nil
}
