package notification

import (
	"context"

	"github.com/apache/pulsar-client-go/pulsar"

	"github.com/consensuslabs/pavilion-network/commentinfo/internal/logger"
)

// Sender is the part of pulsar.Producer the publisher depends on
type Sender interface {
	Send(ctx context.Context, msg *pulsar.ProducerMessage) (pulsar.MessageID, error)
	Close()
}

// Logger interface for logging operations
type Logger = logger.Logger
