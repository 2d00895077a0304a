package notification

import (
	"encoding/json"
	"fmt"

	"github.com/apache/pulsar-client-go/pulsar"
)

// newProducerMessage serializes the event and keys it by comment id
func newProducerMessage(event *CommentInfoEvent) (*pulsar.ProducerMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize event: %w", err)
	}

	return &pulsar.ProducerMessage{
		Payload: data,
		Key:     event.CommentID.String(),
		Properties: map[string]string{
			"event_type": string(event.Type),
			"comment_id": event.CommentID.String(),
			"user_id":    event.UserID.String(),
			"owner_id":   event.OwnerID.String(),
		},
		EventTime: event.CreatedAt,
	}, nil
}
