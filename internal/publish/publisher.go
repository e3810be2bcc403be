// Package publish adapts the Kafka producer into the gateway's best-effort
// downstream sink. Delivery is at-most-once with no retry; the sink feeds a
// search index, it is never authoritative, so callers swallow and log any
// failure instead of surfacing it.
package publish

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"medgate/internal/ehr/models"
	"medgate/internal/platform/kafka/producer"
	domainerrors "medgate/pkg/domain-errors"
)

//go:generate mockgen -source=publisher.go -destination=mocks/publisher_mock.go -package=mocks

// QueueMessage is one fetched resource headed for downstream indexing. The
// payload is the vendor's original untranslated body so the index sees the
// native shape.
type QueueMessage struct {
	ResourceType models.ResourceType
	Tenant       string
	Payload      json.RawMessage
}

// Producer is the slice of the Kafka producer the publisher needs.
type Producer interface {
	Produce(ctx context.Context, msg *producer.Message) error
}

// Publisher forwards queue messages to the configured topic.
type Publisher struct {
	topic    string
	producer Producer
}

// New constructs a Publisher writing to topic.
func New(topic string, p Producer) *Publisher {
	return &Publisher{topic: topic, producer: p}
}

type envelope struct {
	ResourceType models.ResourceType `json:"resourceType"`
	Tenant       string              `json:"tenant"`
	Payload      json.RawMessage     `json:"payload"`
}

// Publish sends one record per message, stopping at the first failure. The
// returned error carries the publish_failure code; nothing is retried.
func (p *Publisher) Publish(ctx context.Context, messages []QueueMessage) error {
	for _, msg := range messages {
		value, err := json.Marshal(envelope{
			ResourceType: msg.ResourceType,
			Tenant:       msg.Tenant,
			Payload:      msg.Payload,
		})
		if err != nil {
			return domainerrors.Wrap(err, domainerrors.CodePublishFailure,
				fmt.Sprintf("marshaling %s queue message", msg.ResourceType))
		}

		record := &producer.Message{
			Topic: p.topic,
			Key:   []byte(uuid.NewString()),
			Value: value,
			Headers: map[string]string{
				"resource-type": string(msg.ResourceType),
				"tenant":        msg.Tenant,
			},
		}
		if err := p.producer.Produce(ctx, record); err != nil {
			return domainerrors.Wrap(err, domainerrors.CodePublishFailure,
				fmt.Sprintf("publishing %s for tenant %s", msg.ResourceType, msg.Tenant))
		}
	}
	return nil
}
