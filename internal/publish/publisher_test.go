package publish

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medgate/internal/ehr/models"
	"medgate/internal/platform/kafka/producer"
	domainerrors "medgate/pkg/domain-errors"
)

type capturingProducer struct {
	records []*producer.Message
	err     error
}

func (c *capturingProducer) Produce(_ context.Context, msg *producer.Message) error {
	if c.err != nil {
		return c.err
	}
	c.records = append(c.records, msg)
	return nil
}

func TestPublishWrapsVendorPayloadVerbatim(t *testing.T) {
	cp := &capturingProducer{}
	pub := New("medgate.resources", cp)

	raw := json.RawMessage(`{"id":"PatientFHIRID1","resourceType":"Patient"}`)
	err := pub.Publish(context.Background(), []QueueMessage{
		{ResourceType: models.ResourcePatient, Tenant: "epic", Payload: raw},
	})
	require.NoError(t, err)
	require.Len(t, cp.records, 1)

	record := cp.records[0]
	assert.Equal(t, "medgate.resources", record.Topic)
	assert.Equal(t, "Patient", record.Headers["resource-type"])
	assert.Equal(t, "epic", record.Headers["tenant"])
	assert.NotEmpty(t, record.Key)

	var env envelope
	require.NoError(t, json.Unmarshal(record.Value, &env))
	assert.Equal(t, models.ResourcePatient, env.ResourceType)
	assert.Equal(t, "epic", env.Tenant)
	assert.JSONEq(t, string(raw), string(env.Payload))
}

func TestPublishOneRecordPerMessage(t *testing.T) {
	cp := &capturingProducer{}
	pub := New("medgate.resources", cp)

	err := pub.Publish(context.Background(), []QueueMessage{
		{ResourceType: models.ResourceCondition, Tenant: "epic", Payload: json.RawMessage(`{"id":"c1"}`)},
		{ResourceType: models.ResourceCondition, Tenant: "epic", Payload: json.RawMessage(`{"id":"c2"}`)},
	})
	require.NoError(t, err)
	assert.Len(t, cp.records, 2)
}

func TestPublishFailureCarriesCode(t *testing.T) {
	cp := &capturingProducer{err: errors.New("broker unreachable")}
	pub := New("medgate.resources", cp)

	err := pub.Publish(context.Background(), []QueueMessage{
		{ResourceType: models.ResourcePatient, Tenant: "epic", Payload: json.RawMessage(`{}`)},
	})
	require.Error(t, err)
	assert.True(t, domainerrors.HasCode(err, domainerrors.CodePublishFailure))
}
