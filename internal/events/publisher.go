package events

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"inapp-server/internal/clients/kafka"
	"inapp-server/internal/observability"

	"github.com/google/uuid"
)

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

type eventProducer interface {
	PublishEvent(ctx context.Context, event kafka.EventMessage) error
}

// Publisher emits entity change events after a mutation has committed.
// Publishing is best effort: failures are logged and never returned to the
// caller, because the change they describe is already durable.
type Publisher struct {
	producer eventProducer
	logger   *observability.Logger
	now      func() time.Time
}

// NewPublisher creates a new event publisher. A nil producer disables
// publishing.
func NewPublisher(producer *kafka.Producer, logger *observability.Logger) *Publisher {
	if producer == nil {
		return newPublisher(nil, logger)
	}
	return newPublisher(producer, logger)
}

func newPublisher(producer eventProducer, logger *observability.Logger) *Publisher {
	return &Publisher{producer: producer, logger: logger, now: time.Now}
}

// Created publishes a <entity>.created event.
func (p *Publisher) Created(ctx context.Context, entity string, id int64, payload interface{}) {
	p.publish(ctx, entity, ActionCreated, id, payload)
}

// Updated publishes a <entity>.updated event.
func (p *Publisher) Updated(ctx context.Context, entity string, id int64, payload interface{}) {
	p.publish(ctx, entity, ActionUpdated, id, payload)
}

// Deleted publishes a <entity>.deleted event.
func (p *Publisher) Deleted(ctx context.Context, entity string, id int64, payload interface{}) {
	p.publish(ctx, entity, ActionDeleted, id, payload)
}

func (p *Publisher) publish(ctx context.Context, entity, action string, id int64, payload interface{}) {
	if p == nil || p.producer == nil {
		return
	}
	eventType := entity + "." + action
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "entity", Value: entity},
		observability.Field{Key: "entity_id", Value: id},
	)

	data, err := toData(payload)
	if err != nil {
		p.logger.Error(ctx, "failed to encode "+eventType+" event", err)
		return
	}

	event := kafka.EventMessage{
		ID:        uuid.New().String(),
		Type:      eventType,
		EntityID:  strconv.FormatInt(id, 10),
		Data:      data,
		Timestamp: p.now().UTC().Format(time.RFC3339),
	}
	if err := p.producer.PublishEvent(ctx, event); err != nil {
		p.logger.Error(ctx, "failed to publish "+eventType+" event", err)
	}
}

// toData flattens payload into the JSON object carried by the event.
func toData(payload interface{}) (map[string]interface{}, error) {
	if payload == nil {
		return nil, nil
	}
	if data, ok := payload.(map[string]interface{}); ok {
		return data, nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	var data map[string]interface{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return data, nil
}
