// FILE: internal/service/publisher_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"

	"salesdesk-be/internal/dto"
	"salesdesk-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IPublisherService interface {
	Publish(ctx context.Context, event events.Event) error
}

type publisherService struct {
	topic  string
	pubSub *gochannel.GoChannel
}

func NewPublisherService(topic string, pubSub *gochannel.GoChannel) IPublisherService {
	return &publisherService{
		topic:  topic,
		pubSub: pubSub,
	}
}

func (s *publisherService) Publish(_ context.Context, event events.Event) error {
	envelope := dto.EventEnvelope{
		Type:       event.EventType(),
		Payload:    event.Payload(),
		OccurredAt: event.Timestamp(),
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to marshal event envelope: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	msg.Metadata.Set("type", event.EventType())

	return s.pubSub.Publish(s.topic, msg)
}
