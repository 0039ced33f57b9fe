// FILE: internal/service/notifier_service.go
package service

import (
	"context"
	"encoding/json"

	"salesdesk-be/internal/constant"
	"salesdesk-be/internal/dto"
	"salesdesk-be/internal/pkg/logger"
	"salesdesk-be/pkg/events"
	"salesdesk-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// NoticeDelivery is the push channel to connected clients. The websocket hub
// satisfies it; tests substitute a recorder.
type NoticeDelivery interface {
	Send(token string, notice dto.Notice)
}

type INotifierService interface {
	Consume(ctx context.Context) error
}

// notifierService bridges session events to clients: it subscribes to the
// in-process event topic, pushes an expiry notice over the websocket hub to
// the session that timed out, and mirrors every event to JetStream when a
// NATS publisher is configured.
type notifierService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	delivery  NoticeDelivery
	mirror    *nats.Publisher
	logger    logger.ILogger
}

func NewNotifierService(
	pubSub *gochannel.GoChannel,
	topicName string,
	delivery NoticeDelivery,
	mirror *nats.Publisher,
	log logger.ILogger,
) INotifierService {
	return &notifierService{
		pubSub:    pubSub,
		topicName: topicName,
		delivery:  delivery,
		mirror:    mirror,
		logger:    log,
	}
}

func (ns *notifierService) Consume(ctx context.Context) error {
	messages, err := ns.pubSub.Subscribe(ctx, ns.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			ns.processMessage(msg)
		}
	}()

	return nil
}

func (ns *notifierService) processMessage(msg *message.Message) {
	// Always ack: session events are fire-and-forget, retrying a malformed
	// payload would just loop.
	defer msg.Ack()

	var envelope dto.EventEnvelope
	if err := json.Unmarshal(msg.Payload, &envelope); err != nil {
		ns.logger.Error("NotifierService", "Failed to unmarshal event payload", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	if ns.mirror != nil {
		event := events.BaseEvent{
			Type:       envelope.Type,
			Data:       envelope.Payload,
			OccurredAt: envelope.OccurredAt,
		}
		if err := ns.mirror.Publish(context.Background(), event); err != nil {
			ns.logger.Warn("NotifierService", "Failed to mirror event to JetStream", map[string]interface{}{
				"type":  envelope.Type,
				"error": err.Error(),
			})
		}
	}

	if envelope.Type != events.TypeSessionExpired {
		return
	}

	token, _ := envelope.Payload["token"].(string)
	if token == "" {
		ns.logger.Warn("NotifierService", "Expiry event without token", nil)
		return
	}

	ns.delivery.Send(token, dto.Notice{
		Type:    constant.NoticeAutoLogout,
		Message: "You have been logged out due to inactivity.",
	})
}
