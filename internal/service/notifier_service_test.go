// FILE: internal/service/notifier_service_test.go
package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"salesdesk-be/internal/constant"
	"salesdesk-be/internal/dto"
	"salesdesk-be/internal/pkg/logger"
	"salesdesk-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingDelivery struct {
	mu      sync.Mutex
	notices map[string][]dto.Notice
}

func newRecordingDelivery() *recordingDelivery {
	return &recordingDelivery{notices: make(map[string][]dto.Notice)}
}

func (d *recordingDelivery) Send(token string, notice dto.Notice) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.notices[token] = append(d.notices[token], notice)
}

func (d *recordingDelivery) sent(token string) []dto.Notice {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]dto.Notice{}, d.notices[token]...)
}

func TestNotifierPushesExpiryNotice(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	delivery := newRecordingDelivery()
	notifier := NewNotifierService(pubSub, constant.TopicSessionEvents, delivery, nil, logger.NewNopLogger())
	require.NoError(t, notifier.Consume(context.Background()))

	publisher := NewPublisherService(constant.TopicSessionEvents, pubSub)
	require.NoError(t, publisher.Publish(context.Background(), events.NewSessionExpired("tok-123", "alice")))

	require.Eventually(t, func() bool {
		return len(delivery.sent("tok-123")) == 1
	}, time.Second, 10*time.Millisecond)

	notice := delivery.sent("tok-123")[0]
	assert.Equal(t, constant.NoticeAutoLogout, notice.Type)
	assert.NotEmpty(t, notice.Message)
}

func TestNotifierIgnoresOtherEvents(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	delivery := newRecordingDelivery()
	notifier := NewNotifierService(pubSub, constant.TopicSessionEvents, delivery, nil, logger.NewNopLogger())
	require.NoError(t, notifier.Consume(context.Background()))

	publisher := NewPublisherService(constant.TopicSessionEvents, pubSub)
	require.NoError(t, publisher.Publish(context.Background(), events.NewUserLogin("alice")))
	require.NoError(t, publisher.Publish(context.Background(), events.NewSessionExpired("tok-9", "alice")))

	require.Eventually(t, func() bool {
		return len(delivery.sent("tok-9")) == 1
	}, time.Second, 10*time.Millisecond)

	delivery.mu.Lock()
	total := len(delivery.notices)
	delivery.mu.Unlock()
	assert.Equal(t, 1, total, "login events must not produce notices")
}
