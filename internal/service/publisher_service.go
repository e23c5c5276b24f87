package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"open-law-be/internal/dto"
	"open-law-be/pkg/events"
	pktNats "open-law-be/pkg/nats"
)

type IPublisherService interface {
	Publish(ctx context.Context, payload []byte) error
	PublishEntityEvent(ctx context.Context, msg *dto.EntityEventMessage) error
}

type publisherService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	eventPublisher *pktNats.Publisher // optional external mirror, nil when NATS is off
}

func NewPublisherService(
	pubSub *gochannel.GoChannel,
	topicName string,
	eventPublisher *pktNats.Publisher,
) IPublisherService {
	return &publisherService{
		pubSub:         pubSub,
		topicName:      topicName,
		eventPublisher: eventPublisher,
	}
}

func (s *publisherService) Publish(ctx context.Context, payload []byte) error {
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	return s.pubSub.Publish(s.topicName, msg)
}

func (s *publisherService) PublishEntityEvent(ctx context.Context, entityEvent *dto.EntityEventMessage) error {
	payload, err := json.Marshal(entityEvent)
	if err != nil {
		return err
	}
	if err := s.Publish(ctx, payload); err != nil {
		return err
	}

	if s.eventPublisher != nil {
		event := events.BaseEvent{
			Type: entityEvent.EventType,
			Data: map[string]interface{}{
				"entity_kind": entityEvent.EntityKind,
				"entity_ids":  entityEvent.EntityIds,
			},
			OccurredAt: time.Now(),
		}
		// Mirror failures must not fail the request.
		_ = s.eventPublisher.Publish(ctx, event)
	}
	return nil
}
