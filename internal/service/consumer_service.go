package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"open-law-be/internal/dto"
	"open-law-be/internal/entity"
	"open-law-be/internal/pkg/logger"
	"open-law-be/internal/repository/unitofwork"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the entity event topic into the audit log. Every
// mutation published by the services becomes one row.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		log:        log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.EntityEventMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("consumer", "failed to unmarshal entity event", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // malformed messages never become valid, drop them
		return
	}

	details := map[string]interface{}{
		"entity_kind": payload.EntityKind,
		"entity_ids":  payload.EntityIds,
	}
	if payload.ActorId != nil {
		details["actor_id"] = *payload.ActorId
	}
	for k, v := range payload.Details {
		details[k] = v
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	auditLog := &entity.AuditLog{
		EventType: payload.EventType,
		Details:   details,
		CreatedAt: time.Now(),
	}
	if err := uow.AuditLogRepository().Create(ctx, auditLog); err != nil {
		cs.log.Error("consumer", "failed to persist audit log", map[string]interface{}{
			"event_type": payload.EventType,
			"error":      err.Error(),
		})
		msg.Nack()
		return
	}

	cs.log.Info("consumer", "audit log recorded", map[string]interface{}{
		"event_type": payload.EventType,
		"audit_id":   auditLog.Id,
	})
	msg.Ack()
}
