package service

import (
	"context"
	"encoding/json"
	"log"

	"support-chat-be/internal/pkg/mailer"
	"support-chat-be/internal/repository/contract"
	"support-chat-be/pkg/brand"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	brands       *brand.Registry
	leadRepo     contract.LeadRepository
	emailService mailer.IEmailService
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	brands *brand.Registry,
	leadRepo contract.LeadRepository,
	emailService mailer.IEmailService,
) IConsumerService {
	return &consumerService{
		pubSub:       pubSub,
		topicName:    topicName,
		brands:       brands,
		leadRepo:     leadRepo,
		emailService: emailService,
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
	var payload LeadCapturedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal lead event: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Processing lead notification for LeadId: %s", payload.LeadId)

	profile, err := cs.brands.Get(payload.Brand)
	if err != nil {
		log.Printf("[ERROR] Lead %s references unknown brand %q", payload.LeadId, payload.Brand)
		msg.Ack()
		return
	}

	lead, err := cs.leadRepo.FindById(ctx, payload.LeadId)
	if err != nil {
		log.Printf("[ERROR] Failed to load lead %s: %v", payload.LeadId, err)
		msg.Ack()
		return
	}

	if err := cs.emailService.SendLeadNotification(profile.SupportEmail, profile.Name, lead); err != nil {
		// Nack so the in-memory bus redelivers once the mailer recovers
		msg.Nack()
		return
	}

	msg.Ack()
}
