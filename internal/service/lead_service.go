package service

import (
	"context"
	"encoding/json"
	"time"

	"support-chat-be/internal/dto"
	"support-chat-be/internal/entity"
	"support-chat-be/internal/pkg/logger"
	"support-chat-be/internal/repository/contract"
	"support-chat-be/pkg/brand"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type ILeadService interface {
	Capture(ctx context.Context, brandKey string, request *dto.CaptureLeadRequest) (*dto.CaptureLeadResponse, error)
	List(ctx context.Context, brandKey string, limit, offset int) (*dto.ListLeadsResponse, error)
}

// LeadCapturedMessage is the event payload published after a lead is
// persisted; the consumer fans it out to notifications.
type LeadCapturedMessage struct {
	LeadId uuid.UUID `json:"lead_id"`
	Brand  string    `json:"brand"`
}

type leadService struct {
	brands    *brand.Registry
	repo      contract.LeadRepository
	pubSub    *gochannel.GoChannel
	topicName string
	logger    logger.ILogger
}

func NewLeadService(
	brands *brand.Registry,
	repo contract.LeadRepository,
	pubSub *gochannel.GoChannel,
	topicName string,
	logger logger.ILogger,
) ILeadService {
	return &leadService{
		brands:    brands,
		repo:      repo,
		pubSub:    pubSub,
		topicName: topicName,
		logger:    logger,
	}
}

// Capture persists the lead, then publishes the captured event. A publish
// failure is logged but does not fail the request; the lead is already
// safe in storage.
func (ls *leadService) Capture(ctx context.Context, brandKey string, request *dto.CaptureLeadRequest) (*dto.CaptureLeadResponse, error) {
	profile, err := ls.brands.Get(brandKey)
	if err != nil {
		return nil, err
	}

	payload := make(map[string]interface{}, len(request.Data)+2)
	for k, v := range request.Data {
		payload[k] = v
	}
	payload["form_type"] = request.FormType
	if request.SessionID != "" {
		payload["session_id"] = request.SessionID
	}

	lead := &entity.Lead{
		Id:        uuid.New(),
		Brand:     profile.Key,
		FormType:  request.FormType,
		Payload:   payload,
		Source:    "chatbot",
		CreatedAt: time.Now(),
	}

	if err := ls.repo.Create(ctx, lead); err != nil {
		return nil, err
	}

	ls.publishCaptured(lead)

	return &dto.CaptureLeadResponse{Success: true, Id: lead.Id}, nil
}

func (ls *leadService) publishCaptured(lead *entity.Lead) {
	eventPayload, err := json.Marshal(LeadCapturedMessage{LeadId: lead.Id, Brand: lead.Brand})
	if err != nil {
		ls.logger.Error("lead", "failed to marshal lead event", map[string]interface{}{
			"lead_id": lead.Id,
		})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), eventPayload)
	if err := ls.pubSub.Publish(ls.topicName, msg); err != nil {
		ls.logger.Error("lead", "failed to publish lead event", map[string]interface{}{
			"lead_id": lead.Id,
			"topic":   ls.topicName,
		})
	}
}

func (ls *leadService) List(ctx context.Context, brandKey string, limit, offset int) (*dto.ListLeadsResponse, error) {
	profile, err := ls.brands.Get(brandKey)
	if err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	leads, total, err := ls.repo.FindByBrand(ctx, profile.Key, limit, offset)
	if err != nil {
		return nil, err
	}

	items := make([]dto.LeadItem, 0, len(leads))
	for _, l := range leads {
		items = append(items, dto.LeadItem{
			Id:        l.Id,
			Brand:     l.Brand,
			FormType:  l.FormType,
			Data:      l.Payload,
			Source:    l.Source,
			CreatedAt: l.CreatedAt,
		})
	}

	return &dto.ListLeadsResponse{Success: true, Total: total, Leads: items}, nil
}
