package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"support-chat-be/internal/dto"
	"support-chat-be/internal/entity"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubLeadRepo struct {
	created []*entity.Lead
}

func (r *stubLeadRepo) Create(ctx context.Context, lead *entity.Lead) error {
	r.created = append(r.created, lead)
	return nil
}

func (r *stubLeadRepo) FindById(ctx context.Context, id uuid.UUID) (*entity.Lead, error) {
	for _, l := range r.created {
		if l.Id == id {
			return l, nil
		}
	}
	return nil, errors.New("lead not found")
}

func (r *stubLeadRepo) FindByBrand(ctx context.Context, brand string, limit, offset int) ([]*entity.Lead, int64, error) {
	var out []*entity.Lead
	for _, l := range r.created {
		if l.Brand == brand {
			out = append(out, l)
		}
	}
	return out, int64(len(out)), nil
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func TestCapturePersistsAndPublishes(t *testing.T) {
	repo := &stubLeadRepo{}
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	svc := NewLeadService(testBrands(), repo, pubSub, "LEAD_CAPTURED", nopLogger{})

	events, err := pubSub.Subscribe(context.Background(), "LEAD_CAPTURED")
	assert.NoError(t, err)

	res, err := svc.Capture(context.Background(), "ticket99", &dto.CaptureLeadRequest{
		FormType:  "organizer",
		Data:      map[string]interface{}{"name": "Asha", "email": "asha@example.com"},
		SessionID: "ticket99_s1",
	})
	assert.NoError(t, err)
	assert.True(t, res.Success)

	assert.Len(t, repo.created, 1)
	lead := repo.created[0]
	assert.Equal(t, "ticket99", lead.Brand)
	assert.Equal(t, "organizer", lead.FormType)
	assert.Equal(t, "chatbot", lead.Source)
	assert.Equal(t, "Asha", lead.Payload["name"])
	assert.Equal(t, "ticket99_s1", lead.Payload["session_id"])

	select {
	case msg := <-events:
		var event LeadCapturedMessage
		assert.NoError(t, json.Unmarshal(msg.Payload, &event))
		assert.Equal(t, lead.Id, event.LeadId)
		assert.Equal(t, "ticket99", event.Brand)
		msg.Ack()
	case <-time.After(2 * time.Second):
		t.Fatal("lead event not published")
	}
}

func TestCaptureUnknownBrand(t *testing.T) {
	repo := &stubLeadRepo{}
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	svc := NewLeadService(testBrands(), repo, pubSub, "LEAD_CAPTURED", nopLogger{})

	_, err := svc.Capture(context.Background(), "nosuchbrand", &dto.CaptureLeadRequest{
		FormType: "demo",
		Data:     map[string]interface{}{"email": "a@b.c"},
	})
	assert.Error(t, err)
	assert.Empty(t, repo.created)
}

func TestListLeads(t *testing.T) {
	repo := &stubLeadRepo{}
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	svc := NewLeadService(testBrands(), repo, pubSub, "LEAD_CAPTURED", nopLogger{})

	for i := 0; i < 3; i++ {
		_, err := svc.Capture(context.Background(), "eventitans", &dto.CaptureLeadRequest{
			FormType: "demo",
			Data:     map[string]interface{}{"email": "a@b.c"},
		})
		assert.NoError(t, err)
	}

	res, err := svc.List(context.Background(), "eventitans", 50, 0)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), res.Total)
	assert.Len(t, res.Leads, 3)
	assert.Equal(t, "demo", res.Leads[0].FormType)
}
