package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"support-chat-be/internal/dto"
	"support-chat-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type fakeChatService struct {
	lastBrand string
	lastReq   *dto.ChatRequest
}

func (f *fakeChatService) SendChat(ctx context.Context, brandKey string, request *dto.ChatRequest) (*dto.ChatResponse, error) {
	f.lastBrand = brandKey
	f.lastReq = request

	if brandKey != "ticket99" && brandKey != "eventitans" {
		return nil, fmt.Errorf("unknown brand: %s", brandKey)
	}

	sessionID := request.SessionID
	if sessionID == "" {
		sessionID = brandKey + "_generated"
	}
	return &dto.ChatResponse{
		Success:   true,
		Message:   "canned reply",
		SessionID: sessionID,
		Brand:     brandKey,
		Source:    "model",
	}, nil
}

func (f *fakeChatService) ClearSession(ctx context.Context, request *dto.ClearSessionRequest) (*dto.ClearSessionResponse, error) {
	return &dto.ClearSessionResponse{Success: true, SessionID: request.SessionID}, nil
}

func (f *fakeChatService) Health(ctx context.Context) *dto.HealthResponse {
	return &dto.HealthResponse{Status: "ok"}
}

func newChatApp(svc *fakeChatService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	NewChatController(svc).RegisterRoutes(app.Group("/api"))
	return app
}

func postJSON(t *testing.T, app *fiber.App, url string, payload interface{}) (int, []byte) {
	t.Helper()
	body, err := json.Marshal(payload)
	assert.NoError(t, err)

	req := httptest.NewRequest("POST", url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	defer resp.Body.Close()

	buf := new(bytes.Buffer)
	buf.ReadFrom(resp.Body)
	return resp.StatusCode, buf.Bytes()
}

func TestSendChatSuccess(t *testing.T) {
	svc := &fakeChatService{}
	app := newChatApp(svc)

	status, body := postJSON(t, app, "/api/ticket99/chat", dto.ChatRequest{Message: "hello"})

	assert.Equal(t, fiber.StatusOK, status)

	var res dto.ChatResponse
	assert.NoError(t, json.Unmarshal(body, &res))
	assert.True(t, res.Success)
	assert.Equal(t, "canned reply", res.Message)
	assert.Equal(t, "ticket99_generated", res.SessionID)
	assert.Equal(t, "ticket99", svc.lastBrand)
}

func TestSendChatValidatesMessage(t *testing.T) {
	app := newChatApp(&fakeChatService{})

	status, _ := postJSON(t, app, "/api/ticket99/chat", dto.ChatRequest{Message: ""})
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestSendChatUnknownBrand(t *testing.T) {
	app := newChatApp(&fakeChatService{})

	status, _ := postJSON(t, app, "/api/nosuchbrand/chat", dto.ChatRequest{Message: "hello"})
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestSendChatKeepsClientSession(t *testing.T) {
	svc := &fakeChatService{}
	app := newChatApp(svc)

	status, body := postJSON(t, app, "/api/eventitans/chat",
		dto.ChatRequest{Message: "hi", SessionID: "eventitans_abc"})

	assert.Equal(t, fiber.StatusOK, status)

	var res dto.ChatResponse
	assert.NoError(t, json.Unmarshal(body, &res))
	assert.Equal(t, "eventitans_abc", res.SessionID)
}

func TestClearSession(t *testing.T) {
	app := newChatApp(&fakeChatService{})

	status, body := postJSON(t, app, "/api/clear",
		dto.ClearSessionRequest{SessionID: "ticket99_abc"})

	assert.Equal(t, fiber.StatusOK, status)

	var res dto.ClearSessionResponse
	assert.NoError(t, json.Unmarshal(body, &res))
	assert.True(t, res.Success)
	assert.Equal(t, "ticket99_abc", res.SessionID)
}

func TestClearSessionRequiresID(t *testing.T) {
	app := newChatApp(&fakeChatService{})

	status, _ := postJSON(t, app, "/api/clear", dto.ClearSessionRequest{})
	assert.Equal(t, fiber.StatusBadRequest, status)
}
