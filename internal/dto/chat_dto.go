package dto

import "time"

type ChatRequest struct {
	Message   string `json:"message" validate:"required"`
	SessionID string `json:"session_id"`
}

type ChatResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
	Brand     string `json:"brand"`
	ShowForm  string `json:"show_form,omitempty"` // form kind when the reply asks for a lead form
	Intent    string `json:"intent,omitempty"`
	Source    string `json:"source"` // "model" | "fallback"
}

type ClearSessionRequest struct {
	SessionID string `json:"session_id" validate:"required"`
}

type ClearSessionResponse struct {
	Success   bool   `json:"success"`
	SessionID string `json:"session_id"`
}

type HealthResponse struct {
	Status        string    `json:"status"`
	Ollama        string    `json:"ollama"` // "up" | "down"
	Model         string    `json:"model"`
	Brands        []string  `json:"brands"`
	SessionsSwept int       `json:"sessions_swept"`
	Timestamp     time.Time `json:"timestamp"`
}
