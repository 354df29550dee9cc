package dto

import (
	"time"

	"github.com/google/uuid"
)

type CaptureLeadRequest struct {
	FormType  string                 `json:"form_type" validate:"required"`
	Data      map[string]interface{} `json:"data" validate:"required"`
	SessionID string                 `json:"session_id"`
}

type CaptureLeadResponse struct {
	Success bool      `json:"success"`
	Id      uuid.UUID `json:"id"`
}

type LeadItem struct {
	Id        uuid.UUID              `json:"id"`
	Brand     string                 `json:"brand"`
	FormType  string                 `json:"form_type"`
	Data      map[string]interface{} `json:"data"`
	Source    string                 `json:"source"`
	CreatedAt time.Time              `json:"created_at"`
}

type ListLeadsResponse struct {
	Success bool       `json:"success"`
	Total   int64      `json:"total"`
	Leads   []LeadItem `json:"leads"`
}
