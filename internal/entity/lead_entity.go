package entity

import (
	"time"

	"github.com/google/uuid"
)

// Lead is a captured sales inquiry submitted through a chat widget form.
// Fields vary per form type, so the payload stays schemaless.
type Lead struct {
	Id        uuid.UUID
	Brand     string
	FormType  string
	Payload   map[string]interface{}
	Source    string
	CreatedAt time.Time
}
