package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Lead struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Brand     string         `gorm:"type:varchar(64);not null;index"`
	FormType  string         `gorm:"type:varchar(64)"`
	Payload   datatypes.JSON `gorm:"type:jsonb"`
	Source    string         `gorm:"type:varchar(64);default:'chatbot'"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
}

func (Lead) TableName() string {
	return "leads"
}
