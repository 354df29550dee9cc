package contract

import (
	"context"

	"support-chat-be/internal/entity"

	"github.com/google/uuid"
)

type LeadRepository interface {
	Create(ctx context.Context, lead *entity.Lead) error
	FindById(ctx context.Context, id uuid.UUID) (*entity.Lead, error)
	FindByBrand(ctx context.Context, brand string, limit, offset int) ([]*entity.Lead, int64, error)
}
