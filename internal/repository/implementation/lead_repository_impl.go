package implementation

import (
	"context"
	"encoding/json"

	"support-chat-be/internal/entity"
	"support-chat-be/internal/model"
	"support-chat-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type LeadRepositoryImpl struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) contract.LeadRepository {
	return &LeadRepositoryImpl{db: db}
}

func (r *LeadRepositoryImpl) Create(ctx context.Context, lead *entity.Lead) error {
	payload, err := json.Marshal(lead.Payload)
	if err != nil {
		return err
	}

	m := &model.Lead{
		Id:       lead.Id,
		Brand:    lead.Brand,
		FormType: lead.FormType,
		Payload:  datatypes.JSON(payload),
		Source:   lead.Source,
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}

	lead.CreatedAt = m.CreatedAt
	return nil
}

func (r *LeadRepositoryImpl) FindById(ctx context.Context, id uuid.UUID) (*entity.Lead, error) {
	var m model.Lead
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}

	var payload map[string]interface{}
	_ = json.Unmarshal(m.Payload, &payload)

	return &entity.Lead{
		Id:        m.Id,
		Brand:     m.Brand,
		FormType:  m.FormType,
		Payload:   payload,
		Source:    m.Source,
		CreatedAt: m.CreatedAt,
	}, nil
}

func (r *LeadRepositoryImpl) FindByBrand(ctx context.Context, brand string, limit, offset int) ([]*entity.Lead, int64, error) {
	var models []model.Lead
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Lead{}).Where("brand = ?", brand)

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}

	leads := make([]*entity.Lead, len(models))
	for i, m := range models {
		var payload map[string]interface{}
		// Payload was validated on write; a decode failure here just
		// yields an empty map rather than failing the listing.
		_ = json.Unmarshal(m.Payload, &payload)

		leads[i] = &entity.Lead{
			Id:        m.Id,
			Brand:     m.Brand,
			FormType:  m.FormType,
			Payload:   payload,
			Source:    m.Source,
			CreatedAt: m.CreatedAt,
		}
	}

	return leads, total, nil
}
