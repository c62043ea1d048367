package mapper

import (
	"tenant-notes-be/internal/entity"
	"tenant-notes-be/internal/model"
)

type TenantMapper struct{}

func NewTenantMapper() *TenantMapper {
	return &TenantMapper{}
}

func (m *TenantMapper) ToEntity(t *model.Tenant) *entity.Tenant {
	if t == nil {
		return nil
	}
	return &entity.Tenant{
		Id:           t.Id,
		Slug:         t.Slug,
		Name:         t.Name,
		Subscription: entity.SubscriptionPlan(t.Subscription),
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func (m *TenantMapper) ToModel(t *entity.Tenant) *model.Tenant {
	if t == nil {
		return nil
	}
	return &model.Tenant{
		Id:           t.Id,
		Slug:         t.Slug,
		Name:         t.Name,
		Subscription: string(t.Subscription),
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func (m *TenantMapper) ToEntities(tenants []*model.Tenant) []*entity.Tenant {
	entities := make([]*entity.Tenant, len(tenants))
	for i, t := range tenants {
		entities[i] = m.ToEntity(t)
	}
	return entities
}
