package converter

import (
	"auth_backend/internal/api/dto/tenant"
	"auth_backend/internal/model"
)

func CreateTenantRequestToModel(req *tenant.CreateTenantRequest) *model.Tenant {
	return &model.Tenant{
		Name:    req.Name,
		Address: req.Address,
	}
}

func UpdateTenantRequestToModel(id int, req *tenant.UpdateTenantRequest) *model.Tenant {
	return &model.Tenant{
		ID:      id,
		Name:    req.Name,
		Address: req.Address,
	}
}

func ToTenantResponse(t *model.Tenant) tenant.TenantResponse {
	return tenant.TenantResponse{
		ID:        t.ID,
		Name:      t.Name,
		Address:   t.Address,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func ToTenantResponses(tenants []model.Tenant) []tenant.TenantResponse {
	result := make([]tenant.TenantResponse, len(tenants))
	for i, t := range tenants {
		result[i] = ToTenantResponse(&t)
	}
	return result
}
