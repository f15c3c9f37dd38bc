package tenant

import (
	"auth_backend/internal/model"
	"auth_backend/internal/repository"
	"auth_backend/internal/service"
	"context"
)

type serv struct {
	tenantRepo repository.TenantRepository
}

func NewTenantService(tenantRepo repository.TenantRepository) service.TenantService {
	return &serv{tenantRepo: tenantRepo}
}

func (s *serv) Create(ctx context.Context, tenant *model.Tenant) (int, error) {
	return s.tenantRepo.Create(ctx, tenant)
}

func (s *serv) GetByID(ctx context.Context, id int) (*model.Tenant, error) {
	return s.tenantRepo.GetByID(ctx, id)
}

func (s *serv) List(ctx context.Context) ([]model.Tenant, error) {
	return s.tenantRepo.List(ctx)
}

func (s *serv) Update(ctx context.Context, tenant *model.Tenant) error {
	return s.tenantRepo.Update(ctx, tenant)
}

func (s *serv) Delete(ctx context.Context, id int) error {
	return s.tenantRepo.Delete(ctx, id)
}
