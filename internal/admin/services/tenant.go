package services

import (
	"context"

	"github.com/popcue/admin-console/internal/admin/client"
	"github.com/popcue/admin-console/internal/admin/models"
	"github.com/popcue/admin-console/internal/logging"
)

// FallbackTenants is offered whenever the tenant list cannot be fetched, so
// the generation form stays usable.
func FallbackTenants() []models.Tenant {
	return []models.Tenant{
		{ID: "00000000-0000-0000-0000-000000000001", Name: "Test Company"},
		{ID: "00000000-0000-0000-0000-000000000002", Name: "Another Corp"},
	}
}

// TenantList is the ordered tenant choice. Fallback marks the static list.
type TenantList struct {
	Tenants  []models.Tenant
	Fallback bool
}

// Default is the first tenant, the one selected when the list is loaded.
func (l TenantList) Default() (models.Tenant, bool) {
	if len(l.Tenants) == 0 {
		return models.Tenant{}, false
	}
	return l.Tenants[0], true
}

// Find looks a tenant up by id.
func (l TenantList) Find(id string) (models.Tenant, bool) {
	for _, t := range l.Tenants {
		if t.ID == id {
			return t, true
		}
	}
	return models.Tenant{}, false
}

type TenantService interface {
	Load(ctx context.Context, session *models.Session) (TenantList, error)
}

type tenantService struct {
	client client.Client
	log    logging.Logger
}

func NewTenantService(c client.Client, log logging.Logger) TenantService {
	return &tenantService{client: c, log: log.With("service", "tenants")}
}

// Load only fails without a session. Every backend problem, including an
// empty list, degrades to FallbackTenants with a logged warning.
func (s *tenantService) Load(ctx context.Context, session *models.Session) (TenantList, error) {
	if session == nil {
		return TenantList{}, ErrNoSession
	}

	tenants, err := s.client.ListTenants(ctx, session.Token)
	if err != nil {
		s.log.Warn(ctx, "failed to fetch tenants, using fallback", "error", err)
		return TenantList{Tenants: FallbackTenants(), Fallback: true}, nil
	}
	if len(tenants) == 0 {
		s.log.Warn(ctx, "no tenants in response, using fallback")
		return TenantList{Tenants: FallbackTenants(), Fallback: true}, nil
	}

	s.log.Debug(ctx, "tenants loaded", "count", len(tenants))
	return TenantList{Tenants: tenants}, nil
}
