package cli

import (
	"context"

	"github.com/popcue/admin-console/internal/admin/view"
)

// Tenants reloads and prints the organizations.
func (a *App) Tenants(ctx context.Context) error {
	if err := a.ctrl.LoadTenants(ctx); err != nil {
		return a.report(err)
	}
	return a.printTenants()
}

func (a *App) printTenants() error {
	list := a.ctrl.Tenants()
	active, _ := a.ctrl.ActiveTenant()
	return a.printer.Tenants(view.TenantOptions(list.Tenants, active.ID), list.Fallback)
}

func (a *App) SelectTenant(ctx context.Context, id string) error {
	if err := a.ctrl.SelectTenant(ctx, id); err != nil {
		return a.report(err)
	}
	t, _ := a.ctrl.ActiveTenant()
	a.printer.Success("Organization set to %s", t.DisplayName())
	return nil
}
