package cli

import (
	"context"

	"github.com/popcue/admin-console/internal/common"
)

// Login prompts for credentials. The outcome is reported by the controller
// through the notice sink.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.ctrl.Login(ctx, email, string(password)); err != nil {
		return a.report(err)
	}
	return a.printTenants()
}

func (a *App) Logout(ctx context.Context) error {
	return a.report(a.ctrl.Logout(ctx))
}
