package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/popcue/admin-console/internal/admin/notify"
	"github.com/popcue/admin-console/internal/admin/workflow"
)

// Input helpers are indirections so tests can script the prompts.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
	confirmFn     = Confirm
)

type App struct {
	ctrl    *workflow.Controller
	notices *notify.Center
	printer *Printer
	reader  *bufio.Reader
	out     io.Writer
	now     func() time.Time
}

// NewApp binds ctrl to the terminal. notices must be the Center the
// controller reports to.
func NewApp(ctrl *workflow.Controller, notices *notify.Center, printer *Printer, in io.Reader, out io.Writer) *App {
	return &App{
		ctrl:    ctrl,
		notices: notices,
		printer: printer,
		reader:  bufio.NewReader(in),
		out:     out,
		now:     time.Now,
	}
}

// Run restores the session and serves commands until exit or EOF.
func (a *App) Run(ctx context.Context) error {
	defer a.ctrl.Destroy()

	a.printer.Info("PopCue admin console (type 'help' for commands)")
	if err := a.ctrl.Init(ctx); err != nil {
		a.printer.Warning("Could not restore the previous session: %v", err)
	}
	if s := a.ctrl.Session(); s != nil {
		a.printer.Success("Welcome back, %s", displayUser(s.User.Name, s.User.Email))
	}

	runREPL(ctx, a, a.status, a.reader)
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.ctrl.View() == workflow.ViewMain
}

func (a *App) status() string {
	s := a.ctrl.Session()
	if s == nil {
		return "(login) "
	}
	label := displayUser(s.User.Name, s.User.Email)
	if t, ok := a.ctrl.ActiveTenant(); ok {
		label += " @ " + t.DisplayName()
	}
	return fmt.Sprintf("(%s) ", label)
}

func displayUser(name, email string) string {
	switch {
	case email != "":
		return email
	case name != "":
		return name
	default:
		return "admin"
	}
}

// report prints errors the controller does not turn into notices itself.
func (a *App) report(err error) error {
	switch {
	case errors.Is(err, workflow.ErrBusy):
		a.printer.Warning("Please wait for the current action to finish")
	case errors.Is(err, workflow.ErrUnknownTenant):
		a.printer.Error("Unknown organization, type 'tenants' to list them")
	case errors.Is(err, workflow.ErrSessionEnded):
		a.printer.Warning("Logged out before the action finished, its result was dropped")
	}
	return err
}
