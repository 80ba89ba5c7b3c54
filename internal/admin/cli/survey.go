package cli

import (
	"context"
	"errors"

	"github.com/atotto/clipboard"
	"github.com/popcue/admin-console/internal/admin/models"
	"github.com/popcue/admin-console/internal/admin/view"
	"github.com/popcue/admin-console/internal/admin/workflow"
)

// clipboardWrite is a test seam for the system clipboard.
var clipboardWrite = clipboard.WriteAll

const unpublishQuestion = "Are you sure you want to unpublish this survey? Users won't be able to take it anymore."

// Generate collects the survey form and submits it for the active tenant.
func (a *App) Generate(ctx context.Context) error {
	t, ok := a.ctrl.ActiveTenant()
	if ok {
		a.printer.Info("Organization: %s", t.DisplayName())
	}

	var form models.SurveyForm
	var err error

	if form.Name, err = getSimpleText(a.reader, "Survey name", a.out); err != nil {
		return err
	}
	a.printer.Print("  %s", view.Counter(form.Name, view.NameLimit))

	if form.Description, err = getSimpleText(a.reader, "Description", a.out); err != nil {
		return err
	}
	a.printer.Print("  %s", view.Counter(form.Description, view.DescriptionLimit))

	if form.Context, err = getMultiline(a.reader, "Context for the AI (audience, goals, tone)", a.out); err != nil {
		return err
	}
	a.printer.Print("  %s", view.Counter(form.Context, view.ContextLimit))

	if form.Points, err = getSimpleText(a.reader, "Points awarded", a.out); err != nil {
		return err
	}

	form.TenantID = t.ID

	a.printer.Info("Generating survey...")
	if err := a.ctrl.Generate(ctx, form); err != nil {
		return a.report(err)
	}
	return a.Show()
}

// Show prints the current result, or the failure and any notice still live.
func (a *App) Show() error {
	if n, ok := a.notices.Active(a.now()); ok {
		a.printer.Print("Last notice: %s", n.Message)
	}

	switch a.ctrl.State() {
	case workflow.Success:
		a.printer.Result(view.FromResult(a.ctrl.Result(), a.ctrl.Publication() == workflow.Published))
	case workflow.Failed:
		a.printer.Error("Generation failed: %s", a.ctrl.LastError())
	default:
		a.printer.Info("No survey generated yet. Type 'generate' to start.")
	}
	return nil
}

func (a *App) Publish(ctx context.Context) error {
	if err := a.ctrl.Publish(ctx); err != nil {
		return a.report(err)
	}
	a.printer.Print("Status: %s", a.printer.Badge(view.FromResult(a.ctrl.Result(), true)))
	return nil
}

func (a *App) Unpublish(ctx context.Context) error {
	confirm := func() bool {
		ok, err := confirmFn(a.reader, unpublishQuestion, a.out)
		return err == nil && ok
	}

	err := a.ctrl.Unpublish(ctx, confirm)
	if errors.Is(err, workflow.ErrDeclined) {
		a.printer.Info("Unpublish cancelled")
		return err
	}
	if err != nil {
		return a.report(err)
	}
	a.printer.Print("Status: %s", a.printer.Badge(view.FromResult(a.ctrl.Result(), false)))
	return nil
}

// PublishByID publishes straight from the survey list and reprints it.
func (a *App) PublishByID(ctx context.Context, id string) error {
	list, err := a.ctrl.PublishByID(ctx, id)
	if err != nil {
		return a.report(err)
	}
	return a.printer.Surveys(view.FromSummaries(list, a.now()))
}

func (a *App) Copy() error {
	return a.ctrl.CopySurveyID(clipboardWrite)
}

func (a *App) Surveys(ctx context.Context) error {
	list, err := a.ctrl.ListSurveys(ctx)
	if err != nil {
		return a.report(err)
	}
	a.printer.Header("Surveys")
	return a.printer.Surveys(view.FromSummaries(list, a.now()))
}

func (a *App) View(id string) error {
	a.ctrl.ViewSurvey(id)
	return nil
}

// New clears the result and returns to an empty form.
func (a *App) New() error {
	a.ctrl.Reset()
	nameC, descC, ctxC := view.FormCounters(models.SurveyForm{})
	a.printer.Info("Ready for a new survey (%s, %s, %s). Type 'generate' to start.", nameC, descC, ctxC)
	return nil
}
