package workflow

import (
	"context"
	"time"

	"github.com/popcue/admin-console/internal/admin/models"
	"github.com/popcue/admin-console/internal/admin/notify"
	"github.com/popcue/admin-console/internal/admin/services"
	"github.com/popcue/admin-console/internal/logging"
)

type fakeSessions struct {
	restoreRet *models.Session
	restoreErr error
	loginRet   *models.Session
	loginErr   error
	logoutErr  error
	selectErr  error

	logouts  int
	selected []string
}

func (f *fakeSessions) Login(_ context.Context, email, password string) (*models.Session, error) {
	if email == "" || password == "" {
		return nil, services.ErrMissingCredentials
	}
	return f.loginRet, f.loginErr
}

func (f *fakeSessions) Logout(context.Context) error {
	f.logouts++
	return f.logoutErr
}

func (f *fakeSessions) Restore(context.Context) (*models.Session, error) {
	return f.restoreRet, f.restoreErr
}

func (f *fakeSessions) SelectTenant(_ context.Context, id string) error {
	f.selected = append(f.selected, id)
	return f.selectErr
}

type fakeTenants struct {
	ret   services.TenantList
	calls int
}

func (f *fakeTenants) Load(_ context.Context, s *models.Session) (services.TenantList, error) {
	f.calls++
	if s == nil {
		return services.TenantList{}, services.ErrNoSession
	}
	return f.ret, nil
}

type fakeSurveys struct {
	generateRet  *models.SurveyResult
	generateErr  error
	publishRet   *models.PublishResult
	publishErr   error
	unpublishRet *models.PublishResult
	unpublishErr error
	listRet      []models.SurveySummary
	listErr      error

	// block, when set, holds Generate until it is closed
	block   chan struct{}
	started chan struct{}

	lastForm models.SurveyForm
	calls    []string
}

func (f *fakeSurveys) Generate(_ context.Context, _ *models.Session, form models.SurveyForm) (*models.SurveyResult, error) {
	f.calls = append(f.calls, "generate")
	f.lastForm = form
	if f.started != nil {
		close(f.started)
	}
	if f.block != nil {
		<-f.block
	}
	if _, err := services.BuildSurveyRequest(form); err != nil {
		return nil, err
	}
	return f.generateRet, f.generateErr
}

func (f *fakeSurveys) Publish(_ context.Context, _ *models.Session, id string) (*models.PublishResult, error) {
	f.calls = append(f.calls, "publish:"+id)
	return f.publishRet, f.publishErr
}

func (f *fakeSurveys) Unpublish(_ context.Context, _ *models.Session, id string) (*models.PublishResult, error) {
	f.calls = append(f.calls, "unpublish:"+id)
	return f.unpublishRet, f.unpublishErr
}

func (f *fakeSurveys) List(context.Context, *models.Session) ([]models.SurveySummary, error) {
	f.calls = append(f.calls, "list")
	return f.listRet, f.listErr
}

type harness struct {
	c        *Controller
	sessions *fakeSessions
	tenants  *fakeTenants
	surveys  *fakeSurveys
	center   *notify.Center
	notices  []notify.Notice
}

func newHarness() *harness {
	h := &harness{
		sessions: &fakeSessions{},
		tenants:  &fakeTenants{ret: services.TenantList{Tenants: services.FallbackTenants(), Fallback: true}},
		surveys:  &fakeSurveys{},
	}
	h.center = notify.NewCenter(time.Second, notify.SinkFunc(func(n notify.Notice) {
		h.notices = append(h.notices, n)
	}))
	h.c = NewController(h.sessions, h.tenants, h.surveys, h.center, logging.Discard())
	return h
}

func (h *harness) last() notify.Notice {
	if len(h.notices) == 0 {
		return notify.Notice{}
	}
	return h.notices[len(h.notices)-1]
}

// loggedIn puts the controller into the main view.
func (h *harness) loggedIn() *harness {
	h.sessions.restoreRet = &models.Session{Token: "tok", User: models.User{Email: "a@b.c"}}
	if err := h.c.Init(context.Background()); err != nil {
		panic(err)
	}
	return h
}

func validForm() models.SurveyForm {
	return models.SurveyForm{Name: "Q1", Description: "d", Context: "c", Points: "50"}
}
