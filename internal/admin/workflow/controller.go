package workflow

import (
	"context"
	"errors"
	"sync"

	"github.com/popcue/admin-console/internal/admin/client"
	"github.com/popcue/admin-console/internal/admin/models"
	"github.com/popcue/admin-console/internal/admin/notify"
	"github.com/popcue/admin-console/internal/admin/services"
	"github.com/popcue/admin-console/internal/logging"
)

const (
	msgGenerateFailed  = "Failed to generate survey"
	msgPublishFailed   = "Failed to publish survey"
	msgUnpublishFailed = "Failed to unpublish survey"
	msgListFailed      = "Failed to load surveys"
)

type Controller struct {
	sessions services.SessionService
	tenants  services.TenantService
	surveys  services.SurveyService
	notices  *notify.Center
	log      logging.Logger

	busy sync.Mutex

	mu          sync.RWMutex
	epoch       uint64 // bumped whenever a session ends
	session     *models.Session
	tenantList  services.TenantList
	tenantID    string
	state       State
	result      *models.SurveyResult
	publication Publication
	lastError   string
	list        []models.SurveySummary
}

func NewController(
	sessions services.SessionService,
	tenants services.TenantService,
	surveys services.SurveyService,
	notices *notify.Center,
	log logging.Logger,
) *Controller {
	return &Controller{
		sessions: sessions,
		tenants:  tenants,
		surveys:  surveys,
		notices:  notices,
		log:      log.With("component", "workflow"),
	}
}

// acquire takes the busy guard without blocking.
func (c *Controller) acquire() error {
	if !c.busy.TryLock() {
		return ErrBusy
	}
	return nil
}

func (c *Controller) release() { c.busy.Unlock() }

// current returns the session together with the epoch it belongs to.
func (c *Controller) current() (*models.Session, uint64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.session == nil {
		return nil, c.epoch
	}
	s := *c.session
	return &s, c.epoch
}

func (c *Controller) sameSession(epoch uint64) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.epoch == epoch
}

// endSession drops every in-memory session value.
func (c *Controller) endSession() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.epoch++
	c.session = nil
	c.tenantList = services.TenantList{}
	c.tenantID = ""
	c.list = nil
	c.resetLocked()
}

// endIfUnauthorized logs out when the backend no longer accepts the token.
// It reports whether it did.
func (c *Controller) endIfUnauthorized(ctx context.Context, err error) bool {
	if !errors.Is(err, client.ErrUnauthorized) {
		return false
	}
	c.log.Warn(ctx, "backend rejected the session token", "error", err)
	if lerr := c.sessions.Logout(ctx); lerr != nil {
		c.log.Error(ctx, "could not clear stored session", "error", lerr)
	}
	c.endSession()
	c.notices.Error(notify.MsgSessionExpired)
	return true
}

// Init restores a persisted session. With a session the main view becomes
// active and tenants are loaded; otherwise the login view stays.
func (c *Controller) Init(ctx context.Context) error {
	if err := c.acquire(); err != nil {
		return err
	}
	defer c.release()

	s, err := c.sessions.Restore(ctx)
	if err != nil {
		c.log.Warn(ctx, "could not restore session", "error", err)
		return err
	}
	if s == nil {
		return nil
	}

	c.mu.Lock()
	c.session = s
	c.mu.Unlock()

	c.loadTenants(ctx)
	return nil
}

// Destroy drops every in-memory value. The persisted session is untouched,
// so the next Init picks it up again.
func (c *Controller) Destroy() {
	c.endSession()
	c.notices.Dismiss()
}

func (c *Controller) View() View {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.session == nil {
		return ViewLogin
	}
	return ViewMain
}

// Session returns a copy of the current session, nil when logged out.
func (c *Controller) Session() *models.Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.session == nil {
		return nil
	}
	s := *c.session
	return &s
}

func (c *Controller) Login(ctx context.Context, email, password string) error {
	if err := c.acquire(); err != nil {
		return err
	}
	defer c.release()

	s, err := c.sessions.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, services.ErrMissingCredentials) {
			c.notices.Error(notify.MsgMissingCredentials)
		} else {
			c.notices.Error(notify.MsgLoginFailedPrefix + loginFailureReason(err))
		}
		return err
	}

	c.mu.Lock()
	c.session = s
	c.resetLocked()
	c.mu.Unlock()

	c.notices.Success(notify.MsgLoginSuccess)
	c.loadTenants(ctx)
	return nil
}

func loginFailureReason(err error) string {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		return services.ErrInvalidCredentials.Error()
	case errors.Is(err, client.ErrUnavailable):
		return client.ErrUnavailable.Error()
	default:
		return err.Error()
	}
}

// Logout always ends the in-memory session and ignores the busy guard. An
// action still in flight finishes with ErrSessionEnded and its outcome is
// dropped. A failure to clear the store is reported and returned.
func (c *Controller) Logout(ctx context.Context) error {
	err := c.sessions.Logout(ctx)
	c.endSession()

	if err != nil {
		c.log.Error(ctx, "logout could not clear stored session", "error", err)
		c.notices.Error("Error: " + err.Error())
		return err
	}
	c.notices.Success(notify.MsgLoggedOut)
	return nil
}

// LoadTenants refetches the tenant list.
func (c *Controller) LoadTenants(ctx context.Context) error {
	if err := c.acquire(); err != nil {
		return err
	}
	defer c.release()

	if c.Session() == nil {
		return services.ErrNoSession
	}
	c.loadTenants(ctx)
	return nil
}

// loadTenants always makes the first tenant of the loaded list active. Only
// a selection from a real backend list is persisted.
func (c *Controller) loadTenants(ctx context.Context) {
	s, epoch := c.current()
	list, err := c.tenants.Load(ctx, s)
	if err != nil {
		c.log.Warn(ctx, "tenant load skipped", "error", err)
		return
	}

	selected := ""
	if t, ok := list.Default(); ok {
		selected = t.ID
	}

	c.mu.Lock()
	if c.epoch != epoch {
		c.mu.Unlock()
		return
	}
	c.tenantList = list
	c.tenantID = selected
	if c.session != nil && !list.Fallback {
		c.session.TenantID = selected
	}
	c.mu.Unlock()

	if !list.Fallback && selected != "" {
		if err := c.sessions.SelectTenant(ctx, selected); err != nil {
			c.log.Warn(ctx, "could not persist tenant selection", "error", err)
		}
	}
}

func (c *Controller) Tenants() services.TenantList {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return services.TenantList{
		Tenants:  append([]models.Tenant(nil), c.tenantList.Tenants...),
		Fallback: c.tenantList.Fallback,
	}
}

func (c *Controller) ActiveTenant() (models.Tenant, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tenantList.Find(c.tenantID)
}

// SelectTenant switches the tenant used for generation.
func (c *Controller) SelectTenant(ctx context.Context, id string) error {
	c.mu.Lock()
	t, ok := c.tenantList.Find(id)
	if !ok {
		c.mu.Unlock()
		return ErrUnknownTenant
	}
	c.tenantID = t.ID
	fallback := c.tenantList.Fallback
	if c.session != nil && !fallback {
		c.session.TenantID = t.ID
	}
	c.mu.Unlock()

	if fallback {
		return nil
	}
	return c.sessions.SelectTenant(ctx, t.ID)
}

// Generate submits form. An empty form tenant means the active tenant.
// Validation failures leave the workflow state as it was.
func (c *Controller) Generate(ctx context.Context, form models.SurveyForm) error {
	if err := c.acquire(); err != nil {
		return err
	}
	defer c.release()

	s, epoch := c.current()
	if s == nil {
		return services.ErrNoSession
	}

	c.mu.Lock()
	if form.TenantID == "" {
		form.TenantID = c.tenantID
	}
	prev, prevResult := c.state, c.result
	c.state = Submitting
	c.result = nil
	c.lastError = ""
	c.mu.Unlock()

	res, err := c.surveys.Generate(ctx, s, form)
	if !c.sameSession(epoch) {
		return ErrSessionEnded
	}
	if c.endIfUnauthorized(ctx, err) {
		return err
	}

	var notice string
	c.mu.Lock()
	switch {
	case c.epoch != epoch:
		c.mu.Unlock()
		return ErrSessionEnded
	case errors.Is(err, services.ErrMissingFields):
		c.state, c.result = prev, prevResult
		notice = notify.MsgMissingFields
	case err != nil:
		c.state = Failed
		c.lastError = client.DetailOr(err, msgGenerateFailed)
		notice = "Error: " + c.lastError
	default:
		c.state = Success
		c.result = res
		c.publication = Draft
	}
	c.mu.Unlock()

	if err != nil {
		c.notices.Error(notice)
		return err
	}
	c.notices.Success(notify.MsgGenerated)
	return nil
}

func (c *Controller) currentSurveyID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.result == nil {
		return ""
	}
	return c.result.SurveyID
}

// Publish makes the current result live.
func (c *Controller) Publish(ctx context.Context) error {
	if err := c.acquire(); err != nil {
		return err
	}
	defer c.release()

	id := c.currentSurveyID()
	if id == "" {
		c.notices.Error(notify.MsgNoSurveyID)
		return services.ErrMissingSurveyID
	}

	s, epoch := c.current()
	res, err := c.surveys.Publish(ctx, s, id)
	if !c.sameSession(epoch) {
		return ErrSessionEnded
	}
	if err != nil {
		if !c.endIfUnauthorized(ctx, err) {
			c.notices.Error("Error: " + client.DetailOr(err, msgPublishFailed))
		}
		return err
	}

	c.setPublication(id, Published)
	c.notices.Success("✅ " + res.Message)
	return nil
}

// Unpublish returns the current result to draft. confirm is asked before
// any request; a refusal returns ErrDeclined.
func (c *Controller) Unpublish(ctx context.Context, confirm func() bool) error {
	if err := c.acquire(); err != nil {
		return err
	}
	defer c.release()

	id := c.currentSurveyID()
	if id == "" {
		c.notices.Error(notify.MsgNoSurveyID)
		return services.ErrMissingSurveyID
	}
	if confirm != nil && !confirm() {
		return ErrDeclined
	}

	s, epoch := c.current()
	res, err := c.surveys.Unpublish(ctx, s, id)
	if !c.sameSession(epoch) {
		return ErrSessionEnded
	}
	if err != nil {
		if !c.endIfUnauthorized(ctx, err) {
			c.notices.Error("Error: " + client.DetailOr(err, msgUnpublishFailed))
		}
		return err
	}

	c.setPublication(id, Draft)
	c.notices.Success("✅ " + res.Message)
	return nil
}

// setPublication only applies if the result was not replaced meanwhile.
func (c *Controller) setPublication(id string, p Publication) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.result != nil && c.result.SurveyID == id {
		c.publication = p
	}
}

// ListSurveys fetches the tenant's surveys and keeps them for Surveys.
func (c *Controller) ListSurveys(ctx context.Context) ([]models.SurveySummary, error) {
	if err := c.acquire(); err != nil {
		return nil, err
	}
	defer c.release()

	return c.listSurveys(ctx)
}

func (c *Controller) listSurveys(ctx context.Context) ([]models.SurveySummary, error) {
	s, epoch := c.current()
	list, err := c.surveys.List(ctx, s)
	if !c.sameSession(epoch) {
		return nil, ErrSessionEnded
	}
	if err != nil {
		if !c.endIfUnauthorized(ctx, err) {
			c.notices.Error("Error: " + client.DetailOr(err, msgListFailed))
		}
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.epoch != epoch {
		return nil, ErrSessionEnded
	}
	c.list = list
	return append([]models.SurveySummary(nil), list...), nil
}

func (c *Controller) Surveys() []models.SurveySummary {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.SurveySummary(nil), c.list...)
}

// PublishByID publishes a survey from the list and reloads the list.
func (c *Controller) PublishByID(ctx context.Context, id string) ([]models.SurveySummary, error) {
	if err := c.acquire(); err != nil {
		return nil, err
	}
	defer c.release()

	if id == "" {
		c.notices.Error(notify.MsgNoSurveyID)
		return nil, services.ErrMissingSurveyID
	}

	s, epoch := c.current()
	res, err := c.surveys.Publish(ctx, s, id)
	if !c.sameSession(epoch) {
		return nil, ErrSessionEnded
	}
	if err != nil {
		if !c.endIfUnauthorized(ctx, err) {
			c.notices.Error("Error: " + client.DetailOr(err, msgPublishFailed))
		}
		return nil, err
	}
	c.setPublication(id, Published)
	c.notices.Success("✅ " + res.Message)

	return c.listSurveys(ctx)
}

// ViewSurvey has no detail screen yet.
func (c *Controller) ViewSurvey(string) {
	c.notices.Info(notify.MsgViewComingSoon)
}

// CopySurveyID hands the current survey id to write.
func (c *Controller) CopySurveyID(write func(string) error) error {
	id := c.currentSurveyID()
	if id == "" {
		c.notices.Error(notify.MsgNoSurveyID)
		return services.ErrMissingSurveyID
	}
	if err := write(id); err != nil {
		c.notices.Error(notify.MsgCopyFailed)
		return err
	}
	c.notices.Success(notify.MsgCopied)
	return nil
}

// Reset goes back to an empty form and clears the notice on screen.
func (c *Controller) Reset() {
	c.mu.Lock()
	c.resetLocked()
	c.mu.Unlock()
	c.notices.Dismiss()
}

func (c *Controller) resetLocked() {
	c.state = Idle
	c.result = nil
	c.publication = Draft
	c.lastError = ""
}

func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Result is the last successful generation, nil outside Success.
func (c *Controller) Result() *models.SurveyResult {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.result == nil {
		return nil
	}
	r := *c.result
	return &r
}

func (c *Controller) Publication() Publication {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.publication
}

// LastError is the message shown for the Failed state.
func (c *Controller) LastError() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}
