package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/popcue/admin-console/internal/admin/client"
	"github.com/popcue/admin-console/internal/admin/models"
	"github.com/popcue/admin-console/internal/admin/storage"
	"github.com/popcue/admin-console/internal/logging"
	"github.com/stretchr/testify/require"
)

// ---- helpers ----

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := storage.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func getState(t *testing.T, db *sql.DB, key string) (string, bool) {
	t.Helper()
	var v string
	err := db.QueryRow(`SELECT value FROM session_state WHERE key = ?`, key).Scan(&v)
	if err == sql.ErrNoRows {
		return "", false
	}
	require.NoError(t, err)
	return v, true
}

func putState(t *testing.T, db *sql.DB, key, value string) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO session_state(key, value) VALUES (?, ?)`, key, value)
	require.NoError(t, err)
}

var testLog = logging.Discard()

// ---- fake client ----

// fakeClient implements client.Client and records every call.
type fakeClient struct {
	LoginRet *client.LoginResponse
	LoginErr error

	TenantsRet []models.Tenant
	TenantsErr error

	SurveysRet []models.SurveySummary
	SurveysErr error

	GenerateRet *models.SurveyResult
	GenerateErr error

	PublishRet   *models.PublishResult
	PublishErr   error
	UnpublishRet *models.PublishResult
	UnpublishErr error

	Calls          []string
	LastToken      string
	LastEmail      string
	LastPassword   string
	LastSurveyID   string
	LastGenerateRq models.SurveyRequest
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) Login(_ context.Context, email, password string) (*client.LoginResponse, error) {
	f.Calls = append(f.Calls, "login")
	f.LastEmail, f.LastPassword = email, password
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) ListTenants(_ context.Context, token string) ([]models.Tenant, error) {
	f.Calls = append(f.Calls, "tenants")
	f.LastToken = token
	return f.TenantsRet, f.TenantsErr
}

func (f *fakeClient) ListSurveys(_ context.Context, token string) ([]models.SurveySummary, error) {
	f.Calls = append(f.Calls, "surveys")
	f.LastToken = token
	return f.SurveysRet, f.SurveysErr
}

func (f *fakeClient) GenerateSurvey(_ context.Context, token string, req models.SurveyRequest) (*models.SurveyResult, error) {
	f.Calls = append(f.Calls, "generate")
	f.LastToken = token
	f.LastGenerateRq = req
	return f.GenerateRet, f.GenerateErr
}

func (f *fakeClient) PublishSurvey(_ context.Context, token, surveyID string) (*models.PublishResult, error) {
	f.Calls = append(f.Calls, "publish")
	f.LastToken, f.LastSurveyID = token, surveyID
	return f.PublishRet, f.PublishErr
}

func (f *fakeClient) UnpublishSurvey(_ context.Context, token, surveyID string) (*models.PublishResult, error) {
	f.Calls = append(f.Calls, "unpublish")
	f.LastToken, f.LastSurveyID = token, surveyID
	return f.UnpublishRet, f.UnpublishErr
}
