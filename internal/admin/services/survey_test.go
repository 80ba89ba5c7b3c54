package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/popcue/admin-console/internal/admin/client"
	"github.com/popcue/admin-console/internal/admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() models.SurveyForm {
	return models.SurveyForm{
		Name:        "Q1",
		Description: "d",
		Context:     "c",
		Points:      "50",
		TenantID:    "00000000-0000-0000-0000-000000000001",
	}
}

func TestBuildSurveyRequest_Valid(t *testing.T) {
	req, err := BuildSurveyRequest(validForm())
	require.NoError(t, err)
	assert.Equal(t, models.SurveyRequest{
		Name:        "Q1",
		Description: "d",
		Context:     "c",
		Points:      intPtr(50),
		TenantID:    "00000000-0000-0000-0000-000000000001",
	}, req)
}

func intPtr(n int) *int { return &n }

func TestBuildSurveyRequest_PointsNotRangeChecked(t *testing.T) {
	for in, want := range map[string]int{" -5 ": -5, "0": 0, "1000000": 1000000, "+7": 7} {
		form := validForm()
		form.Points = in
		req, err := BuildSurveyRequest(form)
		require.NoError(t, err, in)
		require.NotNil(t, req.Points, in)
		assert.Equal(t, want, *req.Points, in)
	}
}

func TestBuildSurveyRequest_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.SurveyForm)
		want   []string
	}{
		{"name", func(f *models.SurveyForm) { f.Name = "" }, []string{"name"}},
		{"description", func(f *models.SurveyForm) { f.Description = "" }, []string{"description"}},
		{"context", func(f *models.SurveyForm) { f.Context = "" }, []string{"context"}},
		{"tenant", func(f *models.SurveyForm) { f.TenantID = "" }, []string{"tenant"}},
		{"all", func(f *models.SurveyForm) { *f = models.SurveyForm{} }, []string{"name", "description", "context", "tenant"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			_, err := BuildSurveyRequest(form)
			require.ErrorIs(t, err, ErrMissingFields)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.want, verr.Fields)
		})
	}
}

func TestBuildSurveyRequest_PointsLeadingInteger(t *testing.T) {
	for in, want := range map[string]int{"50abc": 50, "5.5": 5, "\t12 points": 12, "-3-4": -3} {
		form := validForm()
		form.Points = in
		req, err := BuildSurveyRequest(form)
		require.NoError(t, err, in)
		require.NotNil(t, req.Points, in)
		assert.Equal(t, want, *req.Points, in)
	}
}

func TestBuildSurveyRequest_NoPointsSendsNull(t *testing.T) {
	for _, in := range []string{"", "   ", "fifty", "-", "+", "99999999999999999999999"} {
		form := validForm()
		form.Points = in
		req, err := BuildSurveyRequest(form)
		require.NoError(t, err, in)
		assert.Nil(t, req.Points, in)
	}

	form := validForm()
	form.Points = ""
	req, err := BuildSurveyRequest(form)
	require.NoError(t, err)
	body, err := json.Marshal(req)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"points":null`)
}

func TestGenerate_InvalidForm_NoNetworkCall(t *testing.T) {
	fc := &fakeClient{}
	svc := NewSurveyService(fc, testLog)

	for _, mutate := range []func(*models.SurveyForm){
		func(f *models.SurveyForm) { f.Name = "" },
		func(f *models.SurveyForm) { f.Description = "" },
		func(f *models.SurveyForm) { f.Context = "" },
		func(f *models.SurveyForm) { f.TenantID = "" },
	} {
		form := validForm()
		mutate(&form)
		_, err := svc.Generate(context.Background(), testSession, form)
		require.Error(t, err)
	}
	assert.Empty(t, fc.Calls)
}

func TestGenerate_Success(t *testing.T) {
	fc := &fakeClient{GenerateRet: &models.SurveyResult{
		SurveyID:       "abc123",
		QuestionsCount: 5,
		Structure:      json.RawMessage(`{}`),
		Message:        "ok",
	}}
	svc := NewSurveyService(fc, testLog)

	res, err := svc.Generate(context.Background(), testSession, validForm())
	require.NoError(t, err)
	assert.Equal(t, "abc123", res.SurveyID)
	assert.Equal(t, 5, res.QuestionsCount)
	assert.Equal(t, "tok", fc.LastToken)
	require.NotNil(t, fc.LastGenerateRq.Points)
	assert.Equal(t, 50, *fc.LastGenerateRq.Points)
}

func TestGenerate_BackendError_KeepsDetail(t *testing.T) {
	fc := &fakeClient{GenerateErr: &client.APIError{StatusCode: 400, Detail: "Context too short"}}
	svc := NewSurveyService(fc, testLog)

	_, err := svc.Generate(context.Background(), testSession, validForm())
	require.Error(t, err)
	assert.Equal(t, "Context too short", client.DetailOr(err, "Failed to generate survey"))
}

func TestGenerate_NoSession(t *testing.T) {
	fc := &fakeClient{}
	svc := NewSurveyService(fc, testLog)

	_, err := svc.Generate(context.Background(), nil, validForm())
	require.ErrorIs(t, err, ErrNoSession)
	assert.Empty(t, fc.Calls)
}

func TestPublishAndUnpublish(t *testing.T) {
	fc := &fakeClient{
		PublishRet:   &models.PublishResult{Message: "Survey published"},
		UnpublishRet: &models.PublishResult{Message: "Survey unpublished"},
	}
	svc := NewSurveyService(fc, testLog)
	ctx := context.Background()

	res, err := svc.Publish(ctx, testSession, "abc123")
	require.NoError(t, err)
	assert.Equal(t, "Survey published", res.Message)
	assert.Equal(t, "abc123", fc.LastSurveyID)

	res, err = svc.Unpublish(ctx, testSession, "abc123")
	require.NoError(t, err)
	assert.Equal(t, "Survey unpublished", res.Message)
	assert.Equal(t, []string{"publish", "unpublish"}, fc.Calls)
}

func TestPublish_Guards(t *testing.T) {
	fc := &fakeClient{}
	svc := NewSurveyService(fc, testLog)
	ctx := context.Background()

	_, err := svc.Publish(ctx, testSession, "")
	require.ErrorIs(t, err, ErrMissingSurveyID)
	_, err = svc.Unpublish(ctx, testSession, "")
	require.ErrorIs(t, err, ErrMissingSurveyID)
	_, err = svc.Publish(ctx, nil, "x")
	require.ErrorIs(t, err, ErrNoSession)
	_, err = svc.Unpublish(ctx, nil, "x")
	require.ErrorIs(t, err, ErrNoSession)
	assert.Empty(t, fc.Calls)
}

func TestPublish_ErrorWrapped(t *testing.T) {
	fc := &fakeClient{
		PublishErr:   &client.APIError{StatusCode: 409, Detail: "Survey already active"},
		UnpublishErr: client.ErrUnavailable,
	}
	svc := NewSurveyService(fc, testLog)

	_, err := svc.Publish(context.Background(), testSession, "s1")
	assert.Equal(t, "Survey already active", client.DetailOr(err, "Failed to publish survey"))

	_, err = svc.Unpublish(context.Background(), testSession, "s1")
	require.ErrorIs(t, err, client.ErrUnavailable)
	assert.Equal(t, "Failed to unpublish survey", client.DetailOr(err, "Failed to unpublish survey"))
}

func TestList(t *testing.T) {
	fc := &fakeClient{SurveysRet: []models.SurveySummary{{ID: "s1", Title: "Q1"}}}
	svc := NewSurveyService(fc, testLog)

	got, err := svc.List(context.Background(), testSession)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	fc.SurveysErr = client.ErrUnavailable
	_, err = svc.List(context.Background(), testSession)
	require.ErrorIs(t, err, client.ErrUnavailable)

	_, err = svc.List(context.Background(), nil)
	require.ErrorIs(t, err, ErrNoSession)
}
