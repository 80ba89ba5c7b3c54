package client

import (
	"context"

	"github.com/popcue/admin-console/internal/admin/models"
)

// LoginResponse is the body of a successful POST /api/v1/auth/login.
type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	User        models.User `json:"user"`
}

type Client interface {
	Login(ctx context.Context, email, password string) (*LoginResponse, error)
	ListTenants(ctx context.Context, token string) ([]models.Tenant, error)
	ListSurveys(ctx context.Context, token string) ([]models.SurveySummary, error)
	GenerateSurvey(ctx context.Context, token string, req models.SurveyRequest) (*models.SurveyResult, error)
	PublishSurvey(ctx context.Context, token, surveyID string) (*models.PublishResult, error)
	UnpublishSurvey(ctx context.Context, token, surveyID string) (*models.PublishResult, error)
}
