package services

import (
	"context"
	"fmt"

	"github.com/popcue/admin-console/internal/admin/client"
	"github.com/popcue/admin-console/internal/admin/models"
	"github.com/popcue/admin-console/internal/logging"
)

type SurveyService interface {
	Generate(ctx context.Context, session *models.Session, form models.SurveyForm) (*models.SurveyResult, error)
	Publish(ctx context.Context, session *models.Session, surveyID string) (*models.PublishResult, error)
	Unpublish(ctx context.Context, session *models.Session, surveyID string) (*models.PublishResult, error)
	List(ctx context.Context, session *models.Session) ([]models.SurveySummary, error)
}

type surveyService struct {
	client client.Client
	log    logging.Logger
}

func NewSurveyService(c client.Client, log logging.Logger) SurveyService {
	return &surveyService{client: c, log: log.With("service", "surveys")}
}

// Generate validates the form before any backend call.
func (s *surveyService) Generate(ctx context.Context, session *models.Session, form models.SurveyForm) (*models.SurveyResult, error) {
	if session == nil {
		return nil, ErrNoSession
	}
	req, err := BuildSurveyRequest(form)
	if err != nil {
		return nil, err
	}

	res, err := s.client.GenerateSurvey(ctx, session.Token, req)
	if err != nil {
		s.log.Error(ctx, "survey generation failed", "tenant_id", req.TenantID, "error", err)
		return nil, fmt.Errorf("generate survey: %w", err)
	}
	s.log.Info(ctx, "survey generated", "survey_id", res.SurveyID, "questions", res.QuestionsCount)
	return res, nil
}

func (s *surveyService) Publish(ctx context.Context, session *models.Session, surveyID string) (*models.PublishResult, error) {
	if session == nil {
		return nil, ErrNoSession
	}
	if surveyID == "" {
		return nil, ErrMissingSurveyID
	}

	res, err := s.client.PublishSurvey(ctx, session.Token, surveyID)
	if err != nil {
		s.log.Error(ctx, "publish failed", "survey_id", surveyID, "error", err)
		return nil, fmt.Errorf("publish survey %s: %w", surveyID, err)
	}
	return res, nil
}

func (s *surveyService) Unpublish(ctx context.Context, session *models.Session, surveyID string) (*models.PublishResult, error) {
	if session == nil {
		return nil, ErrNoSession
	}
	if surveyID == "" {
		return nil, ErrMissingSurveyID
	}

	res, err := s.client.UnpublishSurvey(ctx, session.Token, surveyID)
	if err != nil {
		s.log.Error(ctx, "unpublish failed", "survey_id", surveyID, "error", err)
		return nil, fmt.Errorf("unpublish survey %s: %w", surveyID, err)
	}
	return res, nil
}

func (s *surveyService) List(ctx context.Context, session *models.Session) ([]models.SurveySummary, error) {
	if session == nil {
		return nil, ErrNoSession
	}

	surveys, err := s.client.ListSurveys(ctx, session.Token)
	if err != nil {
		return nil, fmt.Errorf("list surveys: %w", err)
	}
	return surveys, nil
}
