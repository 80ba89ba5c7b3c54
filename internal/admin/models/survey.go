package models

import (
	"encoding/json"
	"time"
)

// SurveyForm holds the generation form exactly as typed by the user.
type SurveyForm struct {
	Name        string `validate:"required" label:"name"`
	Description string `validate:"required" label:"description"`
	Context     string `validate:"required" label:"context"`
	Points      string `label:"points"`
	TenantID    string `validate:"required" label:"tenant"`
}

// SurveyRequest is the body of POST /api/v1/surveys/generate-ai. Points is
// sent as null when the form held no leading integer.
type SurveyRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Context     string `json:"context"`
	Points      *int   `json:"points"`
	TenantID    string `json:"tenant_id"`
}

// SurveyResult is the backend's answer to a generation request. Structure
// is the backend-defined question schema and is kept opaque.
type SurveyResult struct {
	SurveyID           string          `json:"survey_id"`
	QuestionsCount     int             `json:"questions_count"`
	Structure          json.RawMessage `json:"structure"`
	ValidationWarnings []string        `json:"validation_warnings"`
	Message            string          `json:"message"`
}

// PublishResult is returned by the publish and unpublish endpoints.
type PublishResult struct {
	Message string `json:"message"`
}

// SurveySummary is one row of GET /api/v1/surveys.
type SurveySummary struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	IsActive       bool           `json:"is_active"`
	CreatedAt      string         `json:"created_at"`
	CurrentVersion *SurveyVersion `json:"current_version,omitempty"`
}

type SurveyVersion struct {
	Structure *SurveyStructure `json:"structure,omitempty"`
}

type SurveyStructure struct {
	Questions []json.RawMessage `json:"questions"`
}

func (s SurveySummary) DisplayTitle() string {
	if s.Title == "" {
		return "Untitled"
	}
	return s.Title
}

var createdAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Created parses CreatedAt. Timestamps without a zone are taken as UTC.
func (s SurveySummary) Created() (time.Time, bool) {
	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, s.CreatedAt); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// QuestionsCount is zero when the summary carries no version or structure.
func (s SurveySummary) QuestionsCount() int {
	if s.CurrentVersion == nil || s.CurrentVersion.Structure == nil {
		return 0
	}
	return len(s.CurrentVersion.Structure.Questions)
}
