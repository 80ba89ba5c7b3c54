// Package view projects controller state into display-ready values. Nothing
// here touches the terminal.
package view

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/popcue/admin-console/internal/admin/models"
)

const (
	BadgeDraft     = "Draft (Manual Review Required)"
	BadgePublished = "Published (Live)"

	RowPublished = "✓ Published"
	RowDraft     = "⏱ Draft"
)

// Form field limits shown by the character counters. They are advisory.
const (
	NameLimit        = 500
	DescriptionLimit = 2000
	ContextLimit     = 5000
)

// Result is what the result panel shows after a successful generation.
type Result struct {
	SurveyID         string
	QuestionsCount   string
	Message          string
	StructurePreview string
	Warnings         []string
	WarningsVisible  bool
	Badge            string
	Published        bool
}

// FromResult projects r. A nil result yields the zero Result.
func FromResult(r *models.SurveyResult, published bool) Result {
	if r == nil {
		return Result{}
	}

	badge := BadgeDraft
	if published {
		badge = BadgePublished
	}

	warnings := append([]string(nil), r.ValidationWarnings...)

	return Result{
		SurveyID:         r.SurveyID,
		QuestionsCount:   strconv.Itoa(r.QuestionsCount),
		Message:          r.Message,
		StructurePreview: IndentJSON(r.Structure),
		Warnings:         warnings,
		WarningsVisible:  len(warnings) > 0,
		Badge:            badge,
		Published:        published,
	}
}

// IndentJSON pretty-prints raw with two-space indentation. Input that is not
// valid JSON is returned unchanged.
func IndentJSON(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}

// SurveyRow is one line of the surveys table.
type SurveyRow struct {
	ID         string
	Title      string
	Questions  string
	Status     string
	Created    string
	CanPublish bool
}

// FromSummaries projects the survey list. Dates are rendered relative to now.
func FromSummaries(list []models.SurveySummary, now time.Time) []SurveyRow {
	rows := make([]SurveyRow, 0, len(list))
	for _, s := range list {
		status := RowDraft
		if s.IsActive {
			status = RowPublished
		}
		rows = append(rows, SurveyRow{
			ID:         s.ID,
			Title:      s.DisplayTitle(),
			Questions:  strconv.Itoa(s.QuestionsCount()),
			Status:     status,
			Created:    createdLabel(s, now),
			CanPublish: !s.IsActive,
		})
	}
	return rows
}

func createdLabel(s models.SurveySummary, now time.Time) string {
	t, ok := s.Created()
	if !ok {
		return "-"
	}
	return fmt.Sprintf("%s (%s)", t.Format("2006-01-02"), humanize.RelTime(t, now, "ago", "from now"))
}

// Counter renders "n/limit" counting characters, not bytes.
func Counter(s string, limit int) string {
	return fmt.Sprintf("%d/%d", utf8.RuneCountInString(s), limit)
}

// FormCounters returns the name, description and context counters.
func FormCounters(f models.SurveyForm) (name, description, context string) {
	return Counter(f.Name, NameLimit),
		Counter(f.Description, DescriptionLimit),
		Counter(f.Context, ContextLimit)
}

// TenantOption is one entry of the tenant picker.
type TenantOption struct {
	ID       string
	Label    string
	Selected bool
}

func TenantOptions(tenants []models.Tenant, selectedID string) []TenantOption {
	opts := make([]TenantOption, 0, len(tenants))
	for _, t := range tenants {
		opts = append(opts, TenantOption{ID: t.ID, Label: t.DisplayName(), Selected: t.ID == selectedID})
	}
	return opts
}
