package services

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/popcue/admin-console/internal/admin/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields by their user-facing label
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if label := fld.Tag.Get("label"); label != "" {
			return label
		}
		return strings.ToLower(fld.Name)
	})
	return v
}

// BuildSurveyRequest checks that name, description, context and tenant are
// filled in. Points are not range checked; the backend owns the valid range.
func BuildSurveyRequest(form models.SurveyForm) (models.SurveyRequest, error) {
	if err := validate.Struct(form); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field())
			}
			return models.SurveyRequest{}, &ValidationError{Fields: fields}
		}
		return models.SurveyRequest{}, err
	}

	return models.SurveyRequest{
		Name:        form.Name,
		Description: form.Description,
		Context:     form.Context,
		Points:      parsePoints(form.Points),
		TenantID:    form.TenantID,
	}, nil
}

// parsePoints reads the integer at the start of s after leading whitespace,
// so "50abc" is 50. Input without one, or out of int range, yields nil.
func parsePoints(s string) *int {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return nil
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return nil
	}
	return &n
}
