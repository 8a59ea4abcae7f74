package app

import (
	"net/url"
	"time"

	"fittrack/internal/domain"
)

// BodyWeightValidation is the outcome of validating a weight-entry form.
// Payload is set only when both fields passed.
type BodyWeightValidation struct {
	Payload     *domain.CreateBodyWeightRequest
	FieldErrors map[string]string
}

// ValidateBodyWeightForm checks a weight-entry submission: a finite positive
// weight (rounded to two decimals) and a real calendar date.
func ValidateBodyWeightForm(form url.Values) BodyWeightValidation {
	fieldErrors := make(map[string]string)

	var weight float64
	weightRaw := optionalText(form, "weight")
	if weightRaw == nil {
		fieldErrors["weight"] = "Weight is required."
	} else {
		parsed, ok := domain.ParseNumber(*weightRaw)
		if !ok || parsed <= 0 {
			fieldErrors["weight"] = "Weight must be a positive number."
		} else {
			weight = domain.Round2(parsed)
		}
	}

	date := optionalText(form, "date")
	if date == nil {
		fieldErrors["date"] = "Date is required."
	} else if !isValidISODate(*date) {
		fieldErrors["date"] = "Date must use the YYYY-MM-DD format."
	}

	if len(fieldErrors) > 0 {
		return BodyWeightValidation{FieldErrors: fieldErrors}
	}

	return BodyWeightValidation{
		FieldErrors: fieldErrors,
		Payload: &domain.CreateBodyWeightRequest{
			Weight: weight,
			Date:   *date,
		},
	}
}

// isValidISODate requires the YYYY-MM-DD shape and a date that round-trips
// through the calendar, so 2026-02-30 is rejected even though it matches
// the pattern.
func isValidISODate(date string) bool {
	if !isoDatePattern.MatchString(date) {
		return false
	}
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return false
	}
	return parsed.Format("2006-01-02") == date
}
