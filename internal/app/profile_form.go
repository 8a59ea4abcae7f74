package app

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"fittrack/internal/domain"
)

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ProfileValidation is the outcome of validating a profile creation form.
// Payload is set only when every field passed; callers treat a nil Payload
// as the authoritative invalid signal, not an empty FieldErrors map.
type ProfileValidation struct {
	Payload     *domain.CreateProfileRequest
	FieldErrors map[string]string
}

// UpdateProfileValidation is the outcome of validating a profile edit form.
type UpdateProfileValidation struct {
	Payload     *domain.UpdateProfileRequest
	FieldErrors map[string]string
}

// ValidateCreateProfileForm checks an onboarding submission. Username and
// units preference are required; everything else is optional and defaults
// to unset. Height is canonicalized to centimeters rounded to two decimals.
func ValidateCreateProfileForm(form url.Values) ProfileValidation {
	fieldErrors := make(map[string]string)

	username := optionalText(form, "username")
	if username == nil {
		fieldErrors["username"] = "Username is required."
	} else if utf8.RuneCountInString(*username) > 30 {
		fieldErrors["username"] = "Username must be between 1 and 30 characters."
	}

	units, ok := validateUnits(form, fieldErrors)
	displayName := validateDisplayName(form, fieldErrors)
	gender := validateGender(form, fieldErrors)
	birthdate := validateBirthdate(form, fieldErrors)
	heightCm := validateHeight(form, fieldErrors)

	if len(fieldErrors) > 0 || username == nil || !ok {
		return ProfileValidation{FieldErrors: fieldErrors}
	}

	return ProfileValidation{
		FieldErrors: fieldErrors,
		Payload: &domain.CreateProfileRequest{
			Username:        *username,
			UnitsPreference: units,
			DisplayName:     displayName,
			Gender:          gender,
			Birthdate:       birthdate,
			HeightCm:        heightCm,
		},
	}
}

// ValidateUpdateProfileForm checks an edit submission. Only the units
// preference is required; a field left blank is omitted from the payload
// entirely so the store leaves it untouched. Username is immutable and is
// never read from the form.
func ValidateUpdateProfileForm(form url.Values) UpdateProfileValidation {
	fieldErrors := make(map[string]string)

	units, ok := validateUnits(form, fieldErrors)
	displayName := validateDisplayName(form, fieldErrors)
	gender := validateGender(form, fieldErrors)
	birthdate := validateBirthdate(form, fieldErrors)
	heightCm := validateHeight(form, fieldErrors)

	if len(fieldErrors) > 0 || !ok {
		return UpdateProfileValidation{FieldErrors: fieldErrors}
	}

	return UpdateProfileValidation{
		FieldErrors: fieldErrors,
		Payload: &domain.UpdateProfileRequest{
			UnitsPreference: units,
			DisplayName:     displayName,
			Gender:          gender,
			Birthdate:       birthdate,
			HeightCm:        heightCm,
		},
	}
}

func validateUnits(form url.Values, fieldErrors map[string]string) (domain.UnitsPreference, bool) {
	raw := optionalText(form, "unitsPreference")
	if raw != nil {
		switch units := domain.UnitsPreference(*raw); units {
		case domain.UnitsMetric, domain.UnitsImperial:
			return units, true
		}
	}
	fieldErrors["unitsPreference"] = "Units preference must be metric or imperial."
	return "", false
}

func validateDisplayName(form url.Values, fieldErrors map[string]string) *string {
	displayName := optionalText(form, "displayName")
	if displayName != nil && utf8.RuneCountInString(*displayName) > 100 {
		fieldErrors["displayName"] = "Display name cannot exceed 100 characters."
		return nil
	}
	return displayName
}

func validateGender(form url.Values, fieldErrors map[string]string) *domain.Gender {
	raw := optionalText(form, "gender")
	if raw == nil {
		return nil
	}
	switch gender := domain.Gender(*raw); gender {
	case domain.GenderMale, domain.GenderFemale, domain.GenderNonBinary, domain.GenderPreferNotSay:
		return &gender
	}
	fieldErrors["gender"] = "Please select a valid gender option."
	return nil
}

func validateBirthdate(form url.Values, fieldErrors map[string]string) *string {
	// Shape check only; birthdate calendar validity is the backend's call.
	birthdate := optionalText(form, "birthdate")
	if birthdate != nil && !isoDatePattern.MatchString(*birthdate) {
		fieldErrors["birthdate"] = "Birthdate must use the YYYY-MM-DD format."
		return nil
	}
	return birthdate
}

func validateHeight(form url.Values, fieldErrors map[string]string) *float64 {
	raw := optionalText(form, "heightCm")
	if raw == nil {
		return nil
	}
	parsed, ok := domain.ParseNumber(*raw)
	if !ok || parsed <= 0 || parsed > 300 {
		fieldErrors["heightCm"] = "Height must be a number between 0 and 300 cm."
		return nil
	}
	rounded := domain.Round2(parsed)
	return &rounded
}

// optionalText reads a trimmed form field, mapping blank to absent.
func optionalText(form url.Values, key string) *string {
	if !form.Has(key) {
		return nil
	}
	value := strings.TrimSpace(form.Get(key))
	if value == "" {
		return nil
	}
	return &value
}
