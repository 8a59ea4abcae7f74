package domain

import (
	"math"
	"strconv"
	"strings"
)

const cmPerInch = 2.54

// CmToInches converts centimeters to inches without rounding.
func CmToInches(heightCm float64) float64 {
	return heightCm / cmPerInch
}

// InchesToCm converts inches to centimeters without rounding.
func InchesToCm(heightInches float64) float64 {
	return heightInches * cmPerInch
}

// ParseNumber parses a form field as a finite number. A blank string means
// "absent", not zero; values that overflow to infinity are rejected.
func ParseNumber(value string) (float64, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// Round2 rounds to two decimal places. Applied only at the submission
// boundary; the conversion primitives themselves never round.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatHeightForUnits renders a stored height for a single combined height
// field, rounded to one decimal place in the display unit.
func FormatHeightForUnits(heightCm *float64, units UnitsPreference) string {
	if heightCm == nil {
		return ""
	}
	if units == UnitsMetric {
		return formatRounded1(*heightCm)
	}
	return formatRounded1(CmToInches(*heightCm))
}

// HeightImperialParts splits a stored height into whole feet and inches
// strings for the split-field form variant. Inches keep one decimal place.
func HeightImperialParts(heightCm *float64) (feet, inches string) {
	if heightCm == nil {
		return "", ""
	}
	totalInches := CmToInches(*heightCm)
	wholeFeet := math.Floor(totalInches / 12)
	return formatTrimmed(wholeFeet), formatRounded1(totalInches - wholeFeet*12)
}

// ImperialHeightToCm combines feet and inches form fields into a canonical
// centimeter string rounded to two decimals. Both fields blank yields an
// empty result; if either field is present, both must parse.
func ImperialHeightToCm(feetRaw, inchesRaw string) string {
	if strings.TrimSpace(feetRaw) == "" && strings.TrimSpace(inchesRaw) == "" {
		return ""
	}
	feet, ok := ParseNumber(feetRaw)
	if !ok {
		return ""
	}
	inches, ok := ParseNumber(inchesRaw)
	if !ok {
		return ""
	}
	return formatTrimmed(Round2(InchesToCm(feet*12 + inches)))
}

func formatRounded1(v float64) string {
	return formatTrimmed(math.Round(v*10) / 10)
}

func formatTrimmed(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
