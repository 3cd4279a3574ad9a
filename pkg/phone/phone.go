// Package phone normalizes and validates patient and clinic phone numbers.
// All numbers are stored in E.164 form; parsing defaults to the clinic's
// home region when the caller omits the country code.
package phone

import (
	"errors"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion is the region used to parse numbers without a country code.
const DefaultRegion = "KE"

var (
	ErrEmpty   = errors.New("phone number is empty")
	ErrInvalid = errors.New("phone number is not valid")
)

// Normalize parses a raw phone number and returns it in E.164 format
// (e.g., "+254712345678"). Numbers without a leading + are interpreted
// in the default region.
func Normalize(raw string) (string, error) {
	return NormalizeForRegion(raw, DefaultRegion)
}

// NormalizeForRegion parses a raw phone number against the given ISO
// 3166-1 alpha-2 region and returns it in E.164 format.
func NormalizeForRegion(raw, region string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmpty
	}

	num, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return "", ErrInvalid
	}

	if !phonenumbers.IsValidNumber(num) {
		return "", ErrInvalid
	}

	return phonenumbers.Format(num, phonenumbers.E164), nil
}

// IsValid reports whether the raw number parses to a valid phone number
// in the default region.
func IsValid(raw string) bool {
	_, err := Normalize(raw)
	return err == nil
}

// Region returns the ISO region code a valid number belongs to
// (e.g., "KE" for +254 numbers).
func Region(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmpty
	}

	num, err := phonenumbers.Parse(raw, DefaultRegion)
	if err != nil {
		return "", ErrInvalid
	}

	if !phonenumbers.IsValidNumber(num) {
		return "", ErrInvalid
	}

	return phonenumbers.GetRegionCodeForNumber(num), nil
}

// FormatNational renders a valid number in national notation for display
// (e.g., "0712 345678"). Returns the input unchanged if it cannot be parsed.
func FormatNational(raw string) string {
	num, err := phonenumbers.Parse(strings.TrimSpace(raw), DefaultRegion)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return raw
	}
	return phonenumbers.Format(num, phonenumbers.NATIONAL)
}
