package service

import (
	"errors"
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/net/idna"
)

var (
	emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-']+@[a-z0-9.-]+\.[a-z]{2,}$`)
	idnaProfile  = idna.Lookup
)

const defaultPhoneRegion = "SE"

// ErrInvalidEmail indicates the supplied email address is not usable.
var ErrInvalidEmail = errors.New("invalid email address")

// NormalizeEmail lowercases, trims and validates an email address,
// including an IDNA check on the domain part.
func NormalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" || !emailPattern.MatchString(email) {
		return "", ErrInvalidEmail
	}
	parts := strings.SplitN(email, "@", 2)
	domain := parts[1]
	if !isDomainValid(domain) {
		return "", ErrInvalidEmail
	}
	if asciiDomain, err := idnaProfile.ToASCII(domain); err != nil || asciiDomain == "" {
		return "", ErrInvalidEmail
	}
	return email, nil
}

func isDomainValid(domain string) bool {
	if domain == "" || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	if strings.Contains(domain, "..") {
		return false
	}
	return strings.Contains(domain, ".")
}

// NormalizePhone formats a phone number to E.164 for the given region,
// returning the empty string when the input cannot be parsed as a valid
// number.
func NormalizePhone(raw, region string) string {
	phone := strings.TrimSpace(raw)
	if phone == "" {
		return ""
	}
	if region == "" {
		region = defaultPhoneRegion
	}
	parsed, err := phonenumbers.Parse(phone, region)
	if err != nil {
		return ""
	}
	if !phonenumbers.IsValidNumber(parsed) {
		return ""
	}
	return phonenumbers.Format(parsed, phonenumbers.E164)
}

func normalizeString(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}
