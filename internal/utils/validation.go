package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// emailRegex accepts local-part @ domain with at least one dot in the domain.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail checks that the email has a standard address shape. The value
// is kept case-sensitive as submitted; only the shape is validated.
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(strings.TrimSpace(email))
}

// NormalizePhone parses a customer phone number and returns it in E.164
// format. Numbers without a country code are assumed to be British, matching
// the storefront's market.
func NormalizePhone(phoneString string) (string, error) {
	cleanPhone := strings.TrimSpace(phoneString)
	if cleanPhone == "" {
		return "", fmt.Errorf("empty phone number")
	}

	region := ""
	if !strings.HasPrefix(cleanPhone, "+") {
		region = "GB"
	}

	num, err := phonenumbers.Parse(cleanPhone, region)
	if err != nil {
		return "", fmt.Errorf("failed to parse phone number: %w", err)
	}

	if !phonenumbers.IsValidNumber(num) {
		return "", fmt.Errorf("invalid phone number: %s", phoneString)
	}

	return phonenumbers.Format(num, phonenumbers.E164), nil
}
