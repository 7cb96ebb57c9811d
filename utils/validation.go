// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

// ValidatePhone checks if a phone number is in a valid international format
func ValidatePhone(phone string) bool {
	// Clean the phone number
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	// Allows + prefix followed by 7-15 digits
	regex := `^\+?[1-9]\d{1,14}$`
	match, _ := regexp.MatchString(regex, cleaned)
	return match
}

// NormalizePhone strips formatting characters so the same number always
// stores and compares identically.
func NormalizePhone(phone string) string {
	cleaned := strings.TrimSpace(phone)
	for _, ch := range []string{" ", "-", "(", ")"} {
		cleaned = strings.ReplaceAll(cleaned, ch, "")
	}
	return cleaned
}
