package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	valid := []string{
		"+905551234567",
		"+90 555 123 45 67",
		"(555) 123-4567",
		"5551234567",
	}
	for _, phone := range valid {
		assert.True(t, ValidatePhone(phone), "expected %q to validate", phone)
	}

	invalid := []string{
		"",
		"abc",
		"+",
		"05551234567", // leading zero is rejected by the E.164 check
	}
	for _, phone := range invalid {
		assert.False(t, ValidatePhone(phone), "expected %q to fail", phone)
	}
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "+905551234567", NormalizePhone(" +90 555 123-45-67 "))
	assert.Equal(t, "05551234567", NormalizePhone("(0555) 123 45 67"))
}
