package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"alice@example.com",
		"alice.smith+orders@example.co.uk",
		"A@b.cd",
	}
	for _, email := range valid {
		assert.True(t, ValidateEmail(email), "expected %q to be valid", email)
	}

	invalid := []string{
		"",
		"alice",
		"alice@",
		"@example.com",
		"alice@example",
		"alice @example.com",
		"alice@exa mple.com",
	}
	for _, email := range invalid {
		assert.False(t, ValidateEmail(email), "expected %q to be invalid", email)
	}
}

func TestValidateEmailTrimsWhitespace(t *testing.T) {
	assert.True(t, ValidateEmail("  alice@example.com  "))
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"07911123456", "+447911123456"},
		{"+447911123456", "+447911123456"},
		{"020 7946 0958", "+442079460958"},
		{"+55 21 99999-8888", "+5521999998888"},
	}

	for _, tt := range tests {
		got, err := NormalizePhone(tt.in)
		require.NoError(t, err, "phone %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestNormalizePhoneInvalid(t *testing.T) {
	for _, in := range []string{"", "abc", "123"} {
		_, err := NormalizePhone(in)
		assert.Error(t, err, "phone %q", in)
	}
}
