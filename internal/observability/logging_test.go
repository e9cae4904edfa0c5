package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"alice@example.com", "al***@example.com"},
		{"ab@example.com", "**@example.com"},
		{"a@example.com", "**@example.com"},
		{"not-an-email", "***"},
		{"", "***"},
		{"@example.com", "***"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MaskEmail(tt.in), "input %q", tt.in)
	}
}

func TestMaskSensitiveData(t *testing.T) {
	masked := MaskSensitiveData(map[string]interface{}{
		"email":  "alice@example.com",
		"code":   "1234",
		"status": "pending",
	})

	assert.Equal(t, "********", masked["email"])
	assert.Equal(t, "********", masked["code"])
	assert.Equal(t, "pending", masked["status"])
}
