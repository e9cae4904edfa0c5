package services

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeGenerator_Generate(t *testing.T) {
	gen := NewCodeGenerator(10 * time.Minute)

	for i := 0; i < 1000; i++ {
		code, _ := gen.Generate()
		require.Len(t, code, 4, "code %q is not four digits", code)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 1000)
		assert.LessOrEqual(t, n, 9999)
	}
}

func TestCodeGenerator_GenerateExpiry(t *testing.T) {
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	gen := NewCodeGenerator(10 * time.Minute)
	gen.now = func() time.Time { return issued }

	_, expiresAt := gen.Generate()
	assert.Equal(t, issued.Add(10*time.Minute), expiresAt)
}

func TestCodeGenerator_GenerateBounds(t *testing.T) {
	gen := NewCodeGenerator(time.Minute)

	gen.intn = func(n int) int { return 0 }
	code, _ := gen.Generate()
	assert.Equal(t, "1000", code)

	gen.intn = func(n int) int { return n - 1 }
	code, _ = gen.Generate()
	assert.Equal(t, "9999", code)
}
