package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPendingCodeExpired(t *testing.T) {
	expiry := time.Date(2026, 3, 1, 9, 10, 0, 0, time.UTC)
	pending := &PendingCode{ExpiresAt: expiry}

	assert.False(t, pending.Expired(expiry.Add(-time.Second)))
	assert.False(t, pending.Expired(expiry), "exactly at expiry is still valid")
	assert.True(t, pending.Expired(expiry.Add(time.Second)))
}
