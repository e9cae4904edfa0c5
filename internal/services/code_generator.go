package services

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/sweet-moments/storefront-api/internal/models"
)

// CodeGenerator produces one-time login codes with an absolute expiry. The
// clock and random source are injectable so expiry and distribution can be
// exercised in tests.
type CodeGenerator struct {
	ttl  time.Duration
	now  func() time.Time
	intn func(n int) int
}

// NewCodeGenerator creates a generator issuing codes valid for ttl.
func NewCodeGenerator(ttl time.Duration) *CodeGenerator {
	return &CodeGenerator{
		ttl:  ttl,
		now:  time.Now,
		intn: rand.Intn,
	}
}

// Generate returns a 4-digit code drawn uniformly from [1000, 9999] and its
// expiry timestamp. Codes below 1000 are never produced, so every code is
// exactly four digits without leading zeros.
func (g *CodeGenerator) Generate() (string, time.Time) {
	code := models.AuthCodeMin + g.intn(models.AuthCodeMax-models.AuthCodeMin+1)
	return strconv.Itoa(code), g.now().Add(g.ttl)
}
