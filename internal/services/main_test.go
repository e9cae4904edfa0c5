package services

import (
	"os"
	"testing"

	"github.com/sweet-moments/storefront-api/internal/logging"
)

func TestMain(m *testing.M) {
	if err := logging.InitLogger(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}
