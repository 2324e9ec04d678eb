package middleware

import (
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "test-jwt-secret")
	os.Setenv("COOKIE_SECRET", "test-cookie-secret")
	// burst of one so the limiter can be exhausted deterministically
	os.Setenv("RATE_LIMIT_PER_MINUTE", "2")
	os.Exit(m.Run())
}
