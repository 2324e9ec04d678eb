package utils

import (
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	// The config package caches on first load, so secrets must be in place
	// before any test touches it.
	os.Setenv("JWT_SECRET", "test-jwt-secret")
	os.Setenv("COOKIE_SECRET", "test-cookie-secret")

	dir, err := os.MkdirTemp("", "uploads")
	if err != nil {
		panic(err)
	}
	os.Setenv("UPLOAD_DIR", dir)

	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}
