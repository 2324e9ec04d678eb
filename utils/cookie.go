package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/saeedNW/go-divar/config"
)

// AccessTokenCookie is the cookie (and fallback header) carrying the bearer token.
const AccessTokenCookie = "access_token"

// SignCookieValue appends an HMAC-SHA256 signature so tampering is detectable.
// The format is "<value>.<base64url signature>".
func SignCookieValue(value string) string {
	return value + "." + cookieSignature(value)
}

// VerifyCookieValue checks the signature of a signed cookie value and returns
// the original value.
func VerifyCookieValue(signed string) (string, error) {
	idx := strings.LastIndex(signed, ".")
	if idx < 0 {
		return "", errors.New("cookie value is not signed")
	}
	value, sig := signed[:idx], signed[idx+1:]
	if !hmac.Equal([]byte(sig), []byte(cookieSignature(value))) {
		return "", errors.New("cookie signature mismatch")
	}
	return value, nil
}

func cookieSignature(value string) string {
	mac := hmac.New(sha256.New, []byte(config.Get().CookieSecret))
	mac.Write([]byte(value))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
