package utils

import (
	"net/url"

	"github.com/gin-gonic/gin"
)

// flashCookie carries a one-shot message across a redirect, replacing the
// cross-request controller state the legacy implementation used.
const flashCookie = "flash_message"

// SetFlash stores a signed message that the next rendered page will display
// once.
func SetFlash(ctx *gin.Context, message string) {
	ctx.SetCookie(flashCookie, SignCookieValue(url.QueryEscape(message)), 60, "/", "", false, true)
}

// PopFlash returns the pending flash message, if any, and clears it. A cookie
// that fails signature verification is discarded silently.
func PopFlash(ctx *gin.Context) string {
	raw, err := ctx.Cookie(flashCookie)
	if err != nil || raw == "" {
		return ""
	}
	ctx.SetCookie(flashCookie, "", -1, "/", "", false, true)
	value, err := VerifyCookieValue(raw)
	if err != nil {
		return ""
	}
	message, err := url.QueryUnescape(value)
	if err != nil {
		return ""
	}
	return message
}
