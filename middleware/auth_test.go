package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/saeedNW/go-divar/utils"
)

func newTestContext(t *testing.T) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest(http.MethodGet, "/user/profile", nil)
	return ctx
}

func TestExtractToken(t *testing.T) {
	t.Run("no credentials", func(t *testing.T) {
		ctx := newTestContext(t)
		assert.Empty(t, extractToken(ctx))
	})

	t.Run("signed cookie", func(t *testing.T) {
		ctx := newTestContext(t)
		signed := utils.SignCookieValue("Bearer some.jwt.token")
		ctx.Request.AddCookie(&http.Cookie{Name: utils.AccessTokenCookie, Value: signed})

		assert.Equal(t, "some.jwt.token", extractToken(ctx))
	})

	t.Run("tampered cookie rejected", func(t *testing.T) {
		ctx := newTestContext(t)
		ctx.Request.AddCookie(&http.Cookie{Name: utils.AccessTokenCookie, Value: "Bearer forged.token.sig"})

		assert.Empty(t, extractToken(ctx))
	})

	t.Run("header fallback", func(t *testing.T) {
		ctx := newTestContext(t)
		ctx.Request.Header.Set(utils.AccessTokenCookie, "Bearer header.jwt.token")

		assert.Equal(t, "header.jwt.token", extractToken(ctx))
	})

	t.Run("scheme is case insensitive", func(t *testing.T) {
		ctx := newTestContext(t)
		ctx.Request.Header.Set(utils.AccessTokenCookie, "bearer header.jwt.token")

		assert.Equal(t, "header.jwt.token", extractToken(ctx))
	})

	t.Run("wrong scheme rejected", func(t *testing.T) {
		ctx := newTestContext(t)
		ctx.Request.Header.Set(utils.AccessTokenCookie, "Basic dXNlcjpwYXNz")

		assert.Empty(t, extractToken(ctx))
	})

	t.Run("bare token rejected", func(t *testing.T) {
		ctx := newTestContext(t)
		ctx.Request.Header.Set(utils.AccessTokenCookie, "some.jwt.token")

		assert.Empty(t, extractToken(ctx))
	})
}
