package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flashContext(t *testing.T, cookies []*http.Cookie) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		ctx.Request.AddCookie(c)
	}
	return ctx, w
}

func TestFlashRoundTrip(t *testing.T) {
	setCtx, setW := flashContext(t, nil)
	SetFlash(setCtx, "آگهی با موفقیت ثبت شد")

	cookies := setW.Result().Cookies()
	require.NotEmpty(t, cookies)

	getCtx, getW := flashContext(t, cookies)
	assert.Equal(t, "آگهی با موفقیت ثبت شد", PopFlash(getCtx))

	cleared := getW.Result().Cookies()
	require.NotEmpty(t, cleared)
	assert.Less(t, cleared[0].MaxAge, 0)
}

func TestFlashRejectsTamperedCookie(t *testing.T) {
	ctx, _ := flashContext(t, []*http.Cookie{{Name: flashCookie, Value: "forged.c2lnbmF0dXJl"}})
	assert.Equal(t, "", PopFlash(ctx))
}

func TestFlashMissingCookie(t *testing.T) {
	ctx, _ := flashContext(t, nil)
	assert.Equal(t, "", PopFlash(ctx))
}
