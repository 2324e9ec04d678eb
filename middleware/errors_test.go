package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saeedNW/go-divar/utils"
)

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(handler gin.HandlerFunc) *gin.Engine {
		r := gin.New()
		r.Use(ErrorHandler())
		r.GET("/t", handler)
		return r
	}

	t.Run("http error becomes envelope", func(t *testing.T) {
		r := newRouter(func(ctx *gin.Context) {
			ctx.Error(utils.NewNotFound("category notfound"))
		})

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/t", nil))

		require.Equal(t, http.StatusNotFound, rec.Code)

		var body utils.JSONResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, http.StatusNotFound, body.Status)
		assert.Equal(t, "category notfound", body.Message)
	})

	t.Run("validation error carries field map", func(t *testing.T) {
		r := newRouter(func(ctx *gin.Context) {
			ctx.Error(utils.NewValidation(map[string]string{"mobile": "invalid mobile number"}))
		})

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/t", nil))

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var body utils.JSONResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "invalid mobile number", body.Errors["mobile"])
	})

	t.Run("unknown error becomes internal", func(t *testing.T) {
		r := newRouter(func(ctx *gin.Context) {
			ctx.Error(errors.New("mongo: connection reset"))
		})

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/t", nil))

		require.Equal(t, http.StatusInternalServerError, rec.Code)

		var body utils.JSONResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Internal server error", body.Message)
	})

	t.Run("no error leaves response untouched", func(t *testing.T) {
		r := newRouter(func(ctx *gin.Context) {
			utils.SendSuccess(ctx, http.StatusOK, "", gin.H{"ok": true})
		})

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/t", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var body utils.JSONResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body.Success)
	})

	t.Run("staged uploads are swept on failure", func(t *testing.T) {
		dir := t.TempDir()
		staged := filepath.Join(dir, "staged.jpg")
		require.NoError(t, os.WriteFile(staged, []byte("img"), 0o644))

		r := newRouter(func(ctx *gin.Context) {
			utils.RegisterTempFiles(ctx, []string{staged})
			ctx.Error(utils.NewBadRequest("Invalid request"))
		})

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/t", nil))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		_, err := os.Stat(staged)
		assert.True(t, os.IsNotExist(err))
	})
}
