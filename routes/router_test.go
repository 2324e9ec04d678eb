package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "divar-routes-test")
	if err != nil {
		panic(err)
	}
	os.Setenv("JWT_SECRET", "test-jwt-secret")
	os.Setenv("COOKIE_SECRET", "test-cookie-secret")
	os.Setenv("GIN_MODE", "test")
	os.Setenv("GIN_PATH", dir+"/gin.log")
	os.Setenv("UPLOAD_DIR", dir)
	// templates are loaded relative to the repository root
	if err := os.Chdir(".."); err != nil {
		panic(err)
	}
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

// newTestRouter builds the full router against a lazily connected client, so
// routes that fail before touching the database can be exercised offline.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI("mongodb://127.0.0.1:27017"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })
	return SetupRouter(client.Database("divar_test"))
}

func TestShowPostIsPublic(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/post/single/not-a-hex-id", nil))

	// a malformed id must reach the post lookup, not bounce off the auth guard
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPostRoutesRequireAuth(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{"/post/create", "/post/my"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}
