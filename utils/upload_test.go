package utils

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinalizeUploads(t *testing.T) {
	dir := TempUploadDir()
	require.NoError(t, os.MkdirAll(dir, 0o755))

	src := filepath.Join(dir, "staged.jpg")
	require.NoError(t, os.WriteFile(src, []byte("img"), 0o644))

	urls, err := FinalizeUploads([]string{src}, "posts")
	require.NoError(t, err)
	require.Len(t, urls, 1)

	assert.True(t, strings.HasPrefix(urls[0], "/uploads/posts/"))
	assert.True(t, strings.HasSuffix(urls[0], "-staged.jpg"))

	moved := filepath.Join(TempUploadDir(), "..", "posts", filepath.Base(urls[0]))
	_, err = os.Stat(moved)
	assert.NoError(t, err)

	_, err = os.Stat(src)
	assert.True(t, os.IsNotExist(err))
}

func TestFinalizeUploads_Empty(t *testing.T) {
	urls, err := FinalizeUploads(nil, "posts")
	require.NoError(t, err)
	assert.Empty(t, urls)
}

func TestRegisterAndSweepTempFiles(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Nil(t, TempFilesFrom(ctx))

	RegisterTempFiles(ctx, []string{"/tmp/a.jpg"})
	RegisterTempFiles(ctx, []string{"/tmp/b.jpg"})
	assert.Equal(t, []string{"/tmp/a.jpg", "/tmp/b.jpg"}, TempFilesFrom(ctx))
}

func TestRemoveFiles_IgnoresMissing(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "x.jpg")
	require.NoError(t, os.WriteFile(existing, []byte("img"), 0o644))

	RemoveFiles([]string{existing, filepath.Join(dir, "missing.jpg"), ""})

	_, err := os.Stat(existing)
	assert.True(t, os.IsNotExist(err))
}
