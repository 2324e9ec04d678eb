package utils

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/saeedNW/go-divar/config"
)

// MaxImageSize is the per-file upload limit.
const MaxImageSize = 10 << 20 // 10MB

// tempFilesKey is the gin context key under which staged upload paths are
// registered so the error handler can sweep them on failure.
const tempFilesKey = "temp_upload_files"

var validImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// TempUploadDir returns the staging directory for in-flight uploads.
func TempUploadDir() string {
	return filepath.Join(config.Get().UploadDir, "temp")
}

// SaveTempImages stores up to max images from the named multipart field into
// the temp upload directory and registers them for sweeping. Validation
// failures are reported as 422.
func SaveTempImages(ctx *gin.Context, field string, max int) ([]string, error) {
	form, err := ctx.MultipartForm()
	if err != nil {
		return nil, NewUnprocessable("invalid multipart form")
	}

	files := form.File[field]
	if len(files) == 0 {
		return nil, nil
	}
	if len(files) > max {
		return nil, NewUnprocessable(fmt.Sprintf("at most %d images can be uploaded", max))
	}

	dir := TempUploadDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, NewInternal(err)
	}

	var paths []string
	for _, fh := range files {
		if err := validateImage(fh); err != nil {
			RemoveFiles(paths)
			return nil, err
		}

		ext := strings.ToLower(filepath.Ext(fh.Filename))
		dst := filepath.Join(dir, uuid.NewString()+ext)
		if err := ctx.SaveUploadedFile(fh, dst); err != nil {
			RemoveFiles(paths)
			return nil, NewInternal(err)
		}
		paths = append(paths, dst)
	}

	RegisterTempFiles(ctx, paths)
	return paths, nil
}

func validateImage(fh *multipart.FileHeader) error {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !validImageExts[ext] {
		return NewUnprocessable("The file format is invalid")
	}
	if fh.Size > MaxImageSize {
		return NewUnprocessable("The file size is larger than the maximum requirement")
	}
	return nil
}

// FinalizeUploads moves staged files into their final directory under the
// upload root and returns their public URL paths.
func FinalizeUploads(tempPaths []string, subdir string) ([]string, error) {
	if len(tempPaths) == 0 {
		return []string{}, nil
	}

	finalDir := filepath.Join(config.Get().UploadDir, subdir)
	if err := os.MkdirAll(finalDir, 0o755); err != nil {
		return nil, NewInternal(err)
	}

	urls := make([]string, 0, len(tempPaths))
	for _, src := range tempPaths {
		name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(src))
		dst := filepath.Join(finalDir, name)
		if err := os.Rename(src, dst); err != nil {
			return nil, NewInternal(err)
		}
		urls = append(urls, "/"+filepath.ToSlash(filepath.Join("uploads", subdir, name)))
	}
	return urls, nil
}

// RegisterTempFiles records staged upload paths on the request context.
func RegisterTempFiles(ctx *gin.Context, paths []string) {
	if len(paths) == 0 {
		return
	}
	if existing, ok := ctx.Get(tempFilesKey); ok {
		if prev, ok := existing.([]string); ok {
			paths = append(prev, paths...)
		}
	}
	ctx.Set(tempFilesKey, paths)
}

// TempFilesFrom returns staged upload paths recorded on the request context.
func TempFilesFrom(ctx *gin.Context) []string {
	if v, ok := ctx.Get(tempFilesKey); ok {
		if paths, ok := v.([]string); ok {
			return paths
		}
	}
	return nil
}

// RemoveFiles deletes files best-effort, ignoring already-removed ones.
func RemoveFiles(paths []string) {
	for _, p := range paths {
		if p == "" {
			continue
		}
		_ = os.Remove(p)
	}
}
