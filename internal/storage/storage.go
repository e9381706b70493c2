// Package storage abstracts where uploaded plant and avatar images
// live. Local disk is the default, S3 behind CloudFront is the option
// for multi-instance deployments.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"
	"verdant/plantcare-api/pkg/util"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

type Store interface {
	Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, name string) error
	// Serve writes the image response for GET /api/uploads/:filename,
	// either by streaming the file or by redirecting to a CDN
	Serve(c *gin.Context, name string)
}

func NewFromConfig() (Store, error) {
	switch viper.GetString("storage.type") {
	case "s3":
		return NewS3()
	case "local":
		return NewLocal(viper.GetString("storage.local_dir"))
	default:
		return nil, errors.New("invalid storage type provided")
	}
}

// MakeName builds a collision-free object name for an upload while
// keeping the original extension, e.g. plant-1718031622123-kXu2mQpLw.jpg
func MakeName(prefix, originalName string) string {
	ext := strings.ToLower(path.Ext(originalName))
	return fmt.Sprintf("%s-%d-%s%s", prefix, time.Now().UnixMilli(), util.RandStr(9), ext)
}
