package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

type LocalStore struct {
	Dir string
}

func NewLocal(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory, %w", err)
	}

	return &LocalStore{Dir: dir}, nil
}

func (l *LocalStore) Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) error {
	f, err := os.Create(filepath.Join(l.Dir, filepath.Base(name)))
	if err != nil {
		return fmt.Errorf("failed to create file, %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return fmt.Errorf("failed to write file, %w", err)
	}

	return nil
}

func (l *LocalStore) Delete(ctx context.Context, name string) error {
	err := os.Remove(filepath.Join(l.Dir, filepath.Base(name)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	return nil
}

func (l *LocalStore) Serve(c *gin.Context, name string) {
	// filepath.Base strips any traversal attempt from the route param
	p := filepath.Join(l.Dir, filepath.Base(name))

	if _, err := os.Stat(p); err != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
			"error": "Image not found",
		})
		return
	}

	c.File(p)
}
