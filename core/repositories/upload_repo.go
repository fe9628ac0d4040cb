package repositories

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// UploadRepo stores uploads transiently: each file gets a uuid name so
// concurrent requests never collide, and the caller removes it once
// the prediction is done.
type UploadRepo interface {
	Save(file *multipart.FileHeader) (string, error)
	Remove(path string)
}

type uploadRepoImpl struct {
	dir string
}

func NewUploadRepo(dir string) UploadRepo {
	return &uploadRepoImpl{dir: dir}
}

func (r *uploadRepoImpl) Save(file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(r.dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("create upload directory: %w", err)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := uuid.New().String() + strings.ToLower(filepath.Ext(file.Filename))
	path := filepath.Join(r.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return "", fmt.Errorf("write upload file: %w", err)
	}

	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("close upload file: %w", err)
	}

	return path, nil
}

func (r *uploadRepoImpl) Remove(path string) {
	if err := os.Remove(path); err != nil {
		fmt.Printf("[Upload Storage] Warning: could not delete file %s: %v\n", path, err)
	}
}
