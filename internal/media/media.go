// Package media определяет тип загруженного файла по содержимому.
package media

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/shenikar/pothole_reporting_system/internal/models"
)

// IsSupported - к анализу принимаются только изображения и видео
func IsSupported(mime *mimetype.MIME) bool {
	for m := mime; m != nil; m = m.Parent() {
		if strings.HasPrefix(m.String(), "image/") || strings.HasPrefix(m.String(), "video/") {
			return true
		}
	}
	return false
}

// Sniff читает начало r и строит MediaRef. Имя и размер берутся у вызывающего,
// тип файла - только из содержимого.
func Sniff(r io.Reader, name string, size int64) (*models.MediaRef, error) {
	mime, err := mimetype.DetectReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to detect media type: %w", err)
	}
	if !IsSupported(mime) {
		return nil, fmt.Errorf("%w: unsupported media type %s", models.ErrInvalidInput, mime.String())
	}
	return &models.MediaRef{
		Name:        name,
		ContentType: mime.String(),
		Size:        size,
	}, nil
}

// FromFile открывает локальный файл и возвращает MediaRef со ссылкой file://
func FromFile(path string) (*models.MediaRef, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to stat media file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", models.ErrInvalidInput, path)
	}

	f, err := os.Open(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to open media file: %w", err)
	}
	defer f.Close()

	ref, err := Sniff(f, info.Name(), info.Size())
	if err != nil {
		return nil, err
	}
	ref.URL = "file://" + filepath.ToSlash(abs)
	return ref, nil
}
