package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/SergeyBogomolovv/prontix-store/internal/entities"
)

// PrivateStorage открывает файлы товаров строго внутри корневой директории.
// os.Root не даёт выйти за корень ни через "..", ни через симлинки.
type PrivateStorage struct {
	root *os.Root
}

func NewPrivateStorage(dir string) (*PrivateStorage, error) {
	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open private dir: %w", err)
	}
	return &PrivateStorage{root: root}, nil
}

// Open открывает файл по ссылке из каталога. Вызывающий обязан закрыть файл.
func (s *PrivateStorage) Open(ctx context.Context, ref string) (*os.File, fs.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	name := filepath.FromSlash(ref)
	if ref == "" || !filepath.IsLocal(name) {
		return nil, nil, fmt.Errorf("%w: reference %q is outside private storage", entities.ErrFileNotFound, ref)
	}

	f, err := s.root.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil, entities.ErrFileNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if !info.Mode().IsRegular() {
		f.Close()
		return nil, nil, entities.ErrFileNotFound
	}

	return f, info, nil
}

func (s *PrivateStorage) Close() error {
	return s.root.Close()
}
