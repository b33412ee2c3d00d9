package blob

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/example/restorun-backoffice/internal/domain"
)

// DiskStore кладёт загрузки в каталог Root.
type DiskStore struct {
	Root string
}

func NewDiskStore(root string) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create upload dir %s", root)
	}
	return &DiskStore{Root: root}, nil
}

// Put пишет не больше limit байт; превышение удаляет файл и возвращает ошибку валидации.
func (s *DiskStore) Put(ctx context.Context, name string, r io.Reader, limit int64) (string, error) {
	path := filepath.Join(s.Root, filepath.Base(name))
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", errors.Wrapf(domain.ErrConflict, "file %s", name)
		}
		return "", errors.Wrap(err, "create upload file")
	}

	src := r
	if limit > 0 {
		src = io.LimitReader(r, limit+1)
	}
	n, err := io.Copy(f, src)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil && limit > 0 && n > limit {
		err = domain.Invalid("file exceeds %d bytes", limit)
	}
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		_ = os.Remove(path)
		return "", errors.WithMessage(err, "store upload")
	}
	return path, nil
}

func (s *DiskStore) Delete(ctx context.Context, path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.Wrapf(err, "remove %s", path)
	}
	return nil
}

var _ domain.BlobStore = (*DiskStore)(nil)
