package usecase

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/example/restorun-backoffice/internal/domain"
)

// UploadFile — сохранить файл в хранилище и записать метаданные.
type UploadFile struct {
	Repo     domain.UploadRepository
	Blobs    domain.BlobStore
	Events   domain.EventPublisher
	MaxBytes int64
	Now      func() time.Time
	Log      *zap.SugaredLogger
}

func (uc UploadFile) Execute(ctx context.Context, userID, fileName string, r io.Reader) (domain.Upload, error) {
	if err := domain.CheckUploadName(fileName); err != nil {
		return domain.Upload{}, err
	}
	base := filepath.Base(fileName)
	ts := now(uc.Now).UTC()
	stored := fmt.Sprintf("%d-%s", ts.UnixMilli(), base)

	path, err := uc.Blobs.Put(ctx, stored, r, uc.MaxBytes)
	if err != nil {
		return domain.Upload{}, err
	}

	u := domain.Upload{
		ID:        uuid.NewString(),
		FileName:  base,
		FilePath:  path,
		UserID:    userID,
		CreatedAt: ts,
	}
	if err := uc.Repo.Create(ctx, u); err != nil {
		if derr := uc.Blobs.Delete(ctx, path); derr != nil && uc.Log != nil {
			uc.Log.Warnw("orphaned upload blob", "path", path, "error", derr)
		}
		return domain.Upload{}, errors.Wrap(err, "create upload record")
	}
	if err := uc.Events.Publish(ctx, domain.EventUploadCreated, u); err != nil && uc.Log != nil {
		uc.Log.Warnw("publish upload event", "upload_id", u.ID, "error", err)
	}
	return u, nil
}

type ListUploads struct {
	Repo domain.UploadRepository
}

func (uc ListUploads) Execute(ctx context.Context) ([]domain.Upload, error) {
	all, err := uc.Repo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list uploads")
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return all, nil
}

// DeleteUpload удаляет запись, затем файл; отсутствие файла не считается ошибкой.
type DeleteUpload struct {
	Repo   domain.UploadRepository
	Blobs  domain.BlobStore
	Events domain.EventPublisher
	Log    *zap.SugaredLogger
}

func (uc DeleteUpload) Execute(ctx context.Context, id string) error {
	u, err := uc.Repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.Repo.Delete(ctx, id); err != nil {
		return errors.Wrapf(err, "delete upload %s", id)
	}
	if err := uc.Blobs.Delete(ctx, u.FilePath); err != nil {
		return errors.Wrapf(err, "delete blob %s", u.FilePath)
	}
	if err := uc.Events.Publish(ctx, domain.EventUploadDeleted, u); err != nil && uc.Log != nil {
		uc.Log.Warnw("publish upload event", "upload_id", u.ID, "error", err)
	}
	return nil
}
