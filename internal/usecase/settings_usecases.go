package usecase

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/example/restorun-backoffice/internal/domain"
)

// GetSettings — текущие настройки или значения по умолчанию.
type GetSettings struct {
	Repo domain.SettingsRepository
}

func (uc GetSettings) Execute(ctx context.Context) (domain.Settings, error) {
	s, err := uc.Repo.Load(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.DefaultSettings(), nil
	}
	if err != nil {
		return domain.Settings{}, errors.Wrap(err, "load settings")
	}
	return s, nil
}

type UpdateSettings struct {
	Repo domain.SettingsRepository
}

func (uc UpdateSettings) Execute(ctx context.Context, s domain.Settings) (domain.Settings, error) {
	if err := s.Validate(); err != nil {
		return domain.Settings{}, err
	}
	if err := uc.Repo.Save(ctx, s); err != nil {
		return domain.Settings{}, errors.Wrap(err, "save settings")
	}
	return s, nil
}

// LocationResolver определяет часовой пояс ресторана: настройки, затем Fallback, затем UTC.
type LocationResolver struct {
	Settings GetSettings
	Fallback *time.Location
}

func (r LocationResolver) Resolve(ctx context.Context) *time.Location {
	if r.Settings.Repo != nil {
		if s, err := r.Settings.Execute(ctx); err == nil {
			if loc, err := s.Location(); err == nil {
				return loc
			}
		}
	}
	if r.Fallback != nil {
		return r.Fallback
	}
	return time.UTC
}
