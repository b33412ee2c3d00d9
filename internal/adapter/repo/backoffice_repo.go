package repo

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/example/restorun-backoffice/internal/domain"
)

// PostgresSettingsRepo хранит настройки одной JSONB-строкой.
type PostgresSettingsRepo struct {
	Pool *pgxpool.Pool
}

func NewPostgresSettingsRepo(pool *pgxpool.Pool) *PostgresSettingsRepo {
	return &PostgresSettingsRepo{Pool: pool}
}

func (r *PostgresSettingsRepo) Load(ctx context.Context) (domain.Settings, error) {
	var raw []byte
	if err := r.Pool.QueryRow(ctx, selectSettingsSQL).Scan(&raw); err != nil {
		return domain.Settings{}, mapErr(err)
	}
	var s domain.Settings
	if err := json.Unmarshal(raw, &s); err != nil {
		return domain.Settings{}, errors.Wrap(err, "decode settings payload")
	}
	return s, nil
}

func (r *PostgresSettingsRepo) Save(ctx context.Context, s domain.Settings) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return errors.Wrap(err, "encode settings payload")
	}
	_, err = r.Pool.Exec(ctx, upsertSettingsSQL, raw)
	return err
}

type PostgresUploadRepo struct {
	Pool *pgxpool.Pool
}

func NewPostgresUploadRepo(pool *pgxpool.Pool) *PostgresUploadRepo {
	return &PostgresUploadRepo{Pool: pool}
}

func (r *PostgresUploadRepo) List(ctx context.Context) ([]domain.Upload, error) {
	rows, err := r.Pool.Query(ctx, selectUploadsSQL+` ORDER BY created_at DESC`)
	if err != nil {
		return nil, errors.Wrap(err, "query uploads")
	}
	defer rows.Close()
	out := make([]domain.Upload, 0)
	for rows.Next() {
		var u domain.Upload
		if err := rows.Scan(&u.ID, &u.FileName, &u.FilePath, &u.UserID, &u.CreatedAt); err != nil {
			return nil, errors.Wrap(err, "scan upload")
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *PostgresUploadRepo) Get(ctx context.Context, id string) (domain.Upload, error) {
	var u domain.Upload
	err := r.Pool.QueryRow(ctx, selectUploadsSQL+` WHERE id = $1`, id).
		Scan(&u.ID, &u.FileName, &u.FilePath, &u.UserID, &u.CreatedAt)
	return u, mapErr(err)
}

func (r *PostgresUploadRepo) Create(ctx context.Context, u domain.Upload) error {
	_, err := r.Pool.Exec(ctx, insertUploadSQL, u.ID, u.FileName, u.FilePath, u.UserID, u.CreatedAt)
	return mapErr(err)
}

func (r *PostgresUploadRepo) Delete(ctx context.Context, id string) error {
	return affectedOne(r.Pool.Exec(ctx, deleteUploadSQL, id))
}

type PostgresUserRepo struct {
	Pool *pgxpool.Pool
}

func NewPostgresUserRepo(pool *pgxpool.Pool) *PostgresUserRepo {
	return &PostgresUserRepo{Pool: pool}
}

func (r *PostgresUserRepo) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	var (
		u    domain.User
		role string
	)
	err := r.Pool.QueryRow(ctx, selectUserByNameSQL, username).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &role, &u.CreatedAt)
	u.Role = domain.Role(role)
	return u, mapErr(err)
}

func (r *PostgresUserRepo) Create(ctx context.Context, u domain.User) error {
	_, err := r.Pool.Exec(ctx, insertUserSQL, u.ID, u.Username, u.PasswordHash, string(u.Role), u.CreatedAt)
	return mapErr(err)
}

var (
	_ domain.SettingsRepository = (*PostgresSettingsRepo)(nil)
	_ domain.UploadRepository   = (*PostgresUploadRepo)(nil)
	_ domain.UserRepository     = (*PostgresUserRepo)(nil)
)
