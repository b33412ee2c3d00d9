package memory

import (
	"context"
	"sync"
	"time"

	"github.com/example/restorun-backoffice/internal/domain"
)

type SettingsRepo struct {
	mu    sync.RWMutex
	saved *domain.Settings
}

func NewSettingsRepo() *SettingsRepo { return &SettingsRepo{} }

func (r *SettingsRepo) Load(ctx context.Context) (domain.Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.saved == nil {
		return domain.Settings{}, domain.ErrNotFound
	}
	return *r.saved, nil
}

func (r *SettingsRepo) Save(ctx context.Context, s domain.Settings) error {
	r.mu.Lock()
	r.saved = &s
	r.mu.Unlock()
	return nil
}

type UploadRepo struct {
	t *table[domain.Upload]
}

func NewUploadRepo() *UploadRepo { return &UploadRepo{t: newTable[domain.Upload]()} }

func (r *UploadRepo) List(ctx context.Context) ([]domain.Upload, error) { return r.t.all(), nil }

func (r *UploadRepo) Get(ctx context.Context, id string) (domain.Upload, error) { return r.t.get(id) }

func (r *UploadRepo) Create(ctx context.Context, u domain.Upload) error { return r.t.insert(u.ID, u) }

func (r *UploadRepo) Delete(ctx context.Context, id string) error { return r.t.remove(id) }

// UserRepo индексирует пользователей по имени.
type UserRepo struct {
	t *table[domain.User]
}

func NewUserRepo() *UserRepo { return &UserRepo{t: newTable[domain.User]()} }

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	return r.t.get(username)
}

func (r *UserRepo) Create(ctx context.Context, u domain.User) error {
	return r.t.insert(u.Username, u)
}

type sessionEntry struct {
	s         domain.Session
	expiresAt time.Time
}

// SessionStore — сессии с TTL без Redis.
type SessionStore struct {
	t   *table[sessionEntry]
	now func() time.Time
}

func NewSessionStore() *SessionStore {
	return &SessionStore{t: newTable[sessionEntry](), now: time.Now}
}

func (st *SessionStore) Save(ctx context.Context, s domain.Session, ttl time.Duration) error {
	st.t.set(s.Token, sessionEntry{s: s, expiresAt: st.now().Add(ttl)})
	return nil
}

func (st *SessionStore) Get(ctx context.Context, token string) (domain.Session, error) {
	e, err := st.t.get(token)
	if err != nil {
		return domain.Session{}, err
	}
	if st.now().After(e.expiresAt) {
		_ = st.t.remove(token)
		return domain.Session{}, domain.ErrNotFound
	}
	return e.s, nil
}

func (st *SessionStore) Delete(ctx context.Context, token string) error {
	if err := st.t.remove(token); err != nil && err != domain.ErrNotFound {
		return err
	}
	return nil
}

var (
	_ domain.SettingsRepository = (*SettingsRepo)(nil)
	_ domain.UploadRepository   = (*UploadRepo)(nil)
	_ domain.UserRepository     = (*UserRepo)(nil)
	_ domain.SessionStore       = (*SessionStore)(nil)
)
