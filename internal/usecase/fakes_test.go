package usecase

import (
	"bytes"
	"context"
	"io"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/example/restorun-backoffice/internal/domain"
)

var testNow = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

type publishedEvent struct {
	key     string
	payload any
}

type recordingBus struct {
	mu     sync.Mutex
	events []publishedEvent
	err    error
}

func (b *recordingBus) Publish(ctx context.Context, routingKey string, payload any) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil {
		return b.err
	}
	b.events = append(b.events, publishedEvent{key: routingKey, payload: payload})
	return nil
}

type memBlobs struct {
	files map[string][]byte
}

func newMemBlobs() *memBlobs { return &memBlobs{files: make(map[string][]byte)} }

func (m *memBlobs) Put(ctx context.Context, name string, r io.Reader, limit int64) (string, error) {
	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(r, limit+1))
	if err != nil {
		return "", err
	}
	if n > limit {
		return "", domain.Invalid("file exceeds %d bytes", limit)
	}
	path := "/blobs/" + name
	m.files[path] = buf.Bytes()
	return path, nil
}

func (m *memBlobs) Delete(ctx context.Context, path string) error {
	delete(m.files, path)
	return nil
}

type stubSource struct {
	orders []domain.OrderRecord
	since  time.Time
	err    error
}

func (s *stubSource) FetchCompletedOrders(ctx context.Context, since time.Time) ([]domain.OrderRecord, error) {
	s.since = since
	return s.orders, s.err
}

var errBoom = errors.New("boom")
