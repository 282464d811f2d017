package minio

import (
	"context"
	"sync"
	"time"

	"github.com/DRSN-tech/frag-avenue/internal/usecase"
	"github.com/DRSN-tech/frag-avenue/pkg/e"
	"github.com/DRSN-tech/frag-avenue/pkg/jitter"
	"github.com/DRSN-tech/frag-avenue/pkg/logger"
)

const (
	presignAttempts    = 3
	presignBaseBackoff = 100 * time.Millisecond
	presignMaxBackoff  = time.Second
)

type presigned struct {
	url       string
	refreshAt time.Time
}

// MinioInfrastructure подписывает ссылки на изображения и держит их в кэше
// до половины срока действия.
type MinioInfrastructure struct {
	imageRepo usecase.ImageRepository
	logger    logger.Logger
	now       func() time.Time

	mu    sync.Mutex
	cache map[string]presigned
}

func NewMinioInfrastructure(imageRepo usecase.ImageRepository, logger logger.Logger) *MinioInfrastructure {
	return &MinioInfrastructure{
		imageRepo: imageRepo,
		logger:    logger,
		now:       time.Now,
		cache:     make(map[string]presigned),
	}
}

// ImageURL возвращает подписанную ссылку на объект, повторяя запрос с экспоненциальной задержкой и jitter.
func (m *MinioInfrastructure) ImageURL(ctx context.Context, key string) (string, error) {
	const op = "MinioInfrastructure.ImageURL"

	if u, ok := m.cached(key); ok {
		return u, nil
	}

	var lastErr error
	for attempt := 0; attempt < presignAttempts; attempt++ {
		u, ttl, err := m.imageRepo.PresignGet(ctx, key)
		if err == nil {
			m.store(key, u, ttl)
			return u, nil
		}
		lastErr = err
		m.logger.Warnf("presign attempt %d for %s failed: %v", attempt+1, key, e.Wrap(op, err))

		if attempt == presignAttempts-1 {
			break
		}

		select {
		case <-time.After(jitter.Backoff(presignBaseBackoff, presignMaxBackoff, attempt, jitter.DefaultJitter)):
		case <-ctx.Done():
			return "", e.Wrap(op, ctx.Err())
		}
	}

	return "", e.Wrap(op, lastErr)
}

func (m *MinioInfrastructure) cached(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.cache[key]
	if !ok || !m.now().Before(p.refreshAt) {
		return "", false
	}

	return p.url, true
}

func (m *MinioInfrastructure) store(key, u string, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.cache[key] = presigned{url: u, refreshAt: m.now().Add(ttl / 2)}
}
