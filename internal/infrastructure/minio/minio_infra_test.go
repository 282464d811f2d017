package minio

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DRSN-tech/frag-avenue/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeImageRepo struct {
	calls    int
	failures int
	ttl      time.Duration
}

func (f *fakeImageRepo) PresignGet(_ context.Context, key string) (string, time.Duration, error) {
	f.calls++
	if f.calls <= f.failures {
		return "", 0, errors.New("minio unavailable")
	}

	return "https://minio.local/products/" + key + "?sig=" + time.Duration(f.calls).String(), f.ttl, nil
}

func TestImageURLCachesUntilHalfTTL(t *testing.T) {
	repo := &fakeImageRepo{ttl: 10 * time.Minute}
	infra := NewMinioInfrastructure(repo, logger.NewNopLogger())
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	infra.now = func() time.Time { return now }

	first, err := infra.ImageURL(context.Background(), "p1.jpg")
	require.NoError(t, err)

	again, err := infra.ImageURL(context.Background(), "p1.jpg")
	require.NoError(t, err)
	assert.Equal(t, first, again)
	assert.Equal(t, 1, repo.calls)

	now = now.Add(5 * time.Minute)
	refreshed, err := infra.ImageURL(context.Background(), "p1.jpg")
	require.NoError(t, err)
	assert.NotEqual(t, first, refreshed)
	assert.Equal(t, 2, repo.calls)
}

func TestImageURLRetries(t *testing.T) {
	repo := &fakeImageRepo{ttl: time.Minute, failures: 2}
	infra := NewMinioInfrastructure(repo, logger.NewNopLogger())

	u, err := infra.ImageURL(context.Background(), "p2.jpg")
	require.NoError(t, err)
	assert.Contains(t, u, "p2.jpg")
	assert.Equal(t, 3, repo.calls)
}

func TestImageURLGivesUp(t *testing.T) {
	repo := &fakeImageRepo{ttl: time.Minute, failures: 10}
	infra := NewMinioInfrastructure(repo, logger.NewNopLogger())

	_, err := infra.ImageURL(context.Background(), "p3.jpg")
	assert.Error(t, err)
	assert.Equal(t, presignAttempts, repo.calls)
}
