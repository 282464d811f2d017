package cfg

import (
	"testing"
	"time"

	"github.com/DRSN-tech/frag-avenue/pkg/e"
	"github.com/DRSN-tech/frag-avenue/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"STORAGE_DRIVER", "CATALOG_SOURCE", "MINIO_ENDPOINT", "KAFKA_BROKERS",
		"SIM_AUTH_DELAY", "SIM_JITTER", "HTTP_PORT",
	} {
		t.Setenv(key, "")
	}

	c, err := Load(logger.NewNopLogger())
	require.NoError(t, err)

	assert.Equal(t, "8080", c.Http.Port)
	assert.Equal(t, StorageMemory, c.Storage.Driver)
	assert.Equal(t, CatalogSeed, c.Catalog.Source)
	assert.Nil(t, c.Db, "postgres is not required for the embedded seed")
	assert.False(t, c.Minio.Enabled)
	assert.False(t, c.Kafka.Enabled)
	assert.Equal(t, 2*time.Second, c.Simulation.AuthDelay)
	assert.Equal(t, 1500*time.Millisecond, c.Simulation.ProfileSaveDelay)
	assert.Equal(t, 2500*time.Millisecond, c.Simulation.CheckoutDelay)
	assert.Zero(t, c.Simulation.Jitter)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "Bolt")
	t.Setenv("BOLT_PATH", "/tmp/fa.db")
	t.Setenv("MINIO_ENDPOINT", "minio:9000")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("SIM_CHECKOUT_DELAY", "100ms")
	t.Setenv("SIM_JITTER", "0.25")

	c, err := Load(logger.NewNopLogger())
	require.NoError(t, err)

	assert.Equal(t, StorageBolt, c.Storage.Driver)
	assert.Equal(t, "/tmp/fa.db", c.Bolt.Path)
	assert.True(t, c.Minio.Enabled)
	assert.True(t, c.Kafka.Enabled)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, c.Kafka.Brokers)
	assert.Equal(t, 100*time.Millisecond, c.Simulation.CheckoutDelay)
	assert.InDelta(t, 0.25, c.Simulation.Jitter, 1e-9)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Run("storage driver", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "sqlite")
		_, err := Load(logger.NewNopLogger())
		assert.ErrorIs(t, err, e.ErrUnknownStorageDriver)
	})

	t.Run("catalog source", func(t *testing.T) {
		t.Setenv("CATALOG_SOURCE", "csv")
		_, err := Load(logger.NewNopLogger())
		assert.ErrorIs(t, err, e.ErrUnknownCatalogSource)
	})

	t.Run("postgres credentials", func(t *testing.T) {
		t.Setenv("CATALOG_SOURCE", "postgres")
		t.Setenv("POSTGRES_USER", "")
		_, err := Load(logger.NewNopLogger())
		assert.Error(t, err)
	})

	t.Run("int", func(t *testing.T) {
		t.Setenv("REDIS_DB_ID", "first")
		_, err := Load(logger.NewNopLogger())
		assert.ErrorIs(t, err, e.ErrIncorrectEnvVariable)
	})

	t.Run("jitter", func(t *testing.T) {
		t.Setenv("SIM_JITTER", "-1")
		_, err := Load(logger.NewNopLogger())
		assert.ErrorIs(t, err, e.ErrIncorrectEnvVariable)
	})
}
