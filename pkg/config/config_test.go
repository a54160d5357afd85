package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/loomq/loomq/pkg/fault"
)

func writeFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "client.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.Contains(t, cfg.ClientID, "loomq-")
	require.NotEqual(t, Default().ClientID, cfg.ClientID)

	// Defaults validate once brokers are supplied.
	require.ErrorIs(t, cfg.Validate(), fault.ErrNoHostReachable)
	cfg.Brokers = []string{"broker-1:9092"}
	require.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Run("Valid File", func(t *testing.T) {
		path := writeFile(t, `
client_id: orders-ingest
brokers:
  - broker-1:9092
  - broker-2:9092
dial_timeout: 5s
retry_backoff: 100ms
compression: snappy
tls:
  enable: true
  server_name: broker-1
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, "orders-ingest", cfg.ClientID)
		require.Len(t, cfg.Brokers, 2)
		require.Equal(t, 5*time.Second, cfg.DialTimeout.Std())
		require.Equal(t, 100*time.Millisecond, cfg.RetryBackoff.Std())
		// Unset fields keep defaults.
		require.Equal(t, 30*time.Second, cfg.ReadTimeout.Std())
		require.True(t, cfg.TLS.Enable)
	})

	t.Run("Missing File", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		var fe *fault.Error
		require.ErrorAs(t, err, &fe)
		require.Equal(t, fault.KindIO, fe.Kind())
	})

	t.Run("Malformed YAML", func(t *testing.T) {
		_, err := Load(writeFile(t, "brokers: [unclosed"))
		require.ErrorIs(t, err, fault.ErrCodec)
	})

	t.Run("Invalid Duration String", func(t *testing.T) {
		_, err := Load(writeFile(t, "brokers: [b:9092]\ndial_timeout: soon\n"))
		require.ErrorIs(t, err, fault.ErrInvalidDuration)
	})

	t.Run("Negative Duration", func(t *testing.T) {
		_, err := Load(writeFile(t, "brokers: [b:9092]\ndial_timeout: -5s\n"))
		require.ErrorIs(t, err, fault.ErrInvalidDuration)
	})

	t.Run("Unsupported Compression", func(t *testing.T) {
		_, err := Load(writeFile(t, "brokers: [b:9092]\ncompression: zstd\n"))
		require.ErrorIs(t, err, fault.ErrUnsupportedCompression)
	})
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg := Default()
		cfg.Brokers = []string{"b:9092"}
		return cfg
	}

	t.Run("Zero Duration", func(t *testing.T) {
		cfg := base()
		cfg.RetryBackoff = 0
		require.ErrorIs(t, cfg.Validate(), fault.ErrInvalidDuration)
	})

	t.Run("Compression None", func(t *testing.T) {
		cfg := base()
		cfg.Compression = CompressionNone
		require.NoError(t, cfg.Validate())
	})
}
