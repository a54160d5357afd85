// Package config holds the LoomQ client configuration. Files are yaml;
// every load or validation failure is reported through the fault taxonomy.
package config

import (
	"errors"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/loomq/loomq/pkg/fault"
)

// Compression codec names accepted by the client.
const (
	CompressionNone   = "none"
	CompressionSnappy = "snappy"
)

// Duration is a time.Duration that unmarshals from yaml strings ("250ms",
// "30s"). Values that do not parse, or are negative, surface the
// invalid-duration fault at decode time.
type Duration time.Duration

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fault.ErrInvalidDuration
	}
	td, err := time.ParseDuration(s)
	if err != nil || td < 0 {
		return fault.ErrInvalidDuration
	}
	*d = Duration(td)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// TLS configures transport security for broker connections.
type TLS struct {
	Enable             bool   `yaml:"enable"`
	ServerName         string `yaml:"server_name"`
	InsecureSkipVerify bool   `yaml:"insecure_skip_verify"`
}

// Config is the client configuration.
type Config struct {
	ClientID     string   `yaml:"client_id"`
	Brokers      []string `yaml:"brokers"`
	DialTimeout  Duration `yaml:"dial_timeout"`
	ReadTimeout  Duration `yaml:"read_timeout"`
	RetryBackoff Duration `yaml:"retry_backoff"`
	Compression  string   `yaml:"compression"`
	TLS          TLS      `yaml:"tls"`
}

// Default returns a configuration with generated client identity and sane
// timeouts. Brokers must still be supplied before the config validates.
func Default() *Config {
	return &Config{
		ClientID:     "loomq-" + uuid.NewString()[:8],
		DialTimeout:  Duration(10 * time.Second),
		ReadTimeout:  Duration(30 * time.Second),
		RetryBackoff: Duration(250 * time.Millisecond),
		Compression:  CompressionSnappy,
	}
}

// Load reads and validates a yaml configuration file. I/O failures are
// absorbed through the io adapter, malformed yaml becomes the generic codec
// fault, and field-level failures keep their own taxonomy kind.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fault.FromIO(err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		var fe *fault.Error
		if errors.As(err, &fe) {
			return nil, fe
		}
		return nil, fault.ErrCodec
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration, reporting the first failure as a fault
// taxonomy value.
func (c *Config) Validate() error {
	if len(c.Brokers) == 0 {
		return fault.ErrNoHostReachable
	}
	if c.DialTimeout <= 0 || c.ReadTimeout <= 0 || c.RetryBackoff <= 0 {
		return fault.ErrInvalidDuration
	}
	switch c.Compression {
	case CompressionNone, CompressionSnappy:
	default:
		return fault.ErrUnsupportedCompression
	}
	return nil
}
