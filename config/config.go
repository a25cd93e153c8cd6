// Package config loads framework configuration from the environment and an
// optional YAML file.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/sagemaker-experiments/experiments-framework/experiments"
)

// envPrefix is the prefix of environment variables read by Load, e.g.
// SMEXP_REGION or SMEXP_DISASSOCIATE_INTERVAL.
const envPrefix = "SMEXP"

// Config is the framework configuration. All fields are optional; zero
// values defer to the AWS SDK defaults and the package defaults.
type Config struct {
	// Region is the AWS region of the SageMaker endpoint.
	Region string `mapstructure:"region" yaml:"region"`
	// Endpoint overrides the SageMaker service endpoint. Useful for testing
	// against a local stub.
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint"`
	// LogLevel is the zap level name used by the runtime logger (debug,
	// info, warn, error).
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	// DisassociateInterval is the minimum spacing before each disassociate
	// call during a forced delete.
	DisassociateInterval time.Duration `mapstructure:"disassociate_interval" yaml:"disassociate_interval"`
	// ArtifactBucket is the S3 bucket the tracker uploads artifact files to.
	ArtifactBucket string `mapstructure:"artifact_bucket" yaml:"artifact_bucket"`
	// ArtifactPrefix is the S3 key prefix for uploaded artifact files.
	ArtifactPrefix string `mapstructure:"artifact_prefix" yaml:"artifact_prefix"`
	// DefaultTagsFile is the path of a YAML file holding tags attached to
	// every record the tracker creates.
	DefaultTagsFile string `mapstructure:"default_tags_file" yaml:"default_tags_file"`
}

// Load reads configuration from the environment and, when filePath is
// non-empty, the YAML file at that path. Environment variables take
// precedence over file values.
func Load(filePath string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("region", "")
	v.SetDefault("endpoint", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("disassociate_interval", experiments.DefaultDisassociateInterval)
	v.SetDefault("artifact_bucket", "")
	v.SetDefault("artifact_prefix", "")
	v.SetDefault("default_tags_file", "")

	if filePath != "" {
		v.SetConfigFile(filePath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", filePath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// ClientOptions translates the configuration into experiments options for
// entity constructors and list/search operations.
func (c *Config) ClientOptions() []experiments.Option {
	var opts []experiments.Option
	if c.Region != "" {
		opts = append(opts, experiments.WithRegion(c.Region))
	}
	if c.Endpoint != "" {
		opts = append(opts, experiments.WithEndpoint(c.Endpoint))
	}
	if c.DisassociateInterval > 0 {
		opts = append(opts, experiments.WithDisassociateInterval(c.DisassociateInterval))
	}

	return opts
}
