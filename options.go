package driveseek

import (
	"time"

	"go.uber.org/zap"
)

type clientConfig struct {
	credentialsJSON []byte
	credentialsPath string
	logger          *zap.Logger
	passTimeout     time.Duration
	maxPageFetches  int
}

// Option configures the driveseek Client.
type Option interface {
	apply(*clientConfig)
}

type optionFunc func(*clientConfig)

func (f optionFunc) apply(cfg *clientConfig) { f(cfg) }

// WithCredentialsJSON sets the service-account key from memory.
func WithCredentialsJSON(data []byte) Option {
	return optionFunc(func(cfg *clientConfig) {
		cfg.credentialsJSON = data
	})
}

// WithCredentialsFile sets the service-account key from a file path.
// The file is read by New.
func WithCredentialsFile(path string) Option {
	return optionFunc(func(cfg *clientConfig) {
		cfg.credentialsPath = path
	})
}

// WithLogger sets the logger used by the Drive transport.
func WithLogger(logger *zap.Logger) Option {
	return optionFunc(func(cfg *clientConfig) {
		cfg.logger = logger
	})
}

// WithPassTimeout bounds each retrieval pass.
func WithPassTimeout(d time.Duration) Option {
	return optionFunc(func(cfg *clientConfig) {
		cfg.passTimeout = d
	})
}

// WithMaxPageFetches caps page requests per pass.
func WithMaxPageFetches(n int) Option {
	return optionFunc(func(cfg *clientConfig) {
		cfg.maxPageFetches = n
	})
}
