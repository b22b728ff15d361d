package store

import (
	"context"
	"fmt"
)

// Open builds the backend selected by cfg. A nil cfg is loaded with
// LoadConfig.
func Open(ctx context.Context, cfg *Config) (Backend, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	switch cfg.Backend {
	case "", KindDiskv:
		return NewDiskv(cfg.BasePath())
	case KindRedis:
		return NewRedis(ctx, cfg.RedisURL)
	case KindS3:
		return NewS3(ctx, S3Options{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Prefix:    cfg.S3Prefix,
		})
	default:
		return nil, fmt.Errorf("store: unknown backend %q (expected diskv, redis or s3)", cfg.Backend)
	}
}
