package commands

import (
	"context"

	"tableflip.dev/plannow/pkg/app"
	"tableflip.dev/plannow/pkg/auth"
	"tableflip.dev/plannow/pkg/store"
)

// env is what every command needs to reach the journal.
type env struct {
	Config   *store.Config
	Backend  store.Backend
	Sessions *auth.FileSession
	Service  *app.Service
}

var loadConfig = store.LoadConfig

func loadEnv(ctx context.Context) (*env, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	secret := cfg.Secret
	if secret == "" {
		if secret, err = auth.LoadOrCreateSecret(cfg.SecretPath()); err != nil {
			return nil, err
		}
	}
	b, err := store.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	sessions := &auth.FileSession{
		Path:   cfg.SessionPath(),
		Tokens: auth.NewTokens(secret),
	}
	return &env{
		Config:   cfg,
		Backend:  b,
		Sessions: sessions,
		Service:  app.New(b, sessions),
	}, nil
}

// Close releases backend connections, e.g. the redis pool.
func (e *env) Close() error {
	return store.Close(e.Backend)
}
