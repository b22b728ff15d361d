package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDiskvRoundTrip(t *testing.T) {
	ctx := context.Background()
	base := t.TempDir()
	d, err := NewDiskv(base)
	if err != nil {
		t.Fatalf("new diskv: %v", err)
	}

	key := Key(PrefixTasks, "user-1")
	if _, ok, err := d.Get(ctx, key); err != nil || ok {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}

	if err := d.Set(ctx, key, []byte(`[]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok, err := d.Get(ctx, key)
	if err != nil || !ok || string(got) != `[]` {
		t.Fatalf("get = %q ok=%v err=%v", got, ok, err)
	}

	if _, err := os.Stat(filepath.Join(base, PrefixTasks, "user-1")); err != nil {
		t.Fatalf("expected file layout <base>/tasks/user-1: %v", err)
	}

	if err := d.Delete(ctx, key); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := d.Get(ctx, key); ok {
		t.Fatal("expected key removed")
	}
	if err := d.Delete(ctx, key); err != nil {
		t.Fatalf("deleting a missing key: %v", err)
	}
}

func TestDiskvSeesOtherWriters(t *testing.T) {
	ctx := context.Background()
	base := t.TempDir()
	a, _ := NewDiskv(base)
	b, _ := NewDiskv(base)

	key := Key(PrefixUsername, "u1")
	if err := a.Set(ctx, key, []byte("one")); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, _, err := b.Get(ctx, key); err != nil {
		t.Fatalf("get: %v", err)
	}
	if err := a.Set(ctx, key, []byte("two")); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, _, _ := b.Get(ctx, key)
	if string(got) != "two" {
		t.Fatalf("stale read %q", got)
	}
}

func TestKeyTransforms(t *testing.T) {
	for _, key := range []string{"tasks_abc", "profilePicture_u_1", "plain"} {
		pk := keyToPathTransform(key)
		if back := pathToKeyTransform(pk); back != key {
			t.Fatalf("round trip %q -> %+v -> %q", key, pk, back)
		}
	}
	if prefix, id, ok := SplitKey("profilePicture_u_1"); !ok || prefix != "profilePicture" || id != "u_1" {
		t.Fatalf("SplitKey = %q %q %v", prefix, id, ok)
	}
}

func TestOpenRejectsUnknownBackend(t *testing.T) {
	if _, err := Open(context.Background(), &Config{Backend: "floppy"}); err == nil {
		t.Fatal("expected error")
	}
}

func TestOpenDefaultsToDiskv(t *testing.T) {
	b, err := Open(context.Background(), &Config{Path: t.TempDir()})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, ok := b.(*Diskv); !ok {
		t.Fatalf("expected *Diskv, got %T", b)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PLANNOW_CONFIG_PATH", dir)
	t.Setenv("PLANNOW_PATH", filepath.Join(dir, "db"))
	t.Setenv("PLANNOW_BACKEND", "Redis")
	t.Setenv("PLANNOW_REDIS_URL", "redis://localhost:6379/2")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Backend != KindRedis {
		t.Fatalf("backend = %q", cfg.Backend)
	}
	if cfg.BasePath() != filepath.Join(dir, "db") {
		t.Fatalf("path = %q", cfg.BasePath())
	}
	if cfg.RedisURL != "redis://localhost:6379/2" {
		t.Fatalf("redis url = %q", cfg.RedisURL)
	}
	if cfg.Session == "" {
		t.Fatalf("expected session defaults, got %+v", cfg)
	}
	if cfg.Secret != "" {
		t.Fatalf("secret has a built-in default %q", cfg.Secret)
	}
	if cfg.SecretPath() != cfg.SessionPath()+".key" {
		t.Fatalf("secret path = %q", cfg.SecretPath())
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PLANNOW_CONFIG_PATH", dir)
	yaml := "backend: s3\ns3_bucket: journal\ns3_endpoint: http://localhost:9000\n"
	if err := os.WriteFile(filepath.Join(dir, ".plannow.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Backend != KindS3 || cfg.S3Bucket != "journal" || cfg.S3Endpoint != "http://localhost:9000" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.S3Region != "us-east-1" {
		t.Fatalf("region default = %q", cfg.S3Region)
	}
}

func TestDiskvWatchEmitsKeyChanges(t *testing.T) {
	base := t.TempDir()
	d, err := NewDiskv(base)
	if err != nil {
		t.Fatalf("new diskv: %v", err)
	}
	// Pre-create the prefix directory so the first write is observed.
	if err := os.MkdirAll(filepath.Join(base, PrefixTasks), 0o755); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := d.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe to directories before storing.
	time.Sleep(50 * time.Millisecond)

	if err := d.Set(ctx, Key(PrefixTasks, "u1"), []byte(`[]`)); err != nil {
		t.Fatalf("set: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventInvalidated {
				return
			}
			if evt.Key != "tasks_u1" {
				t.Fatalf("expected key tasks_u1, got %q", evt.Key)
			}
			return
		case <-deadline:
			t.Fatal("timed out waiting for change event")
		}
	}
}
