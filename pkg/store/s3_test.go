package store

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// fakeS3 serves path-style object requests from memory.
type fakeS3 struct {
	mu      sync.Mutex
	objects map[string][]byte
	paths   []string
	deny    bool
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.paths = append(f.paths, r.Method+" "+r.URL.Path)

	if f.deny {
		writeS3Error(w, http.StatusForbidden, "AccessDenied")
		return
	}
	switch r.Method {
	case http.MethodGet:
		v, ok := f.objects[r.URL.Path]
		if !ok {
			writeS3Error(w, http.StatusNotFound, "NoSuchKey")
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(v)
	case http.MethodPut:
		body, _ := io.ReadAll(r.Body)
		f.objects[r.URL.Path] = body
		w.Header().Set("ETag", `"etag"`)
		w.WriteHeader(http.StatusOK)
	case http.MethodDelete:
		delete(f.objects, r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func writeS3Error(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>`+code+`</Code><Message>`+code+`</Message></Error>`)
}

func newTestS3(t *testing.T, prefix string) (*S3, *fakeS3) {
	t.Helper()
	t.Setenv("AWS_EC2_METADATA_DISABLED", "true")
	fake := &fakeS3{objects: map[string][]byte{}}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	s, err := NewS3(context.Background(), S3Options{
		Bucket:    "journal",
		Region:    "us-east-1",
		Endpoint:  srv.URL,
		AccessKey: "test",
		SecretKey: "test",
		Prefix:    prefix,
	})
	if err != nil {
		t.Fatalf("new s3: %v", err)
	}
	return s, fake
}

func TestS3Backend(t *testing.T) {
	s, _ := newTestS3(t, "plannow/")
	checkBackend(t, s)
}

func TestS3KeyLayout(t *testing.T) {
	ctx := context.Background()
	for prefix, want := range map[string]string{
		"plannow/": "/journal/plannow/tasks_u1",
		"plannow":  "/journal/plannow/tasks_u1",
		"":         "/journal/tasks_u1",
	} {
		s, fake := newTestS3(t, prefix)
		if err := s.Set(ctx, Key(PrefixTasks, "u1"), []byte(`[]`)); err != nil {
			t.Fatalf("set: %v", err)
		}
		fake.mu.Lock()
		if _, ok := fake.objects[want]; !ok {
			t.Errorf("prefix %q: requests %v, want %s", prefix, fake.paths, want)
		}
		fake.mu.Unlock()
	}
}

func TestS3FailuresWrapErrBackend(t *testing.T) {
	ctx := context.Background()
	s, fake := newTestS3(t, "")
	fake.mu.Lock()
	fake.deny = true
	fake.mu.Unlock()

	if _, _, err := s.Get(ctx, "tasks_u1"); !errors.Is(err, ErrBackend) {
		t.Fatalf("get: expected ErrBackend, got %v", err)
	}
	if err := s.Set(ctx, "tasks_u1", []byte(`[]`)); !errors.Is(err, ErrBackend) {
		t.Fatalf("set: expected ErrBackend, got %v", err)
	}
	if err := s.Delete(ctx, "tasks_u1"); !errors.Is(err, ErrBackend) {
		t.Fatalf("delete: expected ErrBackend, got %v", err)
	}
}

func TestS3RequiresBucket(t *testing.T) {
	if _, err := NewS3(context.Background(), S3Options{}); err == nil || !strings.Contains(err.Error(), "s3_bucket") {
		t.Fatalf("expected missing bucket error, got %v", err)
	}
}
