package auth

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"tableflip.dev/plannow/pkg/store"
)

func newAccounts() *Accounts {
	return &Accounts{Backend: store.NewMemory(), Cost: bcrypt.MinCost}
}

func TestSessionRequire(t *testing.T) {
	if _, err := (Session{}).Require(); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
	if uid, err := (Session{UserID: "u1"}).Require(); err != nil || uid != "u1" {
		t.Fatalf("Require = %q, %v", uid, err)
	}
	if _, err := CurrentUserID(context.Background(), nil); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("nil provider: %v", err)
	}
	if _, err := CurrentUserID(context.Background(), Static{}); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("empty static provider: %v", err)
	}
}

func TestSignUpSignIn(t *testing.T) {
	ctx := context.Background()
	a := newAccounts()

	s, err := a.SignUp(ctx, "  Alex@Example.com ", "secret1")
	if err != nil {
		t.Fatalf("sign up: %v", err)
	}
	if s.UserID == "" || s.Email != "alex@example.com" {
		t.Fatalf("unexpected session %+v", s)
	}

	if _, err := a.SignUp(ctx, "alex@example.com", "another1"); !errors.Is(err, ErrAccountExists) {
		t.Fatalf("expected ErrAccountExists, got %v", err)
	}

	in, err := a.SignIn(ctx, "ALEX@example.com", "secret1")
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if in.UserID != s.UserID {
		t.Fatalf("sign in returned a different user: %v vs %v", in.UserID, s.UserID)
	}

	if _, err := a.SignIn(ctx, "alex@example.com", "wrong!"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := a.SignIn(ctx, "nobody@example.com", "secret1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestSignUpValidation(t *testing.T) {
	ctx := context.Background()
	a := newAccounts()
	if _, err := a.SignUp(ctx, "not-an-email", "secret1"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := a.SignUp(ctx, "a@b.c", "short"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestChangePasswordAndDelete(t *testing.T) {
	ctx := context.Background()
	a := newAccounts()
	s, _ := a.SignUp(ctx, "sam@example.com", "secret1")

	if err := a.ChangePassword(ctx, "sam@example.com", "secret1", "secret2"); err != nil {
		t.Fatalf("change password: %v", err)
	}
	if _, err := a.SignIn(ctx, "sam@example.com", "secret1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("old password still valid: %v", err)
	}

	if err := a.Verify(ctx, s, "secret1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("verify with wrong password: %v", err)
	}
	if err := a.Verify(ctx, s, "secret2"); err != nil {
		t.Fatalf("verify: %v", err)
	}
	if err := a.Delete(ctx, s); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := a.SignIn(ctx, "sam@example.com", "secret2"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("deleted account can still sign in: %v", err)
	}
	if err := a.Delete(ctx, s); err != nil {
		t.Fatalf("deleting a missing account: %v", err)
	}
}

func TestStaleSessionCannotDeleteNewAccount(t *testing.T) {
	ctx := context.Background()
	a := newAccounts()
	old, _ := a.SignUp(ctx, "sam@example.com", "secret1")
	if err := a.Delete(ctx, old); err != nil {
		t.Fatalf("delete: %v", err)
	}
	fresh, err := a.SignUp(ctx, "sam@example.com", "secret1")
	if err != nil {
		t.Fatalf("signup again: %v", err)
	}

	if err := a.Verify(ctx, old, "secret1"); !errors.Is(err, ErrSessionMismatch) {
		t.Fatalf("verify with stale session: %v", err)
	}
	if err := a.Delete(ctx, old); !errors.Is(err, ErrSessionMismatch) {
		t.Fatalf("delete with stale session: %v", err)
	}
	if got, err := a.SignIn(ctx, "sam@example.com", "secret1"); err != nil || got.UserID != fresh.UserID {
		t.Fatalf("fresh account damaged: %+v %v", got, err)
	}
}

func TestTokens(t *testing.T) {
	tokens := NewTokens("test-secret")
	raw, err := tokens.Issue(Session{UserID: "u1", Email: "u1@example.com"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	s, err := tokens.Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if s.UserID != "u1" || s.Email != "u1@example.com" {
		t.Fatalf("unexpected session %+v", s)
	}

	other := NewTokens("other-secret")
	if _, err := other.Parse(raw); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated for wrong secret, got %v", err)
	}

	if _, err := tokens.Issue(Session{}); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("issuing for nobody: %v", err)
	}
}

func TestTokensExpire(t *testing.T) {
	tokens := NewTokens("test-secret")
	tokens.Validity = time.Hour
	start := time.Now()
	tokens.now = func() time.Time { return start }
	raw, err := tokens.Issue(Session{UserID: "u1"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	tokens.now = func() time.Time { return start.Add(2 * time.Hour) }
	if _, err := tokens.Parse(raw); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("expected expired token to be rejected, got %v", err)
	}
}

func TestFileSession(t *testing.T) {
	ctx := context.Background()
	f := &FileSession{Path: filepath.Join(t.TempDir(), "nested", "session"), Tokens: NewTokens("k")}

	if _, err := f.CurrentSession(ctx); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated before sign in, got %v", err)
	}
	if err := f.Save(Session{UserID: "u9", Email: "u9@example.com"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	uid, err := CurrentUserID(ctx, f)
	if err != nil || uid != "u9" {
		t.Fatalf("CurrentUserID = %q, %v", uid, err)
	}
	if err := f.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if err := f.Clear(); err != nil {
		t.Fatalf("second clear: %v", err)
	}
	if _, err := f.CurrentSession(ctx); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated after sign out, got %v", err)
	}
}

func TestLoadOrCreateSecret(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.key")

	first, err := LoadOrCreateSecret(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(first) != 2*secretBytes {
		t.Fatalf("secret %q has length %d", first, len(first))
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("secret file mode = %o, want 600", perm)
	}

	again, err := LoadOrCreateSecret(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if again != first {
		t.Fatalf("secret changed between calls")
	}

	other, err := LoadOrCreateSecret(filepath.Join(t.TempDir(), "session.key"))
	if err != nil {
		t.Fatalf("create other: %v", err)
	}
	if other == first {
		t.Fatal("two machines generated the same secret")
	}

	forged, _ := NewTokens("plannow-local").Issue(Session{UserID: "victim", Email: "v@example.com"})
	if _, err := NewTokens(first).Parse(forged); err == nil {
		t.Fatal("token signed with a guessable secret was accepted")
	}
}
