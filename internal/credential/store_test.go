package credential_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lxkasmehl/runsync-dispatch/internal/credential"
	"github.com/lxkasmehl/runsync-dispatch/internal/kv"
	"github.com/lxkasmehl/runsync-dispatch/internal/testutil"
)

func newTokenStore(prompter credential.Prompter) (*credential.TokenStore, *kv.MemoryStore, *kv.MemoryStore) {
	durable := kv.NewMemoryStore()
	session := kv.NewMemoryStore()
	store := credential.NewTokenStore(credential.TokenStoreOptions{
		Durable:  durable,
		Session:  session,
		Prompter: prompter,
	})

	return store, durable, session
}

func TestTokenStore_SaveRejectsInvalid(t *testing.T) {
	store, durable, _ := newTokenStore(nil)

	if err := store.Save("ghp_existing"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	for _, bad := range []string{"not-a-token", "", "ghx_abc"} {
		if err := store.Save(bad); !errors.Is(err, credential.ErrInvalidToken) {
			t.Errorf("Save(%q) err = %v, want ErrInvalidToken", bad, err)
		}
	}

	got, _, _ := durable.Get(credential.TokenKey)
	if got != "ghp_existing" {
		t.Errorf("stored token changed to %q after rejected saves", got)
	}
}

func TestTokenStore_SaveThenResolve(t *testing.T) {
	prompter := testutil.NewFakePrompter("")
	store, _, _ := newTokenStore(prompter)

	if err := store.Save("ghp_abc123"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, ok := store.Resolve(context.Background())
	if !ok || got != "ghp_abc123" {
		t.Errorf("Resolve = %q, %v; want %q, true", got, ok, "ghp_abc123")
	}

	if prompter.Calls() != 0 {
		t.Error("prompt should not be shown when a stored token exists")
	}
}

func TestTokenStore_SessionFallback(t *testing.T) {
	store, _, session := newTokenStore(nil)

	if err := store.SaveSession("ghp_session"); err != nil {
		t.Fatalf("SaveSession failed: %v", err)
	}

	got, _, _ := session.Get(credential.TokenKey)
	testutil.AssertEqual(t, got, "ghp_session", "session value")

	token, ok := store.Resolve(context.Background())
	if !ok || token != "ghp_session" {
		t.Errorf("Resolve = %q, %v; want session token", token, ok)
	}
}

func TestTokenStore_ClearThenResolve(t *testing.T) {
	store, durable, session := newTokenStore(nil)

	_ = store.Save("ghp_durable")
	_ = store.SaveSession("ghp_session")

	store.Clear()

	if _, ok, _ := durable.Get(credential.TokenKey); ok {
		t.Error("durable token still present after Clear")
	}

	if _, ok, _ := session.Get(credential.TokenKey); ok {
		t.Error("session token still present after Clear")
	}

	if token, ok := store.Resolve(context.Background()); ok {
		t.Errorf("Resolve after Clear = %q, want none", token)
	}
}

func TestTokenStore_ClearNeverFails(t *testing.T) {
	store := credential.NewTokenStore(credential.TokenStoreOptions{
		Durable: testutil.FailingStore{Err: errors.New("disk on fire")},
		Session: nil,
	})

	store.Clear()
}

func TestTokenStore_PromptedTokenNotPersisted(t *testing.T) {
	prompter := testutil.NewFakePrompter("ghp_typed")
	store, durable, _ := newTokenStore(prompter)

	token, ok := store.Resolve(context.Background())
	if !ok || token != "ghp_typed" {
		t.Fatalf("Resolve = %q, %v; want prompted token", token, ok)
	}

	if _, ok, _ := durable.Get(credential.TokenKey); ok {
		t.Error("prompted token should not be saved implicitly")
	}
}

func TestTokenStore_FailingDurableFallsThrough(t *testing.T) {
	session := kv.NewMemoryStore()
	_ = session.Set(credential.TokenKey, "ghp_session")

	store := credential.NewTokenStore(credential.TokenStoreOptions{
		Durable: testutil.FailingStore{Err: errors.New("locked")},
		Session: session,
	})

	token, ok := store.Resolve(context.Background())
	if !ok || token != "ghp_session" {
		t.Errorf("Resolve = %q, %v; want session token", token, ok)
	}
}

func TestTokenStore_CustomSources(t *testing.T) {
	store := credential.NewTokenStore(credential.TokenStoreOptions{
		Sources: []credential.Source{
			credential.FromPrompt(testutil.NewFakePrompter("ghp_only"), credential.TokenDialog),
		},
	})

	testutil.AssertEqual(t, len(store.Resolver().Sources()), 1, "source count")

	token, ok := store.Resolve(context.Background())
	if !ok || token != "ghp_only" {
		t.Errorf("Resolve = %q, %v", token, ok)
	}
}

func TestPasswordStore_SaveAndResolve(t *testing.T) {
	backing := kv.NewMemoryStore()
	store := credential.NewPasswordStore(backing, nil, nil)

	if err := store.Save(""); !errors.Is(err, credential.ErrEmptyPassword) {
		t.Errorf("Save(\"\") err = %v, want ErrEmptyPassword", err)
	}

	if err := store.Save("any format at all"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, ok := store.Resolve(context.Background())
	if !ok || got != "any format at all" {
		t.Errorf("Resolve = %q, %v", got, ok)
	}

	store.Clear()

	if _, ok := store.Resolve(context.Background()); ok {
		t.Error("expected no password after Clear")
	}
}

func TestPasswordStore_PromptFallback(t *testing.T) {
	prompter := testutil.NewFakePrompter("typed-secret")
	backing := kv.NewMemoryStore()
	store := credential.NewPasswordStore(backing, prompter, nil)

	got, ok := store.Resolve(context.Background())
	if !ok || got != "typed-secret" {
		t.Fatalf("Resolve = %q, %v; want prompted value", got, ok)
	}

	testutil.AssertEqual(t, prompter.Titles[0], credential.PasswordDialog.Title, "dialog title")

	if _, ok, _ := backing.Get(credential.PasswordKey); ok {
		t.Error("prompted password should not be saved")
	}
}

func TestPasswordStore_Validate(t *testing.T) {
	store := credential.NewPasswordStore(kv.NewMemoryStore(), nil, nil)
	_ = store.Save("Secret")

	tests := []struct {
		candidate string
		want      bool
	}{
		{"Secret", true},
		{"secret", false},
		{"Secret ", false},
		{" Secret", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.candidate, func(t *testing.T) {
			if got := store.Validate(context.Background(), tt.candidate); got != tt.want {
				t.Errorf("Validate(%q) = %v, want %v", tt.candidate, got, tt.want)
			}
		})
	}
}

func TestPasswordStore_ValidateWithoutPassword(t *testing.T) {
	store := credential.NewPasswordStore(kv.NewMemoryStore(), nil, nil)

	if store.Validate(context.Background(), "") {
		t.Error("Validate should be false when no password can be resolved")
	}
}
