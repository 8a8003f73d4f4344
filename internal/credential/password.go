package credential

import (
	"context"
	"errors"
	"log/slog"

	"github.com/lxkasmehl/runsync-dispatch/internal/kv"
)

// ErrEmptyPassword is returned by PasswordStore.Save for an empty password.
var ErrEmptyPassword = errors.New("password must not be empty")

// PasswordStore keeps the RunSync password in plaintext in the durable scope.
// The password is forwarded to the workflow as an input, so it is not hashed.
type PasswordStore struct {
	store    kv.Store
	resolver *Resolver
	logger   *slog.Logger
}

// NewPasswordStore creates a PasswordStore that falls back to p when nothing is stored.
func NewPasswordStore(store kv.Store, p Prompter, logger *slog.Logger) *PasswordStore {
	if logger == nil {
		logger = slog.Default()
	}

	resolver := NewResolver(NonEmpty,
		FromStore(SourceDurable, store, PasswordKey),
		FromPrompt(p, PasswordDialog),
	).WithLogger(logger)

	return &PasswordStore{store: store, resolver: resolver, logger: logger}
}

// Save stores any non-empty password.
func (s *PasswordStore) Save(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}

	return s.store.Set(PasswordKey, password)
}

// Clear removes the stored password. Storage errors are logged, not returned.
func (s *PasswordStore) Clear() {
	if err := s.store.Delete(PasswordKey); err != nil {
		s.logger.Warn("failed to clear password", "error", err)
	}
}

// Resolve returns the stored password, or asks for one. A prompted password is not saved.
func (s *PasswordStore) Resolve(ctx context.Context) (string, bool) {
	return s.resolver.Resolve(ctx)
}

// Validate reports whether candidate equals the resolved password exactly.
// The comparison is case-sensitive, untrimmed and not constant-time.
func (s *PasswordStore) Validate(ctx context.Context, candidate string) bool {
	stored, ok := s.Resolve(ctx)
	if !ok {
		return false
	}

	return candidate == stored
}
