package credential

import (
	"context"
	"errors"
	"log/slog"

	"github.com/lxkasmehl/runsync-dispatch/internal/kv"
)

// ErrInvalidToken is returned by TokenStore.Save for values that are empty or lack TokenPrefix.
var ErrInvalidToken = errors.New("token must start with " + TokenPrefix)

// TokenStore owns the token in the durable and session scopes.
type TokenStore struct {
	durable  kv.Store
	session  kv.Store
	resolver *Resolver
	logger   *slog.Logger
}

// TokenStoreOptions configures NewTokenStore.
type TokenStoreOptions struct {
	Durable kv.Store
	Session kv.Store
	// Sources overrides the default order (durable, session, prompt).
	Sources  []Source
	Prompter Prompter
	Logger   *slog.Logger
}

// NewTokenStore creates a TokenStore whose resolver checks the durable store,
// then the session store, then the prompter, unless opts.Sources says otherwise.
func NewTokenStore(opts TokenStoreOptions) *TokenStore {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	sources := opts.Sources
	if sources == nil {
		sources = []Source{
			FromStore(SourceDurable, opts.Durable, TokenKey),
			FromStore(SourceSession, opts.Session, TokenKey),
			FromPrompt(opts.Prompter, TokenDialog),
		}
	}

	return &TokenStore{
		durable:  opts.Durable,
		session:  opts.Session,
		resolver: NewResolver(ValidToken, sources...).WithLogger(logger),
		logger:   logger,
	}
}

// Resolver exposes the token resolver.
func (s *TokenStore) Resolver() *Resolver {
	return s.resolver
}

// Resolve finds a usable token. See Resolver.Resolve.
func (s *TokenStore) Resolve(ctx context.Context) (string, bool) {
	return s.resolver.Resolve(ctx)
}

// Save persists token in the durable scope. Rejected tokens leave stored state untouched.
func (s *TokenStore) Save(token string) error {
	return s.save(s.durable, token)
}

// SaveSession persists token in the session scope only.
func (s *TokenStore) SaveSession(token string) error {
	return s.save(s.session, token)
}

func (s *TokenStore) save(store kv.Store, token string) error {
	if !ValidToken(token) {
		return ErrInvalidToken
	}

	if store == nil {
		return errors.New("no store configured")
	}

	return store.Set(TokenKey, token)
}

// Clear removes the token from both scopes. Storage errors are logged, not returned.
func (s *TokenStore) Clear() {
	for _, store := range []kv.Store{s.durable, s.session} {
		if store == nil {
			continue
		}

		if err := store.Delete(TokenKey); err != nil {
			s.logger.Warn("failed to clear token", "error", err)
		}
	}
}
