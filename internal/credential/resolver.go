package credential

import (
	"context"
	"log/slog"
	"strings"
)

// TokenPrefix is the prefix every accepted token must carry.
const TokenPrefix = "ghp_"

// ValidToken reports whether token is non-empty and carries TokenPrefix.
func ValidToken(token string) bool {
	return token != "" && strings.HasPrefix(token, TokenPrefix)
}

// NonEmpty accepts any non-empty value.
func NonEmpty(value string) bool {
	return value != ""
}

// Resolver tries its sources in order and returns the first value accept allows.
// Source errors and rejected values are skipped, never returned.
type Resolver struct {
	sources []Source
	accept  func(string) bool
	logger  *slog.Logger
}

// NewResolver builds a Resolver. A nil accept allows any non-empty value.
func NewResolver(accept func(string) bool, sources ...Source) *Resolver {
	if accept == nil {
		accept = NonEmpty
	}

	return &Resolver{
		sources: sources,
		accept:  accept,
		logger:  slog.Default(),
	}
}

// WithLogger sets the logger used for skipped sources.
func (r *Resolver) WithLogger(logger *slog.Logger) *Resolver {
	if logger != nil {
		r.logger = logger
	}

	return r
}

// Sources returns the source names in resolution order.
func (r *Resolver) Sources() []string {
	names := make([]string, len(r.sources))
	for i, s := range r.sources {
		names[i] = s.Name()
	}

	return names
}

// Resolve returns the first acceptable value. Each source is consulted at most once.
func (r *Resolver) Resolve(ctx context.Context) (string, bool) {
	value, _, ok := r.ResolveWithSource(ctx)
	return value, ok
}

// ResolveWithSource is Resolve that also reports which source supplied the value.
func (r *Resolver) ResolveWithSource(ctx context.Context) (string, string, bool) {
	for _, src := range r.sources {
		if ctx.Err() != nil {
			return "", "", false
		}

		value, err := src.Lookup(ctx)
		if err != nil {
			r.logger.Debug("credential source failed", "source", src.Name(), "error", err)
			continue
		}

		if !r.accept(value) {
			if value != "" {
				r.logger.Debug("credential source returned unusable value", "source", src.Name())
			}

			continue
		}

		return value, src.Name(), true
	}

	return "", "", false
}
