// Package credential resolves and persists the GitHub token and the RunSync password.
package credential

import (
	"context"
	"errors"

	"github.com/cli/go-gh/v2/pkg/auth"

	"github.com/lxkasmehl/runsync-dispatch/internal/kv"
)

// Storage keys shared by the durable and session scopes.
const (
	TokenKey    = "github_token"
	PasswordKey = "runsync_password"
)

// Source names used in configuration and logs.
const (
	SourceDurable = "durable"
	SourceSession = "session"
	SourceGH      = "gh"
	SourcePrompt  = "prompt"
)

// ErrNoInteractiveInput is returned by a Prompter that cannot reach a user.
var ErrNoInteractiveInput = errors.New("no interactive input available")

// Source is one place a credential might be found.
// An empty value with a nil error means the source had nothing.
type Source interface {
	Name() string
	Lookup(ctx context.Context) (string, error)
}

// Prompter shows a blocking entry dialog and returns what the user typed.
// A cancelled dialog returns an empty string.
type Prompter interface {
	Prompt(ctx context.Context, title, description string) (string, error)
}

// Dialog is the text shown by a prompt source.
type Dialog struct {
	Title       string
	Description string
}

// TokenDialog asks for a personal access token.
var TokenDialog = Dialog{
	Title: "GitHub Personal Access Token",
	Description: "1. Go to https://github.com/settings/tokens\n" +
		"2. Create a token with the \"repo\" and \"workflow\" scopes\n" +
		"3. Paste the token here",
}

// PasswordDialog asks for the RunSync password.
var PasswordDialog = Dialog{
	Title:       "RunSync Password",
	Description: "This must match the ADMIN_PASSWORD secret configured in GitHub.",
}

type storeSource struct {
	name  string
	store kv.Store
	key   string
}

// FromStore returns a Source reading key from store.
func FromStore(name string, store kv.Store, key string) Source {
	return storeSource{name: name, store: store, key: key}
}

func (s storeSource) Name() string { return s.name }

func (s storeSource) Lookup(context.Context) (string, error) {
	if s.store == nil {
		return "", nil
	}

	v, _, err := s.store.Get(s.key)

	return v, err
}

type promptSource struct {
	prompter Prompter
	dialog   Dialog
}

// FromPrompt returns a Source that asks the user through p.
func FromPrompt(p Prompter, dialog Dialog) Source {
	return promptSource{prompter: p, dialog: dialog}
}

func (s promptSource) Name() string { return SourcePrompt }

func (s promptSource) Lookup(ctx context.Context) (string, error) {
	if s.prompter == nil {
		return "", ErrNoInteractiveInput
	}

	return s.prompter.Prompt(ctx, s.dialog.Title, s.dialog.Description)
}

// tokenForHost is replaced in tests.
var tokenForHost = auth.TokenForHost

type ghSource struct {
	host string
}

// FromGH returns a Source reading the token the gh CLI would use for host
// (GH_TOKEN, GITHUB_TOKEN, or the gh config file).
func FromGH(host string) Source {
	return ghSource{host: host}
}

func (s ghSource) Name() string { return SourceGH }

func (s ghSource) Lookup(context.Context) (string, error) {
	token, _ := tokenForHost(s.host)
	return token, nil
}
