package credential_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lxkasmehl/runsync-dispatch/internal/credential"
	"github.com/lxkasmehl/runsync-dispatch/internal/kv"
	"github.com/lxkasmehl/runsync-dispatch/internal/testutil"
)

type stubSource struct {
	name  string
	value string
	err   error
	calls int
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Lookup(context.Context) (string, error) {
	s.calls++
	return s.value, s.err
}

func TestValidToken(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{"ghp_abc123", true},
		{"ghp_", true},
		{"", false},
		{"not-a-token", false},
		{"gho_abc123", false},
		{"GHP_abc123", false},
		{" ghp_abc123", false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			if got := credential.ValidToken(tt.token); got != tt.want {
				t.Errorf("ValidToken(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestResolver_Order(t *testing.T) {
	tests := []struct {
		name       string
		sources    []*stubSource
		wantToken  string
		wantSource string
		wantOK     bool
		wantCalls  []int
	}{
		{
			name: "first source wins",
			sources: []*stubSource{
				{name: "durable", value: "ghp_durable"},
				{name: "session", value: "ghp_session"},
				{name: "prompt", value: "ghp_prompt"},
			},
			wantToken:  "ghp_durable",
			wantSource: "durable",
			wantOK:     true,
			wantCalls:  []int{1, 0, 0},
		},
		{
			name: "invalid prefix skipped",
			sources: []*stubSource{
				{name: "durable", value: "not-a-token"},
				{name: "session", value: "ghp_session"},
				{name: "prompt", value: "ghp_prompt"},
			},
			wantToken:  "ghp_session",
			wantSource: "session",
			wantOK:     true,
			wantCalls:  []int{1, 1, 0},
		},
		{
			name: "empty and erroring sources skipped",
			sources: []*stubSource{
				{name: "durable", value: ""},
				{name: "session", err: errors.New("storage unavailable")},
				{name: "prompt", value: "ghp_prompt"},
			},
			wantToken:  "ghp_prompt",
			wantSource: "prompt",
			wantOK:     true,
			wantCalls:  []int{1, 1, 1},
		},
		{
			name: "nothing usable",
			sources: []*stubSource{
				{name: "durable", value: "token"},
				{name: "session", err: errors.New("boom")},
				{name: "prompt", value: ""},
			},
			wantOK:    false,
			wantCalls: []int{1, 1, 1},
		},
		{
			name: "error with a valid-looking value is still skipped",
			sources: []*stubSource{
				{name: "durable", value: "ghp_partial", err: errors.New("read failed")},
				{name: "session", value: "ghp_session"},
			},
			wantToken:  "ghp_session",
			wantSource: "session",
			wantOK:     true,
			wantCalls:  []int{1, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sources := make([]credential.Source, len(tt.sources))
			for i, s := range tt.sources {
				sources[i] = s
			}

			r := credential.NewResolver(credential.ValidToken, sources...)

			token, source, ok := r.ResolveWithSource(context.Background())
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}

			if token != tt.wantToken {
				t.Errorf("token = %q, want %q", token, tt.wantToken)
			}

			if source != tt.wantSource {
				t.Errorf("source = %q, want %q", source, tt.wantSource)
			}

			for i, s := range tt.sources {
				if s.calls != tt.wantCalls[i] {
					t.Errorf("source %s called %d times, want %d", s.name, s.calls, tt.wantCalls[i])
				}
			}
		})
	}
}

func TestResolver_PromptAtMostOnce(t *testing.T) {
	prompter := testutil.NewFakePrompter("nope")
	r := credential.NewResolver(credential.ValidToken,
		credential.FromStore(credential.SourceDurable, kv.NewMemoryStore(), credential.TokenKey),
		credential.FromPrompt(prompter, credential.TokenDialog),
	)

	if _, ok := r.Resolve(context.Background()); ok {
		t.Fatal("expected no token")
	}

	if prompter.Calls() != 1 {
		t.Errorf("prompt shown %d times, want 1", prompter.Calls())
	}
}

func TestResolver_CancelledContext(t *testing.T) {
	src := &stubSource{name: "durable", value: "ghp_x"}
	r := credential.NewResolver(credential.ValidToken, src)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, ok := r.Resolve(ctx); ok {
		t.Error("expected cancelled context to resolve nothing")
	}

	if src.calls != 0 {
		t.Errorf("source consulted %d times after cancel", src.calls)
	}
}

func TestResolver_NilAcceptAllowsNonEmpty(t *testing.T) {
	r := credential.NewResolver(nil,
		&stubSource{name: "a", value: ""},
		&stubSource{name: "b", value: "anything"},
	)

	got, ok := r.Resolve(context.Background())
	if !ok || got != "anything" {
		t.Errorf("Resolve = %q, %v; want %q, true", got, ok, "anything")
	}

	testutil.AssertEqual(t, len(r.Sources()), 2, "source count")
}

func TestFromPrompt_NilPrompter(t *testing.T) {
	src := credential.FromPrompt(nil, credential.TokenDialog)

	if _, err := src.Lookup(context.Background()); !errors.Is(err, credential.ErrNoInteractiveInput) {
		t.Errorf("err = %v, want ErrNoInteractiveInput", err)
	}
}

func TestFromStore_NilStore(t *testing.T) {
	src := credential.FromStore("durable", nil, credential.TokenKey)

	v, err := src.Lookup(context.Background())
	if v != "" || err != nil {
		t.Errorf("Lookup = %q, %v; want empty, nil", v, err)
	}
}
