package credential

import (
	"context"
	"testing"
)

func TestFromGH(t *testing.T) {
	original := tokenForHost
	defer func() { tokenForHost = original }()

	var gotHost string

	tokenForHost = func(host string) (string, string) {
		gotHost = host
		return "ghp_fromgh", "GH_TOKEN"
	}

	src := FromGH("github.com")
	if src.Name() != SourceGH {
		t.Errorf("Name() = %q, want %q", src.Name(), SourceGH)
	}

	token, err := src.Lookup(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if token != "ghp_fromgh" {
		t.Errorf("token = %q, want %q", token, "ghp_fromgh")
	}

	if gotHost != "github.com" {
		t.Errorf("host = %q, want %q", gotHost, "github.com")
	}
}
