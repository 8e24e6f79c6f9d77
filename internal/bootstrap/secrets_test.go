package bootstrap

import (
	"context"
	"testing"
)

func TestResolveSecretPrefersValue(t *testing.T) {
	got, err := ResolveSecret(context.Background(), "raw-key", "projects/p/secrets/s/versions/latest")
	if err != nil {
		t.Fatalf("ResolveSecret error: %v", err)
	}
	if got != "raw-key" {
		t.Fatalf("ResolveSecret = %q, want raw-key", got)
	}
}

func TestResolveSecretEmpty(t *testing.T) {
	got, err := ResolveSecret(context.Background(), "", "")
	if err != nil {
		t.Fatalf("ResolveSecret error: %v", err)
	}
	if got != "" {
		t.Fatalf("ResolveSecret = %q, want empty", got)
	}
}
