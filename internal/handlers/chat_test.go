package handlers

import "testing"

func TestFirstNonEmpty(t *testing.T) {
	if got := firstNonEmpty("", "  ", "funny", "nice"); got != "funny" {
		t.Fatalf("expected funny, got %q", got)
	}
	if got := firstNonEmpty("  irony  ", "nice"); got != "irony" {
		t.Fatalf("expected trimmed irony, got %q", got)
	}
	if got := firstNonEmpty("", "   "); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
