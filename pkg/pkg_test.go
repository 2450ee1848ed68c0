package pkg

import (
	"os"
	"strings"
	"testing"
)

func TestName(t *testing.T) {
	if Name == "" {
		t.Error("Name must not be empty")
	}

	if strings.ToLower(Name) != Name {
		t.Errorf("Name must be lowercase, got %q", Name)
	}
}

func TestVersion(t *testing.T) {
	// Version is embedded from VERSION file, so it should not be empty.
	buf, err := os.ReadFile("VERSION")
	if err != nil {
		t.Fatalf("read VERSION: %v", err)
	}

	if strings.TrimSpace(Version) != strings.TrimSpace(string(buf)) {
		t.Errorf("expected Version %q, got %q",
			strings.TrimSpace(string(buf)), Version)
	}
}
