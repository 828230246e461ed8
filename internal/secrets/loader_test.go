package secrets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadInlineValue(t *testing.T) {
	got, err := Load(Source{Name: "api key", Value: "  s3cret  "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "s3cret" {
		t.Fatalf("expected trimmed secret, got %q", got)
	}
}

func TestLoadFileTakesPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")
	if err := os.WriteFile(path, []byte("from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := Load(Source{Name: "api key", Value: "inline", File: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "from-file" {
		t.Fatalf("expected file content, got %q", got)
	}
}

func TestLoadEnvFallback(t *testing.T) {
	t.Setenv("TALENTLENS_TEST_KEY", "from-env")

	got, err := Load(Source{Name: "api key", Env: "TALENTLENS_TEST_KEY"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "from-env" {
		t.Fatalf("expected env content, got %q", got)
	}
}

func TestLoadMissingSecret(t *testing.T) {
	_, err := Load(Source{Name: "api key"})
	if err == nil {
		t.Fatal("expected an error for an empty source")
	}
	if !strings.Contains(err.Error(), "api key") {
		t.Fatalf("error should mention the secret name, got: %v", err)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")
	if err := os.WriteFile(path, []byte("  \n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Load(Source{Name: "api key", File: path})
	if err == nil {
		t.Fatal("expected an error for an empty secret file")
	}
}
