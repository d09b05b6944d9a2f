package server

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadTemplate(t *testing.T) {
	baseDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(baseDir, "template"), 0o755); err != nil {
		t.Fatal(err)
	}
	content := "<html><body>camera</body></html>"
	if err := os.WriteFile(filepath.Join(baseDir, "template", "index.html"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := string(LoadTemplate(baseDir)); got != content {
		t.Errorf("template %q, want %q", got, content)
	}
}

func TestLoadTemplateMissingFallsBack(t *testing.T) {
	if got := string(LoadTemplate(t.TempDir())); got != fallbackTemplate {
		t.Errorf("fallback %q, want %q", got, fallbackTemplate)
	}
}
