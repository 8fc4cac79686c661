package project

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
	return path
}

func TestLoadMissing(t *testing.T) {
	m, ok, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ok {
		t.Fatalf("expected no manifest, found %s", m.Path)
	}
}

func TestLoadDecodesFields(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
[package]
name = "calculator"

[repl]
prompt = "monkey> "
ui = true

[tokenize]
format = "json"
cache = false
`)

	m, ok, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ok {
		t.Fatal("expected a manifest")
	}
	if m.Path != path {
		t.Errorf("expected path %q, got %q", path, m.Path)
	}
	if m.Root != dir {
		t.Errorf("expected root %q, got %q", dir, m.Root)
	}
	if m.Config.Package.Name != "calculator" {
		t.Errorf("package name: got %q", m.Config.Package.Name)
	}
	if m.Config.Repl.Prompt != "monkey> " || !m.Config.Repl.UI {
		t.Errorf("repl config: got %+v", m.Config.Repl)
	}
	if m.Config.Tokenize.Format != "json" {
		t.Errorf("tokenize format: got %q", m.Config.Tokenize.Format)
	}
	if m.Config.Tokenize.Cache == nil || *m.Config.Tokenize.Cache {
		t.Errorf("tokenize cache: got %v", m.Config.Tokenize.Cache)
	}
}

func TestLoadFillsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
[package]
name = "minimal"
`)

	m, ok, err := Load(dir)
	if err != nil || !ok {
		t.Fatalf("Load: ok=%v err=%v", ok, err)
	}
	if m.Config.Repl.Prompt != ">> " {
		t.Errorf("expected default prompt, got %q", m.Config.Repl.Prompt)
	}
	if m.Config.Tokenize.Format != "pretty" {
		t.Errorf("expected default format, got %q", m.Config.Tokenize.Format)
	}
	if m.Config.Tokenize.Cache == nil || !*m.Config.Tokenize.Cache {
		t.Errorf("expected cache default true, got %v", m.Config.Tokenize.Cache)
	}
}

func TestLoadSearchesUpward(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `
[package]
name = "above"
`)
	nested := filepath.Join(root, "src", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	m, ok, err := Load(nested)
	if err != nil || !ok {
		t.Fatalf("Load: ok=%v err=%v", ok, err)
	}
	if m.Config.Package.Name != "above" {
		t.Errorf("expected the root manifest, got package %q", m.Config.Package.Name)
	}
	if m.Root != root {
		t.Errorf("expected root %q, got %q", root, m.Root)
	}
}

func TestLoadBadToml(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `package = [broken`)

	if _, _, err := Load(dir); err == nil {
		t.Error("expected a decode error")
	}
}
