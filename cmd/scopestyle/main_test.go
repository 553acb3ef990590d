package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"scopestyle/internal/config"
	"scopestyle/internal/theme/builtin"
)

const fileTheme = `{
  "uuid": "5d3c7a52-6f0e-4f0e-9b7d-2c61d1e0aa01",
  "name": "File Theme",
  "settings": [
    {"settings": {"foreground": "#EEEEEE", "background": "#101010"}},
    {"scope": "comment", "settings": {"foreground": "#777777", "fontStyle": "italic"}},
    {"scope": "source.go keyword", "settings": {"foreground": "#FF8800", "fontStyle": "bold"}}
  ]
}`

func setupRun(t *testing.T) string {
	t.Helper()
	cleanup := config.ResetForTesting(t)
	t.Cleanup(cleanup)
	dir := t.TempDir()
	t.Setenv("SCOPESTYLE_CATALOG_PATH", filepath.Join(dir, "catalog.db"))
	return dir
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeTheme(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write theme: %v", err)
	}
	return path
}

func TestRunVersion(t *testing.T) {
	setupRun(t)
	code, out, _ := runCLI(t, "-version")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(out, "scopestyle version") {
		t.Errorf("unexpected version output %q", out)
	}
}

func TestRunBuiltinPreview(t *testing.T) {
	setupRun(t)
	code, out, errOut := runCLI(t, "-builtin", "dracula", "-profile", "none", "-scope", "source.go comment.line", "-scope", "source.go string")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, errOut)
	}
	if !strings.Contains(out, "Dracula ("+builtin.UUID("dracula")+") dark") {
		t.Errorf("missing header in %q", out)
	}
	if !strings.Contains(out, "comment.line") || !strings.Contains(out, "italic") {
		t.Errorf("comment scope not previewed: %q", out)
	}
	if strings.Count(out, "\n") != 3 {
		t.Errorf("expected header plus two scope lines, got %q", out)
	}
}

func TestRunDefaultsToConfiguredBuiltin(t *testing.T) {
	setupRun(t)
	code, out, errOut := runCLI(t, "-profile", "none")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, errOut)
	}
	if !strings.Contains(out, builtin.UUID(config.DefaultBuiltin)) {
		t.Errorf("expected default builtin %s, got %q", config.DefaultBuiltin, out)
	}
	if strings.Count(out, "\n") != len(defaultScopes)+1 {
		t.Errorf("expected the default scopes to be previewed, got %q", out)
	}
}

func TestRunThemeFile(t *testing.T) {
	dir := setupRun(t)
	path := writeTheme(t, dir, "file.json", fileTheme)

	code, out, errOut := runCLI(t, "-theme", path, "-profile", "none", "-font", "Menlo", "-font-size", "13", "-scope", "source.go keyword.control")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, errOut)
	}
	for _, want := range []string{"File Theme", "fg=#ff8800", "bold", "font=Menlo 13pt"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
}

func TestRunGutter(t *testing.T) {
	setupRun(t)
	code, out, errOut := runCLI(t, "-builtin", "nord", "-profile", "none", "-gutter")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, errOut)
	}
	if !strings.Contains(out, "selectionIconsPressed") {
		t.Errorf("gutter palette missing: %q", out)
	}
	if strings.Contains(out, "keyword.control") {
		t.Errorf("-gutter alone should skip the scope preview: %q", out)
	}
}

func TestRunImportListAndUUID(t *testing.T) {
	dir := setupRun(t)
	path := writeTheme(t, dir, "file.json", fileTheme)

	code, out, errOut := runCLI(t, "-import", path)
	if code != 0 {
		t.Fatalf("import exit code = %d, stderr: %s", code, errOut)
	}
	if !strings.Contains(out, "imported 5d3c7a52-6f0e-4f0e-9b7d-2c61d1e0aa01") {
		t.Errorf("unexpected import output %q", out)
	}
	if strings.Contains(out, "fg=") {
		t.Errorf("-import alone should not preview: %q", out)
	}

	code, out, errOut = runCLI(t, "-list")
	if code != 0 {
		t.Fatalf("list exit code = %d, stderr: %s", code, errOut)
	}
	for _, want := range []string{"Bundled themes:", "solarized-light", "Catalog (", "File Theme"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q: %q", want, out)
		}
	}

	if err := os.Remove(path); err != nil {
		t.Fatalf("remove theme file: %v", err)
	}
	code, out, errOut = runCLI(t, "-uuid", "5d3c7a52-6f0e-4f0e-9b7d-2c61d1e0aa01", "-profile", "none", "-scope", "source.c comment")
	if code != 0 {
		t.Fatalf("uuid exit code = %d, stderr: %s", code, errOut)
	}
	if !strings.Contains(out, "fg=#777777") {
		t.Errorf("catalogued theme not resolved: %q", out)
	}
}

func TestRunUUIDOfBuiltin(t *testing.T) {
	setupRun(t)
	code, out, errOut := runCLI(t, "-uuid", builtin.UUID("gruvbox"), "-profile", "none", "-scope", "source")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, errOut)
	}
	if !strings.HasPrefix(out, "Gruvbox") {
		t.Errorf("expected gruvbox, got %q", out)
	}
}

func TestRunSave(t *testing.T) {
	setupRun(t)
	code, out, errOut := runCLI(t, "-builtin", "monokai", "-profile", "none", "-scope", "source", "-save")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, errOut)
	}
	id := builtin.UUID("monokai")
	if !strings.Contains(out, "saved theme "+id) {
		t.Errorf("unexpected output %q", out)
	}
	if got := config.GetString(config.KeyThemeUUID); got != id {
		t.Errorf("config %s = %q, want %q", config.KeyThemeUUID, got, id)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
		want string
	}{
		{"unknown builtin", []string{"-builtin", "nope", "-profile", "none"}, 1, "unknown builtin theme"},
		{"unknown profile", []string{"-profile", "sepia"}, 2, "unknown render profile"},
		{"missing uuid", []string{"-uuid", "missing", "-profile", "none"}, 1, "not found"},
		{"bad extension", []string{"-theme", "theme.txt", "-profile", "none"}, 1, ".txt"},
		{"stray argument", []string{"extra"}, 2, "unexpected arguments"},
		{"unknown flag", []string{"-bogus"}, 2, "bogus"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupRun(t)
			code, _, errOut := runCLI(t, tt.args...)
			if code != tt.code {
				t.Errorf("exit code = %d, want %d (stderr: %s)", code, tt.code, errOut)
			}
			if !strings.Contains(errOut, tt.want) {
				t.Errorf("stderr %q missing %q", errOut, tt.want)
			}
		})
	}
}
