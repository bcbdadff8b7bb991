// File: config_test.go
// Title: Configuration Module Tests
// Description: Tests for TOML/YAML loading, defaults merging, environment
//              overrides, discovery and validation.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation
// - 2025-03-02 v0.2.0: Rewritten for ngc configuration keys

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	ngcerror "github.com/msto63/ngc/foundation/core/error"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("load TOML config", func(t *testing.T) {
		path := writeFile(t, tempDir, "ngc.toml", `
[parser]
max_depth = 32
allow_unterminated = true

[eval]
angle_unit = "radians"
`)
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}
		if got := cfg.GetInt("parser.max_depth"); got != 32 {
			t.Errorf("parser.max_depth = %d, want 32", got)
		}
		if !cfg.GetBool("parser.allow_unterminated") {
			t.Error("parser.allow_unterminated = false, want true")
		}
		if got := cfg.GetString("eval.angle_unit"); got != "radians" {
			t.Errorf("eval.angle_unit = %q", got)
		}
		if cfg.Format() != FormatTOML || cfg.FilePath() != path {
			t.Errorf("Format() = %v, FilePath() = %q", cfg.Format(), cfg.FilePath())
		}
	})

	t.Run("load YAML config", func(t *testing.T) {
		path := writeFile(t, tempDir, "ngc.yaml", "parser:\n  max_depth: 16\nlogging:\n  level: debug\n")
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}
		if got := cfg.GetInt("parser.max_depth"); got != 16 {
			t.Errorf("parser.max_depth = %d, want 16", got)
		}
		if cfg.Format() != FormatYAML {
			t.Errorf("Format() = %v, want yaml", cfg.Format())
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(tempDir, "absent.toml"))
		if !ngcerror.HasCode(err, ngcerror.CodeMissingConfig) {
			t.Errorf("err = %v, want MISSING_CONFIG", err)
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		path := writeFile(t, tempDir, "bad.toml", "[parser\nmax_depth = ")
		_, err := Load(path)
		if !ngcerror.HasCode(err, ngcerror.CodeInvalidConfig) {
			t.Errorf("err = %v, want INVALID_CONFIG", err)
		}
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := Load("  ")
		if !ngcerror.HasCode(err, ngcerror.CodeInvalidInput) {
			t.Errorf("err = %v, want INVALID_INPUT", err)
		}
	})
}

func TestDefaultsMergePerSection(t *testing.T) {
	path := writeFile(t, t.TempDir(), "ngc.toml", "[parser]\nmax_depth = 8\n")
	cfg, err := LoadWithOptions(path, LoadOptions{
		Format: FormatAuto,
		Defaults: map[string]interface{}{
			"parser": map[string]interface{}{
				"max_depth":        64,
				"max_input_length": 1 << 20,
			},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := cfg.GetInt("parser.max_depth"); got != 8 {
		t.Errorf("parser.max_depth = %d, want 8", got)
	}
	if got := cfg.GetInt("parser.max_input_length"); got != 1<<20 {
		t.Errorf("parser.max_input_length = %d, want default", got)
	}
}

func TestEnvOverride(t *testing.T) {
	cfg, err := LoadFromString("[eval]\nangle_unit = \"degrees\"\n", FormatTOML)
	if err != nil {
		t.Fatal(err)
	}
	cfg.envPrefix = "NGCTEST"
	t.Setenv("NGCTEST_EVAL_ANGLE_UNIT", "radians")
	t.Setenv("NGCTEST_PARSER_MAX_DEPTH", "12")

	if got := cfg.GetString("eval.angle_unit"); got != "radians" {
		t.Errorf("eval.angle_unit = %q, want env override", got)
	}
	if got := cfg.GetInt("parser.max_depth", 64); got != 12 {
		t.Errorf("parser.max_depth = %d, want 12", got)
	}
}

func TestSetAndGetAll(t *testing.T) {
	cfg := FromDefaults(nil, "")
	cfg.Set("output.format", "yaml")

	if !cfg.Has("output.format") || cfg.Has("output.color") {
		t.Error("Has() mismatch")
	}
	all := cfg.GetAll()
	all["output"].(map[string]interface{})["format"] = "json"
	if got := cfg.GetString("output.format"); got != "yaml" {
		t.Errorf("GetAll() leaked internal state, output.format = %q", got)
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()

	opts := DiscoveryOptions{
		Paths:     []string{dir},
		Filenames: []string{"ngc"},
		Defaults:  map[string]interface{}{"logging": map[string]interface{}{"level": "info"}},
	}

	cfg, err := Discover(opts)
	if err != nil {
		t.Fatalf("optional discovery failed: %v", err)
	}
	if got := cfg.GetString("logging.level"); got != "info" {
		t.Errorf("logging.level = %q, want default", got)
	}

	opts.Required = true
	if _, err := Discover(opts); !ngcerror.HasCode(err, ngcerror.CodeMissingConfig) {
		t.Errorf("err = %v, want MISSING_CONFIG", err)
	}

	writeFile(t, dir, "ngc.yml", "logging:\n  level: trace\n")
	cfg, err = Discover(opts)
	if err != nil {
		t.Fatal(err)
	}
	if got := cfg.GetString("logging.level"); got != "trace" {
		t.Errorf("logging.level = %q, want trace", got)
	}

	if got := ListPossibleConfigFiles(opts); len(got) != 3 || !strings.HasSuffix(got[0], "ngc.toml") {
		t.Errorf("ListPossibleConfigFiles() = %v", got)
	}
}

func TestValidate(t *testing.T) {
	rules := ValidationRules{
		"parser.max_depth": {Type: "int", Min: IntBound(1), Max: IntBound(1024)},
		"eval.angle_unit":  {OneOf: []string{"degrees", "radians"}},
		"logging.level":    {Required: true},
	}

	good, _ := LoadFromString("[parser]\nmax_depth = 64\n[eval]\nangle_unit = \"Degrees\"\n[logging]\nlevel = \"info\"\n", FormatTOML)
	if err := good.Validate(rules); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	bad, _ := LoadFromString("[parser]\nmax_depth = 0\n[eval]\nangle_unit = \"grads\"\n", FormatTOML)
	err := bad.Validate(rules)
	if !ngcerror.HasCode(err, ngcerror.CodeInvalidConfig) {
		t.Fatalf("Validate() = %v, want INVALID_CONFIG", err)
	}
	for _, want := range []string{"angle_unit", "logging.level", "max_depth"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err.Error(), want)
		}
	}
}
