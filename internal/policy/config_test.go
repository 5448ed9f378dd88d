package policy

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func writePolicy(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "policy.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	rs, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}

	if blocked, _ := rs.SecretFile(".env"); !blocked {
		t.Error("built-in secret patterns must apply without a policy file")
	}
	if blocked, _ := rs.DangerousCommand("rm -rf /"); !blocked {
		t.Error("built-in dangerous patterns must apply without a policy file")
	}
	if blocked, _ := rs.GitMutation("git push"); !blocked {
		t.Error("built-in git rules must apply without a policy file")
	}
}

func TestLoadExtendsDefaults(t *testing.T) {
	path := writePolicy(t, `
secret_patterns:
  - "*.pem"
protected_root: /Users/jsp/dev/dots
dangerous_patterns:
  - "shred "
`)

	rs, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	// File entries apply.
	if blocked, _ := rs.SecretFile("server.pem"); !blocked {
		t.Error("expected file-supplied secret pattern to apply")
	}
	if blocked, _ := rs.ProtectedPath("/Users/jsp/dev/dots/flake.nix"); !blocked {
		t.Error("expected file-supplied protected root to apply")
	}
	// Built-in hard rules survive.
	if blocked, _ := rs.SecretFile(".env"); !blocked {
		t.Error("file entries must extend defaults, not replace them")
	}
	if blocked, _ := rs.DangerousCommand("rm -rf node_modules"); blocked {
		t.Error("built-in safe exceptions must survive extension")
	}
}

func TestLoadRejectsUnknownKey(t *testing.T) {
	path := writePolicy(t, "allow_everything: true\n")

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for unrecognized key")
	}
	if !IsConfigError(err) {
		t.Errorf("expected ConfigError, got %T", err)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writePolicy(t, "secret_patterns: [unterminated\n")

	if _, err := Load(path); !IsConfigError(err) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestLoadRejectsBadGlob(t *testing.T) {
	path := writePolicy(t, "secret_patterns:\n  - \"[unclosed\"\n")

	if _, err := Load(path); !IsConfigError(err) {
		t.Fatalf("expected ConfigError for uncompilable pattern, got %v", err)
	}
}

func TestLoadEmptyFileUsesDefaults(t *testing.T) {
	path := writePolicy(t, "")

	rs, err := Load(path)
	if err != nil {
		t.Fatalf("empty file should not error: %v", err)
	}
	if blocked, _ := rs.SecretFile(".env"); !blocked {
		t.Error("defaults must govern for an empty policy file")
	}
}

func TestDefaultConfigYAMLParses(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal([]byte(DefaultConfigYAML()), &cfg); err != nil {
		t.Fatalf("generated default policy must be valid YAML: %v", err)
	}
}

func TestDefaultConfigYAMLLoads(t *testing.T) {
	path := writePolicy(t, DefaultConfigYAML())

	if _, err := Load(path); err != nil {
		t.Fatalf("generated default policy must load cleanly: %v", err)
	}
}
