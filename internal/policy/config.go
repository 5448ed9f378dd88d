package policy

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/jsp/guardrails/internal/rules"
)

// Config is the external policy document. All list fields extend the
// embedded defaults; protected_root is a scalar and replaces its default.
type Config struct {
	SecretPatterns     []string `yaml:"secret_patterns"`
	ProtectedRoot      string   `yaml:"protected_root"`
	ProtectedAllowlist []string `yaml:"protected_allowlist"`
	ExemptSubpaths     []string `yaml:"exempt_subpaths"`
	DangerousPatterns  []string `yaml:"dangerous_patterns"`
	SafePatterns       []string `yaml:"safe_patterns"`
	BlockedGitCommands []string `yaml:"blocked_git_commands"`
}

// ConfigError wraps a policy-source failure: unreadable file, invalid YAML,
// unrecognized key, or uncompilable pattern. A missing file is not a
// ConfigError; the embedded defaults govern in that case.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("policy config %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// IsConfigError reports whether err is a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// DefaultConfig returns the embedded policy. The hard rules — secret files,
// dangerous commands with safe exceptions, git mutations, exempt subpaths —
// are enforced even when no external policy file exists. protected_root has
// no default: it is machine-specific and off until configured.
func DefaultConfig() *Config {
	return &Config{
		SecretPatterns: []string{"*.env", ".env", ".env.*", "secrets.*", "*.age"},
		ExemptSubpaths: []string{".claude"},
		DangerousPatterns: []string{
			"rm -rf /",
			"rm -rf ~",
			"dd if=/dev/zero",
			"mkfs.",
			"> /dev/sda",
			"chmod -R 777 /",
		},
		SafePatterns: []string{
			"rm -rf node_modules",
			"rm -rf dist",
			"rm -rf build",
		},
		BlockedGitCommands: []string{"commit", "push", "rebase", "merge", "reset --hard"},
	}
}

// DefaultPath returns ~/.guardrails/policy.yaml, or empty if the home
// directory cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".guardrails", "policy.yaml")
}

// Load reads the policy source and compiles it into a Ruleset. An empty
// path falls back to DefaultPath. A missing file yields the embedded
// defaults; any other failure is a ConfigError so the caller fails closed.
func Load(path string) (*rules.Ruleset, error) {
	if path == "" {
		path = DefaultPath()
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	rs, err := rules.Compile(cfg.patterns())
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	return rs, nil
}

// LoadConfig reads and merges the policy document without compiling it.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) || path == "" {
			return cfg, nil
		}
		return nil, &ConfigError{Path: path, Err: err}
	}

	var file Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return nil, &ConfigError{Path: path, Err: err}
	}

	cfg.extend(&file)
	return cfg, nil
}

// extend appends the file's rule entries to the defaults. The built-in hard
// rules can be added to but never removed through the external source.
func (c *Config) extend(file *Config) {
	c.SecretPatterns = append(c.SecretPatterns, file.SecretPatterns...)
	c.ProtectedAllowlist = append(c.ProtectedAllowlist, file.ProtectedAllowlist...)
	c.ExemptSubpaths = append(c.ExemptSubpaths, file.ExemptSubpaths...)
	c.DangerousPatterns = append(c.DangerousPatterns, file.DangerousPatterns...)
	c.SafePatterns = append(c.SafePatterns, file.SafePatterns...)
	c.BlockedGitCommands = append(c.BlockedGitCommands, file.BlockedGitCommands...)
	if file.ProtectedRoot != "" {
		c.ProtectedRoot = file.ProtectedRoot
	}
}

func (c *Config) patterns() rules.Patterns {
	return rules.Patterns{
		SecretPatterns:     c.SecretPatterns,
		ProtectedRoot:      c.ProtectedRoot,
		ProtectedAllowlist: c.ProtectedAllowlist,
		ExemptSubpaths:     c.ExemptSubpaths,
		DangerousPatterns:  c.DangerousPatterns,
		SafePatterns:       c.SafePatterns,
		BlockedGitCommands: c.BlockedGitCommands,
	}
}

// DefaultConfigYAML returns a commented policy document for init-policy.
func DefaultConfigYAML() string {
	return `# guardrails policy configuration
# Generated by: guardrails init-policy
#
# Entries here EXTEND the built-in defaults; the built-in hard rules cannot
# be removed, only added to. protected_root replaces its (empty) default.
# Policy is reloaded on every hook invocation — edits take effect on the
# next tool call without restarting anything.

# Shell-glob patterns matched against file basenames.
secret_patterns: []

# Absolute path of a subtree that is deny-by-default (e.g. a dotfiles
# checkout). Empty disables the protected-root rule.
protected_root: ""

# Paths under protected_root that remain accessible. Entries may be
# absolute or relative to protected_root; each entry allows its subtree.
protected_allowlist: []

# Path segments that exempt a path from protected_root wherever they
# appear. The built-in default keeps .claude reachable at any depth.
exempt_subpaths: []

# Substring patterns over normalized command text. First match denies.
dangerous_patterns: []

# Substring patterns that override a dangerous match (e.g. a recursive
# delete scoped to a disposable directory).
safe_patterns: []

# Git subcommands (or token sequences like "reset --hard") that mutate
# history or remotes. Matching commands are denied; git stays read-only.
blocked_git_commands: []
`
}
