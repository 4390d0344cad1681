package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test output defaults
	if cfg.Output.Format != FormatDecimal {
		t.Errorf("expected format %q, got %q", FormatDecimal, cfg.Output.Format)
	}
	if cfg.Output.Precision != -1 {
		t.Errorf("expected precision -1, got %d", cfg.Output.Precision)
	}

	// Test angle defaults
	if cfg.Angles.Unit != UnitRadians {
		t.Errorf("expected unit %q, got %q", UnitRadians, cfg.Angles.Unit)
	}

	// Test logging defaults
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected log level 'warn', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, FileName)

	yamlContent := `
output:
  format: raw
  precision: 4

angles:
  unit: degrees

logging:
  level: "debug"
  log_file: "geomtool.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Load config
	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Verify values were loaded
	if cfg.Output.Format != FormatRaw {
		t.Errorf("expected format raw, got %s", cfg.Output.Format)
	}
	if cfg.Output.Precision != 4 {
		t.Errorf("expected precision 4, got %d", cfg.Output.Precision)
	}
	if cfg.Angles.Unit != UnitDegrees {
		t.Errorf("expected unit degrees, got %s", cfg.Angles.Unit)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "geomtool.log" {
		t.Errorf("expected log file 'geomtool.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFilePartial(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, FileName)
	if err := os.WriteFile(configPath, []byte("angles:\n  unit: degrees\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Keys absent from the file keep their defaults
	if cfg.Output.Format != FormatDecimal {
		t.Errorf("expected default format, got %s", cfg.Output.Format)
	}
	if cfg.Angles.Unit != UnitDegrees {
		t.Errorf("expected unit degrees, got %s", cfg.Angles.Unit)
	}
}

func TestLoadFromFileEmpty(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, FileName)
	if err := os.WriteFile(configPath, nil, 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Errorf("expected empty file to load, got %v", err)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	// Create temporary config file with invalid YAML
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
output:
  precision: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Try to load - should error
	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileUnknownKey(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, FileName)
	if err := os.WriteFile(configPath, []byte("output:\n  fromat: raw\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error for misspelled key, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/geomtool.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"format", func(c *Config) { c.Output.Format = "hex" }, "output.format"},
		{"precision low", func(c *Config) { c.Output.Precision = -2 }, "output.precision"},
		{"precision high", func(c *Config) { c.Output.Precision = 17 }, "output.precision"},
		{"unit", func(c *Config) { c.Angles.Unit = "gradians" }, "angles.unit"},
		{"level", func(c *Config) { c.Logging.Level = "trace" }, "logging.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("expected error to name %s, got %v", tt.field, err)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	// Just verify it returns a non-empty path
	// Actual path depends on OS
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}

	// Verify path is absolute
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	// Save current directory
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	// Create temp directory and change to it
	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	t.Setenv("HOME", tmpDir)

	// No config file exists - should return empty
	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	// Create geomtool.yaml in current directory
	configPath := filepath.Join(tmpDir, FileName)
	if err := os.WriteFile(configPath, []byte("angles:\n  unit: degrees\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	// Should find it now
	path = findConfigFile()
	if path == "" {
		t.Errorf("expected to find %s in current directory", FileName)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name: "debug flag",
			setup: func() {
				*flagDebug = true
			},
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() {
				*flagDebug = false
			},
		},
		{
			name: "degrees flag",
			setup: func() {
				*flagDegrees = true
			},
			verify: func(cfg *Config) {
				if cfg.Angles.Unit != UnitDegrees {
					t.Errorf("expected unit degrees, got %s", cfg.Angles.Unit)
				}
			},
			teardown: func() {
				*flagDegrees = false
			},
		},
		{
			name: "raw flag",
			setup: func() {
				*flagRaw = true
			},
			verify: func(cfg *Config) {
				if cfg.Output.Format != FormatRaw {
					t.Errorf("expected format raw, got %s", cfg.Output.Format)
				}
			},
			teardown: func() {
				*flagRaw = false
			},
		},
		{
			name: "precision flag",
			setup: func() {
				*flagPrecision = 3
			},
			verify: func(cfg *Config) {
				if cfg.Output.Precision != 3 {
					t.Errorf("expected precision 3, got %d", cfg.Output.Precision)
				}
			},
			teardown: func() {
				*flagPrecision = -2
			},
		},
		{
			name:  "unset precision flag keeps config",
			setup: func() {},
			verify: func(cfg *Config) {
				if cfg.Output.Precision != -1 {
					t.Errorf("expected default precision -1, got %d", cfg.Output.Precision)
				}
			},
			teardown: func() {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			tt.setup()
			defer tt.teardown()

			// Apply flags to default config
			cfg := Default()
			applyFlags(cfg)

			// Verify
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, FileName)

	yamlContent := `
output:
  format: decimal
  precision: 2
angles:
  unit: degrees
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Set flag to override config file
	*flagConfig = configPath
	*flagRaw = true
	defer func() {
		*flagConfig = ""
		*flagRaw = false
	}()

	// Load config
	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Format should be from flag (raw), not file (decimal)
	if cfg.Output.Format != FormatRaw {
		t.Errorf("expected format raw from flag, got %s", cfg.Output.Format)
	}

	// Precision and unit should be from file since no flag override
	if cfg.Output.Precision != 2 {
		t.Errorf("expected precision 2 from file, got %d", cfg.Output.Precision)
	}
	if cfg.Angles.Unit != UnitDegrees {
		t.Errorf("expected unit degrees from file, got %s", cfg.Angles.Unit)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, FileName)
	if err := os.WriteFile(configPath, []byte("angles:\n  unit: turns\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected Load to reject unknown angle unit")
	}
}

func TestSaveTo(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", FileName)

	cfg := Default()
	cfg.Output.Format = FormatRaw
	cfg.Angles.Unit = UnitDegrees
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("reloaded config = %+v, want %+v", *loaded, *cfg)
	}
}

func TestSave(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)
	t.Setenv("HOME", tmpDir)
	t.Setenv("APPDATA", tmpDir)

	if err := Default().Save(); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}
	if _, err := os.Stat(filepath.Join(ConfigDir(), FileName)); err != nil {
		t.Errorf("expected saved config in %s: %v", ConfigDir(), err)
	}
}
