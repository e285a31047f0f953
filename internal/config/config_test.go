package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.LogFile == "" {
		t.Error("Expected LogFile to be set")
	}
	if cfg.DefaultExtension != "txt" {
		t.Errorf("Expected default extension txt, got %q", cfg.DefaultExtension)
	}
	if !cfg.AutosaveOnGrowth {
		t.Error("Expected AutosaveOnGrowth to default to true")
	}
	if cfg.TabWidth != 4 {
		t.Errorf("Expected TabWidth 4, got %d", cfg.TabWidth)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name:    "valid config",
			config:  DefaultConfig(),
			wantErr: false,
		},
		{
			name: "empty log_file",
			config: &Config{
				LogFile:          "",
				DefaultExtension: "txt",
				AutosaveOnGrowth: true,
				TabWidth:         4,
			},
			wantErr: true,
		},
		{
			name: "empty default_extension",
			config: &Config{
				LogFile:          "/tmp/test.log",
				DefaultExtension: "",
				AutosaveOnGrowth: true,
				TabWidth:         4,
			},
			wantErr: true,
		},
		{
			name: "zero tab_width",
			config: &Config{
				LogFile:          "/tmp/test.log",
				DefaultExtension: "txt",
				AutosaveOnGrowth: true,
				TabWidth:         0,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	testConfigPath := filepath.Join(tmpDir, "config.yaml")

	// Override ConfigPath for testing
	originalConfigPath := ConfigPath
	ConfigPath = func() string {
		return testConfigPath
	}
	defer func() {
		ConfigPath = originalConfigPath
	}()

	testCfg := &Config{
		LogFile:          "/tmp/scribe-test.log",
		DefaultExtension: "html",
		AutosaveOnGrowth: false,
		TabWidth:         2,
	}

	if err := testCfg.Save(); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	if _, err := os.Stat(testConfigPath); os.IsNotExist(err) {
		t.Fatal("Config file was not created")
	}

	loadedCfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if loadedCfg.DefaultExtension != "html" {
		t.Errorf("DefaultExtension mismatch: got %q, want html", loadedCfg.DefaultExtension)
	}
	if loadedCfg.AutosaveOnGrowth {
		t.Error("AutosaveOnGrowth should have loaded as false")
	}
	if loadedCfg.TabWidth != 2 {
		t.Errorf("TabWidth mismatch: got %d, want 2", loadedCfg.TabWidth)
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	tmpDir := t.TempDir()
	testConfigPath := filepath.Join(tmpDir, "nonexistent.yaml")

	originalConfigPath := ConfigPath
	ConfigPath = func() string {
		return testConfigPath
	}
	defer func() {
		ConfigPath = originalConfigPath
	}()

	// Load should return default config when file doesn't exist
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() should not error on missing file: %v", err)
	}

	if cfg.DefaultExtension != "txt" {
		t.Errorf("Expected default extension txt, got %q", cfg.DefaultExtension)
	}
}

func TestPartialConfigKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	testConfigPath := filepath.Join(tmpDir, "config.yaml")

	originalConfigPath := ConfigPath
	ConfigPath = func() string {
		return testConfigPath
	}
	defer func() {
		ConfigPath = originalConfigPath
	}()

	if err := os.WriteFile(testConfigPath, []byte("tab_width: 8\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.TabWidth != 8 {
		t.Errorf("TabWidth = %d, want 8", cfg.TabWidth)
	}
	if cfg.DefaultExtension != "txt" {
		t.Errorf("absent key should keep default, got %q", cfg.DefaultExtension)
	}
}

func TestExpandPath(t *testing.T) {
	homeDir, _ := os.UserHomeDir()

	tests := []struct {
		name     string
		input    string
		contains string // The output should contain this
	}{
		{
			name:     "tilde expansion",
			input:    "~/test",
			contains: homeDir,
		},
		{
			name:     "tilde only",
			input:    "~",
			contains: homeDir,
		},
		{
			name:     "absolute path",
			input:    "/tmp/test",
			contains: "/tmp/test",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := expandPath(tt.input)
			if err != nil {
				t.Fatalf("expandPath() error = %v", err)
			}
			if result == "" {
				t.Error("expandPath() returned empty string")
			}
			// Just verify it's not the original unexpanded path
			if tt.input[0] == '~' && result == tt.input {
				t.Errorf("Path was not expanded: %s", result)
			}
		})
	}
}
