package config

import (
	"os"
	"testing"

	"github.com/emysliwietz/rosarium/internal/prayer"
)

func TestLoad_Defaults(t *testing.T) {
	// Clear any existing env vars that might interfere
	clearEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with defaults failed: %v", err)
	}

	// Check defaults are applied
	if cfg.PrayerDir != "preces" {
		t.Errorf("PrayerDir = %q, want %q", cfg.PrayerDir, "preces")
	}
	if cfg.Language != prayer.Latina {
		t.Errorf("Language = %q, want %q", cfg.Language, prayer.Latina)
	}
	if cfg.AudioEnabled {
		t.Error("AudioEnabled = true, want false")
	}
	if cfg.AudioCommand != "paplay" {
		t.Errorf("AudioCommand = %q, want %q", cfg.AudioCommand, "paplay")
	}
	if cfg.Volume != 100 {
		t.Errorf("Volume = %d, want 100", cfg.Volume)
	}
	if cfg.CacheSize != 128 {
		t.Errorf("CacheSize = %d, want 128", cfg.CacheSize)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "text")
	}
	if cfg.LogFile != "rosarium.log" {
		t.Errorf("LogFile = %q, want %q", cfg.LogFile, "rosarium.log")
	}
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv()

	// Set custom values
	os.Setenv("ROSARIUM_PRAYER_DIR", "/usr/share/preces")
	os.Setenv("ROSARIUM_LANGUAGE", "Anglia")
	os.Setenv("ROSARIUM_AUDIO", "true")
	os.Setenv("ROSARIUM_AUDIO_COMMAND", "mpv")
	os.Setenv("ROSARIUM_VOLUME", "40")
	os.Setenv("ROSARIUM_CACHE_SIZE", "16")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("LOG_FORMAT", "json")
	os.Setenv("LOG_FILE", "-")
	defer clearEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.PrayerDir != "/usr/share/preces" {
		t.Errorf("PrayerDir = %q, want %q", cfg.PrayerDir, "/usr/share/preces")
	}
	if cfg.Language != prayer.Anglia {
		t.Errorf("Language = %q, want %q", cfg.Language, prayer.Anglia)
	}
	if !cfg.AudioEnabled {
		t.Error("AudioEnabled = false, want true")
	}
	if cfg.AudioCommand != "mpv" {
		t.Errorf("AudioCommand = %q, want %q", cfg.AudioCommand, "mpv")
	}
	if cfg.Volume != 40 {
		t.Errorf("Volume = %d, want 40", cfg.Volume)
	}
	if got := cfg.VolumeFraction(); got != 0.4 {
		t.Errorf("VolumeFraction() = %v, want 0.4", got)
	}
	if cfg.CacheSize != 16 {
		t.Errorf("CacheSize = %d, want 16", cfg.CacheSize)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "json")
	}
	if cfg.LogFile != LogToStderr {
		t.Errorf("LogFile = %q, want %q", cfg.LogFile, LogToStderr)
	}
}

func TestLoad_InvalidEnv(t *testing.T) {
	clearEnv()
	os.Setenv("ROSARIUM_LANGUAGE", "klingon")
	defer clearEnv()

	if _, err := Load(); err == nil {
		t.Error("Load() with unknown language should fail")
	}
}

func TestLoad_MalformedNumbersUseDefaults(t *testing.T) {
	clearEnv()
	os.Setenv("ROSARIUM_VOLUME", "loud")
	os.Setenv("ROSARIUM_AUDIO", "maybe")
	defer clearEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Volume != 100 {
		t.Errorf("Volume = %d, want 100", cfg.Volume)
	}
	if cfg.AudioEnabled {
		t.Error("AudioEnabled = true, want false")
	}
}

func validConfig() Config {
	return Config{
		PrayerDir:    "preces",
		Language:     prayer.Latina,
		CacheSize:    128,
		AudioEnabled: false,
		AudioCommand: "paplay",
		Volume:       100,
		LogLevel:     "info",
		LogFormat:    "text",
		LogFile:      "rosarium.log",
	}
}

func TestConfig_Validate(t *testing.T) {
	// Table-driven tests for validation
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(*Config) {},
			wantErr: false,
		},
		{
			name: "valid audio config",
			modify: func(c *Config) {
				c.AudioEnabled = true
				c.Volume = 0
			},
			wantErr: false,
		},
		{
			name:    "empty prayer dir",
			modify:  func(c *Config) { c.PrayerDir = "" },
			wantErr: true,
		},
		{
			name:    "unknown language",
			modify:  func(c *Config) { c.Language = "esperanto" },
			wantErr: true,
		},
		{
			name:    "zero cache size",
			modify:  func(c *Config) { c.CacheSize = 0 },
			wantErr: true,
		},
		{
			name: "audio without command",
			modify: func(c *Config) {
				c.AudioEnabled = true
				c.AudioCommand = ""
			},
			wantErr: true,
		},
		{
			name:    "missing command is fine without audio",
			modify:  func(c *Config) { c.AudioCommand = "" },
			wantErr: false,
		},
		{
			name:    "volume too high",
			modify:  func(c *Config) { c.Volume = 101 },
			wantErr: true,
		},
		{
			name:    "negative volume",
			modify:  func(c *Config) { c.Volume = -1 },
			wantErr: true,
		},
		{
			name:    "invalid log level",
			modify:  func(c *Config) { c.LogLevel = "verbose" },
			wantErr: true,
		},
		{
			name:    "invalid log format",
			modify:  func(c *Config) { c.LogFormat = "xml" },
			wantErr: true,
		},
		{
			name:    "empty log file",
			modify:  func(c *Config) { c.LogFile = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// clearEnv removes all config-related environment variables
func clearEnv() {
	vars := []string{
		"ROSARIUM_PRAYER_DIR", "ROSARIUM_LANGUAGE", "ROSARIUM_AUDIO",
		"ROSARIUM_AUDIO_COMMAND", "ROSARIUM_VOLUME", "ROSARIUM_CACHE_SIZE",
		"LOG_LEVEL", "LOG_FORMAT", "LOG_FILE",
	}
	for _, v := range vars {
		os.Unsetenv(v)
	}
}
