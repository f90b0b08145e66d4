package backtrack

import (
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.DotMatchesNewline {
		t.Error("DotMatchesNewline should default to false")
	}
	if cfg.MaxRepeat != DefaultMaxRepeat {
		t.Errorf("MaxRepeat = %d, want %d", cfg.MaxRepeat, DefaultMaxRepeat)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{"zero max repeat", func(c *Config) { c.MaxRepeat = 0 }, "MaxRepeat"},
		{"negative max repeat", func(c *Config) { c.MaxRepeat = -5 }, "MaxRepeat"},
		{"huge max repeat", func(c *Config) { c.MaxRepeat = maxRepeatCeiling + 1 }, "MaxRepeat"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			cerr, ok := err.(*ConfigError)
			if !ok {
				t.Fatalf("Validate() error type = %T, want *ConfigError", err)
			}
			if cerr.Field != tt.wantField {
				t.Errorf("ConfigError.Field = %q, want %q", cerr.Field, tt.wantField)
			}
		})
	}
}

// TestConfigErrorPrefix verifies config errors use the "regexp:" prefix.
func TestConfigErrorPrefix(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxRepeat = 0

	_, err := CompileWithConfig("abc", cfg)
	if err == nil {
		t.Fatal("expected error for invalid config")
	}
	if !strings.HasPrefix(err.Error(), "regexp: invalid config:") {
		t.Errorf("config error = %q, want 'regexp: invalid config:' prefix", err.Error())
	}
}

// TestCompileRejectsConfigBeforeParsing: validation runs first, so even a
// malformed pattern reports the config error.
func TestCompileRejectsConfigBeforeParsing(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxRepeat = -1

	_, err := CompileWithConfig("[unterminated", cfg)
	if _, ok := err.(*ConfigError); !ok {
		t.Errorf("error type = %T (%v), want *ConfigError", err, err)
	}
}
