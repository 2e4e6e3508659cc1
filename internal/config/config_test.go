package config

import (
	"strings"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name: "valid defaults",
			config: Config{
				LogLevel:       "info",
				CurrencySymbol: "$",
				Prompt:         "> ",
				MaxNameLength:  40,
			},
			wantErr: false,
		},
		{
			name: "valid euro and debug",
			config: Config{
				LogLevel:       "debug",
				CurrencySymbol: "€",
				MaxNameLength:  200,
			},
			wantErr: false,
		},
		{
			name: "invalid log level",
			config: Config{
				LogLevel:       "loud",
				CurrencySymbol: "$",
				MaxNameLength:  40,
			},
			wantErr:     true,
			errorString: "invalid log level 'loud': must be one of [debug info warn error]",
		},
		{
			name: "empty currency symbol",
			config: Config{
				LogLevel:       "info",
				CurrencySymbol: " ",
				MaxNameLength:  40,
			},
			wantErr:     true,
			errorString: "currency symbol cannot be empty",
		},
		{
			name: "currency symbol too long",
			config: Config{
				LogLevel:       "info",
				CurrencySymbol: "EURO",
				MaxNameLength:  40,
			},
			wantErr:     true,
			errorString: "invalid currency symbol 'EURO': at most 3 characters",
		},
		{
			name: "max name length too small",
			config: Config{
				LogLevel:       "info",
				CurrencySymbol: "$",
				MaxNameLength:  0,
			},
			wantErr:     true,
			errorString: "invalid max name length 0: must be at least 1",
		},
		{
			name: "max name length too large",
			config: Config{
				LogLevel:       "info",
				CurrencySymbol: "$",
				MaxNameLength:  500,
			},
			wantErr:     true,
			errorString: "invalid max name length 500: must be at most 200",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				if err == nil {
					t.Errorf("Config.Validate() error = nil, wantErr %v", tt.wantErr)
					return
				}
				if tt.errorString != "" && !strings.Contains(err.Error(), tt.errorString) {
					t.Errorf("Config.Validate() error = %v, want error containing %v", err.Error(), tt.errorString)
				}
			} else {
				if err != nil {
					t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
				}
			}
		})
	}
}

func TestConfig_ValidateCombinesErrors(t *testing.T) {
	cfg := Config{LogLevel: "nope", CurrencySymbol: "", MaxNameLength: -1}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("Config.Validate() error = nil, want combined error")
	}
	if got := strings.Count(err.Error(), "\n- "); got != 3 {
		t.Errorf("Config.Validate() reported %d problems, want 3: %v", got, err)
	}
}

func TestLoad(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		for _, key := range []string{"LOG_LEVEL", "CURRENCY_SYMBOL", "SHELL_PROMPT", "MAX_NAME_LENGTH"} {
			t.Setenv(key, "")
		}
		cfg := Load()

		if cfg.LogLevel != "info" {
			t.Errorf("Load() LogLevel = %v, want info", cfg.LogLevel)
		}
		if cfg.CurrencySymbol != "$" {
			t.Errorf("Load() CurrencySymbol = %v, want $", cfg.CurrencySymbol)
		}
		if cfg.Prompt != "> " {
			t.Errorf("Load() Prompt = %q, want %q", cfg.Prompt, "> ")
		}
		if cfg.MaxNameLength != 40 {
			t.Errorf("Load() MaxNameLength = %v, want 40", cfg.MaxNameLength)
		}
	})

	t.Run("environment variables", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("CURRENCY_SYMBOL", "€")
		t.Setenv("SHELL_PROMPT", "spese> ")
		t.Setenv("MAX_NAME_LENGTH", "25")
		cfg := Load()

		if cfg.LogLevel != "debug" {
			t.Errorf("Load() LogLevel = %v, want debug", cfg.LogLevel)
		}
		if cfg.CurrencySymbol != "€" {
			t.Errorf("Load() CurrencySymbol = %v, want €", cfg.CurrencySymbol)
		}
		if cfg.Prompt != "spese> " {
			t.Errorf("Load() Prompt = %q, want %q", cfg.Prompt, "spese> ")
		}
		if cfg.MaxNameLength != 25 {
			t.Errorf("Load() MaxNameLength = %v, want 25", cfg.MaxNameLength)
		}
	})

	t.Run("invalid integer falls back to default", func(t *testing.T) {
		t.Setenv("MAX_NAME_LENGTH", "many")
		if cfg := Load(); cfg.MaxNameLength != 40 {
			t.Errorf("Load() MaxNameLength = %v, want 40", cfg.MaxNameLength)
		}
	})
}
