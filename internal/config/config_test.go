package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MENU_FILE", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.MenuFile != "menu.json" {
		t.Errorf("MenuFile = %q, want %q", cfg.MenuFile, "menu.json")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("MENU_FILE", "/tmp/carta.json")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.MenuFile != "/tmp/carta.json" {
		t.Errorf("MenuFile = %q, want %q", cfg.MenuFile, "/tmp/carta.json")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{MenuFile: "menu.json", LogLevel: "info"}, false},
		{"mixed case log level", Config{MenuFile: "menu.json", LogLevel: "WARN"}, false},
		{"unknown log level", Config{MenuFile: "menu.json", LogLevel: "loud"}, true},
		{"empty menu file", Config{MenuFile: "", LogLevel: "info"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
