package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "contentlint.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
analysis:
  default_language: ru
  workers: 4
  max_text_bytes: 2048
  assessments: [flesch-reading-ease, passive-voice]
  language_packs: [packs/eo.toml]

server:
  host: "0.0.0.0"
  port: 9090
  read_timeout: "5s"

cors:
  allowed_origins: "https://example.com"

store:
  path: results.db

log:
  level: debug
  format: json

llm:
  backend: none
`

func TestLoadFromYAML(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeYAML(t, t.TempDir(), validYAML)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Analysis.DefaultLanguage != "ru" || cfg.Analysis.Workers != 4 || cfg.Analysis.MaxTextBytes != 2048 {
		t.Errorf("analysis = %+v", cfg.Analysis)
	}
	if strings.Join(cfg.Analysis.Assessments, ",") != "flesch-reading-ease,passive-voice" {
		t.Errorf("assessments = %v", cfg.Analysis.Assessments)
	}
	if cfg.Server.Addr() != "0.0.0.0:9090" {
		t.Errorf("addr = %s", cfg.Server.Addr())
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("read timeout = %v", cfg.Server.ReadTimeout)
	}
	// Unset values keep their defaults.
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("shutdown timeout = %v, want default 10s", cfg.Server.ShutdownTimeout)
	}
	if cfg.CORS.AllowedMethods != "GET,POST,OPTIONS" {
		t.Errorf("cors methods = %q", cfg.CORS.AllowedMethods)
	}
	if cfg.Store.Path != "results.db" || cfg.Log.Level != "debug" || cfg.LLM.Backend != "none" {
		t.Errorf("store/log/llm = %+v %+v %+v", cfg.Store, cfg.Log, cfg.LLM)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CONTENTLINT_CONFIG", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Server.Addr() != "127.0.0.1:8080" {
		t.Errorf("addr = %s", cfg.Server.Addr())
	}
	if cfg.Analysis.MaxTextBytes != 1<<20 {
		t.Errorf("max text bytes = %d", cfg.Analysis.MaxTextBytes)
	}
	if cfg.Log.Level != "warn" || cfg.Log.Format != "text" || cfg.LLM.Backend != "auto" {
		t.Errorf("log/llm = %+v %+v", cfg.Log, cfg.LLM)
	}
}

func TestEnvOverridesYAML(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("CONTENTLINT_SERVER_PORT", "7070")
	t.Setenv("CONTENTLINT_ASSESSMENTS", "text-length,keyword-density")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("port = %d, want 7070", cfg.Server.Port)
	}
	if strings.Join(cfg.Analysis.Assessments, ",") != "text-length,keyword-density" {
		t.Errorf("assessments = %v", cfg.Analysis.Assessments)
	}
}

func TestConfigPathFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("CONTENTLINT_CONFIG", path)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Server.Port)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected an error for a missing explicit file")
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Analysis: AnalysisConfig{MaxTextBytes: 100},
			Server:   ServerConfig{Port: 8080},
			Log:      LogConfig{Level: "info", Format: "text"},
			LLM:      LLMConfig{Backend: "auto"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"negative workers", func(c *Config) { c.Analysis.Workers = -1 }, "analysis.workers"},
		{"zero max text", func(c *Config) { c.Analysis.MaxTextBytes = 0 }, "analysis.max_text_bytes"},
		{"bad port", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"bad backend", func(c *Config) { c.LLM.Backend = "gpt" }, "llm.backend"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestSplitList(t *testing.T) {
	got := SplitList(" a, ,b ,c")
	if strings.Join(got, "|") != "a|b|c" {
		t.Errorf("SplitList() = %v", got)
	}
}
