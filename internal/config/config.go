// Package config loads the application configuration from a YAML file and
// the environment.
package config

import "time"

// Config is the root application configuration.
type Config struct {
	Analysis AnalysisConfig `yaml:"analysis"`
	Server   ServerConfig   `yaml:"server"`
	CORS     CORSConfig     `yaml:"cors"`
	Store    StoreConfig    `yaml:"store"`
	Log      LogConfig      `yaml:"log"`
	LLM      LLMConfig      `yaml:"llm"`
}

// AnalysisConfig holds analysis defaults.
type AnalysisConfig struct {
	DefaultLanguage string   `yaml:"default_language" env:"CONTENTLINT_DEFAULT_LANGUAGE"`
	Workers         int      `yaml:"workers"          env:"CONTENTLINT_WORKERS"        env-default:"0"`
	MaxTextBytes    int      `yaml:"max_text_bytes"   env:"CONTENTLINT_MAX_TEXT_BYTES" env-default:"1048576"`
	Assessments     []string `yaml:"assessments"      env:"CONTENTLINT_ASSESSMENTS"    env-separator:","`
	LanguagePacks   []string `yaml:"language_packs"   env:"CONTENTLINT_LANGUAGE_PACKS" env-separator:","`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"CONTENTLINT_SERVER_HOST"             env-default:"127.0.0.1"`
	Port            int           `yaml:"port"             env:"CONTENTLINT_SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"CONTENTLINT_SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"CONTENTLINT_SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"CONTENTLINT_SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"CONTENTLINT_SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CONTENTLINT_CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CONTENTLINT_CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CONTENTLINT_CORS_ALLOWED_HEADERS"   env-default:"Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CONTENTLINT_CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CONTENTLINT_CORS_MAX_AGE"           env-default:"86400"`
}

// StoreConfig holds the results store settings. An empty path disables it.
type StoreConfig struct {
	Path string `yaml:"path" env:"CONTENTLINT_STORE_PATH"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"CONTENTLINT_LOG_LEVEL"  env-default:"warn"`
	Format string `yaml:"format" env:"CONTENTLINT_LOG_FORMAT" env-default:"text"`
}

// LLMConfig selects the AI review backend.
type LLMConfig struct {
	Backend string `yaml:"backend" env:"CONTENTLINT_LLM_BACKEND" env-default:"auto"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return joinHostPort(s.Host, s.Port)
}
