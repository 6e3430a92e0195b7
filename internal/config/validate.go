package config

import (
	"fmt"
	"strings"

	"github.com/pthm/contentlint/internal/llm"
	"github.com/pthm/contentlint/internal/logging"
)

// Validate checks the loaded values. Load calls it automatically.
func (c *Config) Validate() error {
	if c.Analysis.Workers < 0 {
		return fmt.Errorf("analysis.workers must be >= 0 (got %d)", c.Analysis.Workers)
	}
	if c.Analysis.MaxTextBytes <= 0 {
		return fmt.Errorf("analysis.max_text_bytes must be > 0 (got %d)", c.Analysis.MaxTextBytes)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535 (got %d)", c.Server.Port)
	}
	if c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("server.shutdown_timeout must be >= 0")
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch strings.ToLower(c.Log.Format) {
	case logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("log.format must be %q or %q (got %q)", logging.FormatText, logging.FormatJSON, c.Log.Format)
	}

	switch llm.Backend(c.LLM.Backend) {
	case llm.BackendAuto, llm.BackendAPI, llm.BackendCLI, llm.BackendNone:
	default:
		return fmt.Errorf("llm.backend: unknown backend %q", c.LLM.Backend)
	}

	return nil
}

// SplitList splits a comma separated setting, dropping empty entries.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
