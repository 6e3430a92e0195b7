package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pthm/contentlint/internal/analysis"
	"github.com/pthm/contentlint/internal/assessments"
	"github.com/pthm/contentlint/internal/config"
	"github.com/pthm/contentlint/internal/corpus"
	"github.com/pthm/contentlint/internal/language"
	"github.com/pthm/contentlint/internal/llm"
	"github.com/pthm/contentlint/internal/logging"
	"github.com/pthm/contentlint/internal/paper"
	"github.com/pthm/contentlint/internal/parser"
	"github.com/pthm/contentlint/internal/ui"
)

var (
	// Global flags
	verbose    bool
	format     string
	configPath string
	logLevel   string
	langPacks  []string

	cfg      *config.Config
	logger   = zerolog.Nop()
	globalUI *ui.UI
)

// RootCmd is the contentlint command tree.
var RootCmd = &cobra.Command{
	Use:   "contentlint",
	Short: "Readability and SEO analysis for multilingual content",
	Long: `contentlint scores page content for readability and search
optimization in many languages.

Each paper is analyzed by a researcher built for its language: a
stemmer, a passive voice detector, syllable rules and a Flesch reading
ease formula. Languages that lack a feature skip the assessments that
need it instead of failing, and unknown languages fall back to a
language neutral researcher.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	RootCmd.PersistentFlags().StringVarP(&format, "format", "f", "terminal", "Output format (terminal, plain, json)")
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default $CONTENTLINT_CONFIG or ./contentlint.yaml)")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	RootCmd.PersistentFlags().StringSliceVar(&langPacks, "lang-pack", nil, "Custom language pack file (.yaml or .toml), repeatable")
}

// setup loads the configuration, builds the logger and registers custom
// language packs before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	f, err := ui.ParseFormat(format)
	if err != nil {
		return err
	}
	format = string(f)
	globalUI = ui.New(os.Stdout, os.Stderr, f)

	c, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	switch {
	case logLevel != "":
		c.Log.Level = logLevel
	case verbose:
		c.Log.Level = "debug"
	}
	l, err := logging.New(os.Stderr, c.Log.Level, c.Log.Format)
	if err != nil {
		return err
	}
	cfg, logger = c, l

	packs := append(append([]string(nil), c.Analysis.LanguagePacks...), langPacks...)
	for _, file := range packs {
		t, err := language.LoadFile(file)
		if err != nil {
			return fmt.Errorf("language pack %s: %w", file, err)
		}
		if err := language.Register(t); err != nil {
			return fmt.Errorf("language pack %s: %w", file, err)
		}
		logger.Debug().Str("language", t.Language).Str("file", file).Msg("language pack loaded")
	}
	return nil
}

// GetUI returns the UI for the current output format.
func GetUI() *ui.UI {
	if globalUI == nil {
		globalUI = ui.New(os.Stdout, os.Stderr, ui.FormatTerminal)
	}
	return globalUI
}

// analyzerOptions are the per-command choices that shape an Analyzer.
type analyzerOptions struct {
	deep     bool
	only     []string
	onReport func(*analysis.Report)
}

func newAnalyzer(o analyzerOptions) (*analysis.Analyzer, error) {
	var client llm.Client
	if o.deep {
		var err error
		client, err = llm.New(llm.Backend(cfg.LLM.Backend))
		if err != nil {
			return nil, err
		}
		if client == nil {
			GetUI().Warn("--deep needs ANTHROPIC_API_KEY or the claude CLI; running without AI review")
		} else {
			logger.Debug().Str("backend", client.Name()).Msg("AI review enabled")
		}
	}

	only := o.only
	if len(only) == 0 {
		only = cfg.Analysis.Assessments
	}

	opts := []analysis.Option{
		analysis.WithLogger(logger),
		analysis.WithAssessments(assessments.DefaultRegistry(client)),
		analysis.WithDeep(o.deep && client != nil),
		analysis.WithDefaultLanguage(cfg.Analysis.DefaultLanguage),
	}
	if len(only) > 0 {
		opts = append(opts, analysis.WithOnly(only...))
	}
	if o.onReport != nil {
		opts = append(opts, analysis.WithReportHook(o.onReport))
	}
	return analysis.New(opts...)
}

// loadCorpora builds a corpus for every path and returns them together
// with all their papers in path order. Files that fail to parse are
// reported as warnings.
func loadCorpora(paths []string, patterns []string, encoding string) ([]*corpus.Corpus, []*paper.Paper, error) {
	var (
		corpora []*corpus.Corpus
		papers  []*paper.Paper
	)
	for _, path := range paths {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid path: %w", err)
		}
		c, err := corpus.Build(absPath, patterns, parser.Options{Encoding: encoding})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		for _, fe := range c.Errors {
			GetUI().Warn("skipping %s: %v", fe.Path, fe.Err)
		}
		logger.Debug().Str("root", c.RootPath).Int("documents", len(c.Documents)).Msg("corpus built")
		corpora = append(corpora, c)
		papers = append(papers, c.Papers()...)
	}
	return corpora, papers, nil
}

// workerCount resolves the worker flag against the configuration.
func workerCount(flagValue int) int {
	if flagValue > 0 {
		return flagValue
	}
	return cfg.Analysis.Workers
}
