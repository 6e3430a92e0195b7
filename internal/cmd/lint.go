package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pthm/contentlint/internal/analysis"
	"github.com/pthm/contentlint/internal/paper"
	"github.com/pthm/contentlint/internal/reporter"
	"github.com/pthm/contentlint/internal/store"
	"github.com/pthm/contentlint/internal/ui"
)

var (
	keyword   string
	synonyms  []string
	lang      string
	deep      bool
	workers   int
	only      []string
	patterns  []string
	storePath string
	encoding  string
	failOnBad bool
)

var lintCmd = &cobra.Command{
	Use:   "lint [paths...]",
	Short: "Analyze content files for readability and SEO",
	Long: `Analyze Markdown, HTML, text, JSON and YAML content files.

Each file yields one or more papers. The language comes from --lang,
the paper's locale, the configured default language or detection, in
that order.

Examples:
  contentlint lint content/
  contentlint lint --lang ru --keyword "борщ" recipe.md
  contentlint lint --encoding windows-1251 old-site/
  contentlint lint --store results.db --format json . > report.json`,
	RunE: runLint,
}

func init() {
	lintCmd.Flags().StringVarP(&keyword, "keyword", "k", "", "Focus keyphrase for every paper, overriding file metadata")
	lintCmd.Flags().StringSliceVar(&synonyms, "synonyms", nil, "Keyphrase synonyms, used with --keyword")
	lintCmd.Flags().StringVarP(&lang, "lang", "l", "", "Language code or locale for every paper (e.g. ru, ru_RU)")
	lintCmd.Flags().BoolVar(&deep, "deep", false, "Enable the AI review assessments")
	lintCmd.Flags().IntVarP(&workers, "workers", "w", 0, "Papers analyzed in parallel (default from config, 0 = GOMAXPROCS)")
	lintCmd.Flags().StringSliceVar(&only, "only", nil, "Run only the named assessments")
	lintCmd.Flags().StringSliceVar(&patterns, "pattern", nil, "Only read files matching these glob patterns")
	lintCmd.Flags().StringVar(&storePath, "store", "", "SQLite file to save results to (default from config)")
	lintCmd.Flags().StringVar(&encoding, "encoding", "", "Charset of the input files (e.g. windows-1251, koi8-r)")
	lintCmd.Flags().BoolVar(&failOnBad, "fail-on-bad", false, "Exit with an error when any assessment is rated bad")
	RootCmd.AddCommand(lintCmd)
}

func runLint(cmd *cobra.Command, args []string) error {
	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}

	// Get the global UI
	u := GetUI()

	// Start progress tracking if in interactive mode
	progress := u.StartProgress()
	defer func() {
		if progress != nil {
			progress.Done(nil)
		}
	}()

	// Stage 1: Build the analyzer and its language researchers
	progress.SetStage(ui.StageLoadLanguages)

	a, err := newAnalyzer(analyzerOptions{
		deep:     deep,
		only:     only,
		onReport: func(*analysis.Report) { progress.PaperDone() },
	})
	if err != nil {
		return err
	}

	// Stage 2: Parse content files
	progress.SetStage(ui.StageParse)

	_, papers, err := loadCorpora(paths, patterns, encoding)
	if err != nil {
		return err
	}
	papers = overrideKeyword(papers, keyword, synonyms)

	path := storePath
	if path == "" {
		path = cfg.Store.Path
	}
	if path != "" {
		if err := checkPaperIDs(papers); err != nil {
			return err
		}
	}

	if verbose {
		fmt.Fprintf(u.ErrWriter, "Analyzing %d papers with %d assessments\n", len(papers), len(a.Assessments()))
	}

	// Stage 3: Analyze
	progress.SetStage(ui.StageAnalyze)
	progress.SetPaperCount(len(papers))

	reports, err := a.AnalyzeBatch(cmd.Context(), papers, lang, workerCount(workers))
	if err != nil {
		return err
	}

	// Stage 4: Store results
	if path != "" {
		progress.SetStage(ui.StageStore)
		if err := saveReports(cmd, path, reports); err != nil {
			return err
		}
	}

	// Stop progress before reporting
	if progress != nil {
		progress.Done(nil)
		progress = nil // Prevent double-done in defer
	}

	// Stage 5: Report results
	var rep reporter.Reporter
	switch format {
	case "json":
		rep = reporter.NewJSONReporter(os.Stdout, failOnBad)
	default:
		rep = reporter.NewTerminalReporter(os.Stdout, u, reporter.TerminalOptions{
			FailOnBad:   failOnBad,
			ShowSkipped: verbose,
		})
	}

	return rep.Report(reports)
}

// overrideKeyword replaces the keyphrase of every paper when one was given
// on the command line.
func overrideKeyword(papers []*paper.Paper, kw string, syns []string) []*paper.Paper {
	kw = strings.TrimSpace(kw)
	if kw == "" {
		return papers
	}
	out := make([]*paper.Paper, len(papers))
	for i, p := range papers {
		out[i] = p.With(paper.WithKeyword(kw), paper.WithSynonyms(syns...))
	}
	return out
}

// checkPaperIDs rejects a corpus whose papers cannot be stored in one run.
func checkPaperIDs(papers []*paper.Paper) error {
	ids := make([]string, len(papers))
	for i, p := range papers {
		ids[i] = p.ID()
	}
	if err := store.CheckIDs(ids); err != nil {
		return fmt.Errorf("cannot store results: %w", err)
	}
	return nil
}

func saveReports(cmd *cobra.Command, path string, reports []*analysis.Report) error {
	st, err := store.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer func() { _ = st.Close() }()

	runID := store.NewRunID()
	if err := st.SaveRun(cmd.Context(), runID, reports); err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}
	logger.Info().Str("run", runID).Str("store", path).Int("papers", len(reports)).Msg("results saved")
	return nil
}
