package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/pthm/contentlint/internal/assessments"
	"github.com/pthm/contentlint/internal/corpus"
	"github.com/pthm/contentlint/internal/ui"
)

var reportCmd = &cobra.Command{
	Use:   "report [path]",
	Short: "Generate a summary report of a content directory",
	Long: `Generate a summary of the content under a path.

This includes:
  - Document tree with internal links
  - Word and sentence totals
  - Mean readability and SEO scores
  - Ratings per category and languages used

Examples:
  contentlint report content/
  contentlint report --format json . > metrics.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&lang, "lang", "l", "", "Language code or locale for every paper")
	reportCmd.Flags().StringVar(&encoding, "encoding", "", "Charset of the input files")
	reportCmd.Flags().StringSliceVar(&patterns, "pattern", nil, "Only read files matching these glob patterns")
	RootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	corpora, papers, err := loadCorpora([]string{path}, patterns, encoding)
	if err != nil {
		return err
	}
	c := corpora[0]

	a, err := newAnalyzer(analyzerOptions{})
	if err != nil {
		return err
	}
	reports, err := a.AnalyzeBatch(cmd.Context(), papers, lang, workerCount(0))
	if err != nil {
		return err
	}
	metrics := c.Metrics(reports)

	if format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(metrics)
	}

	u := GetUI()
	w := u.Writer

	// Print report header
	fmt.Fprintln(w, u.Styles.Header.Render("Content Report"))
	fmt.Fprintln(w, u.Styles.Header.Render("=============="))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Root: %s\n\n", c.RootPath)

	// Print tree structure
	fmt.Fprintln(w, u.Styles.Subheader.Render("Documents:"))
	c.PrintTree(w)
	fmt.Fprintln(w)

	printMetrics(w, u.Styles, metrics)
	return nil
}

func printMetrics(w io.Writer, s *ui.Styles, m *corpus.Metrics) {
	fmt.Fprintln(w, s.Subheader.Render("Metrics:"))
	fmt.Fprintf(w, "  Documents:        %d\n", m.Documents)
	fmt.Fprintf(w, "  Papers:           %d\n", m.Papers)
	fmt.Fprintf(w, "  Words:            %d\n", m.Words)
	fmt.Fprintf(w, "  Sentences:        %d\n", m.Sentences)
	fmt.Fprintf(w, "  Mean readability: %.1f\n", m.MeanReadability)
	fmt.Fprintf(w, "  Mean SEO:         %.1f\n", m.MeanSEO)
	fmt.Fprintf(w, "  References:       %d (%d unresolved)\n", m.References, m.UnresolvedRefs)
	if m.ParseErrors > 0 {
		fmt.Fprintln(w, s.Warning.Render(fmt.Sprintf("  Parse errors:     %d", m.ParseErrors)))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, s.Subheader.Render("Languages:"))
	for _, code := range sortedKeys(m.Languages) {
		fmt.Fprintf(w, "  %s: %d\n", code, m.Languages[code])
	}
	if m.Fallbacks > 0 {
		fmt.Fprintf(w, "  (%d papers used the default researcher)\n", m.Fallbacks)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, s.Subheader.Render("Ratings:"))
	for _, cat := range []assessments.Category{assessments.Readability, assessments.SEO, assessments.AI} {
		byRating, ok := m.Ratings[cat]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "  %-12s %s %d  %s %d  %s %d\n", cat+":",
			s.Good.Render("good"), byRating[assessments.Good],
			s.OK.Render("ok"), byRating[assessments.OK],
			s.Bad.Render("bad"), byRating[assessments.Bad])
	}
	if m.Skipped > 0 || m.Failed > 0 {
		fmt.Fprintf(w, "  %d skipped, %d failed\n", m.Skipped, m.Failed)
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
