package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pthm/contentlint/internal/analysis"
	"github.com/pthm/contentlint/internal/assessments"
	"github.com/pthm/contentlint/internal/ui"
)

var explorePrint bool

var exploreCmd = &cobra.Command{
	Use:   "explore [path]",
	Short: "Interactively browse analysis results",
	Long: `Displays an interactive tree of the analysis results.

Features:
  - Navigate documents, categories and assessments with arrow keys or vim bindings
  - Expand/collapse nodes to see the evidence behind a rating
  - Toggle skipped assessments

Controls:
  ↑/k, ↓/j    Navigate up/down
  ←/h, →/l    Collapse/expand nodes
  Enter/Space Toggle expand/collapse
  s           Toggle skipped assessments
  q           Quit

Examples:
  contentlint explore content/
  contentlint explore --lang ru article.md
  contentlint explore --print .`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExplore,
}

func init() {
	exploreCmd.Flags().BoolVarP(&explorePrint, "print", "p", false, "Print tree to stdout instead of interactive mode")
	exploreCmd.Flags().StringVarP(&lang, "lang", "l", "", "Language code or locale for every paper")
	exploreCmd.Flags().StringVar(&encoding, "encoding", "", "Charset of the input files")
	exploreCmd.Flags().BoolVar(&deep, "deep", false, "Enable the AI review assessments")
	RootCmd.AddCommand(exploreCmd)
}

func runExplore(cmd *cobra.Command, args []string) error {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	// Get the global UI
	u := GetUI()

	// Check if interactive mode is available (unless --print is used)
	if !explorePrint && !u.IsInteractive() {
		return fmt.Errorf("explore requires an interactive terminal (TTY). Use --print for non-interactive output")
	}

	_, papers, err := loadCorpora([]string{path}, nil, encoding)
	if err != nil {
		return err
	}
	a, err := newAnalyzer(analyzerOptions{deep: deep})
	if err != nil {
		return err
	}
	reports, err := a.AnalyzeBatch(cmd.Context(), papers, lang, workerCount(0))
	if err != nil {
		return err
	}

	// Print mode - output tree to stdout
	if explorePrint {
		printReportTree(u.Writer, u.Styles, reports)
		return nil
	}

	if err := u.RunExplorer(reports); err != nil {
		return fmt.Errorf("error running explorer: %w", err)
	}
	return nil
}

// printReportTree prints document, category and assessment levels of the
// explorer tree.
func printReportTree(w io.Writer, s *ui.Styles, reports []*analysis.Report) {
	for _, rep := range reports {
		name := rep.ID
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Fprintf(w, "%s [%s]\n", s.Path.Render(name), rep.Language)

		var cats []assessments.Category
		byCat := make(map[assessments.Category][]assessments.Result)
		for _, res := range rep.Results {
			if _, ok := byCat[res.Category]; !ok {
				cats = append(cats, res.Category)
			}
			byCat[res.Category] = append(byCat[res.Category], res)
		}

		for i, cat := range cats {
			lastCat := i == len(cats)-1
			connector, childPrefix := "├─", "│ "
			if lastCat {
				connector, childPrefix = "└─", "  "
			}
			fmt.Fprintf(w, "%s %s\n", connector, s.Subheader.Render(string(cat)))

			results := byCat[cat]
			for j, res := range results {
				conn := "├─"
				if j == len(results)-1 {
					conn = "└─"
				}
				style, icon := s.ForResult(res)
				fmt.Fprintf(w, "%s%s %s %s\n", childPrefix, conn, style.Render(icon), res.ID)
			}
		}
	}
}
