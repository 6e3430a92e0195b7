package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pthm/contentlint/internal/parser"
	"github.com/pthm/contentlint/internal/research"
	"github.com/pthm/contentlint/internal/ui"
)

var researchCmd = &cobra.Command{
	Use:   "research <file>",
	Short: "Print the raw linguistic facts of a content file",
	Long: `Run every research against the papers of a file and print the
facts the assessments are scored from: word, sentence and syllable
counts, the Flesch score, passive and transition sentences, keyphrase
matches, prominent words and links.

Examples:
  contentlint research --lang ru article.md
  contentlint research --format json page.html`,
	Args: cobra.ExactArgs(1),
	RunE: runResearch,
}

func init() {
	researchCmd.Flags().StringVarP(&lang, "lang", "l", "", "Language code or locale (default from the paper)")
	researchCmd.Flags().StringVar(&encoding, "encoding", "", "Charset of the input file")
	RootCmd.AddCommand(researchCmd)
}

type paperFacts struct {
	ID             string          `json:"id"`
	FallbackReason string          `json:"fallback_reason,omitempty"`
	Facts          *research.Facts `json:"facts"`
}

func runResearch(cmd *cobra.Command, args []string) error {
	absPath, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}
	parsed, err := parser.Parse(absPath, parser.Options{Encoding: encoding})
	if err != nil {
		return err
	}

	a, err := newAnalyzer(analyzerOptions{})
	if err != nil {
		return err
	}

	out := make([]paperFacts, 0, len(parsed.Papers))
	for _, p := range parsed.Papers {
		r, reason := a.Researcher(p, lang)
		facts, err := research.Collect(r)
		if err != nil {
			return fmt.Errorf("%s: %w", p.ID(), err)
		}
		out = append(out, paperFacts{ID: p.ID(), FallbackReason: reason, Facts: facts})
	}

	if format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	u := GetUI()
	for _, pf := range out {
		printFacts(u.Writer, u.Styles, pf)
	}
	return nil
}

func printFacts(w io.Writer, s *ui.Styles, pf paperFacts) {
	f := pf.Facts
	fmt.Fprintln(w, s.Header.Render(pf.ID))
	if pf.FallbackReason != "" {
		fmt.Fprintln(w, s.Warning.Render("  fallback: "+pf.FallbackReason))
	}
	fmt.Fprintf(w, "  Language:    %s\n", f.Language)
	fmt.Fprintf(w, "  Words:       %d\n", f.Words)
	fmt.Fprintf(w, "  Sentences:   %d\n", f.Sentences)
	fmt.Fprintf(w, "  Paragraphs:  %d\n", f.Paragraphs)
	if f.Syllables != nil {
		fmt.Fprintf(w, "  Syllables:   %d\n", *f.Syllables)
	}
	if f.Flesch != nil {
		if f.Flesch.Defined {
			fmt.Fprintf(w, "  Flesch:      %.1f (%s)\n", f.Flesch.Score, f.Flesch.Tier)
		} else {
			fmt.Fprintln(w, "  Flesch:      undefined")
		}
	}
	if f.Passive != nil {
		fmt.Fprintf(w, "  Passive:     %d of %d sentences (%.1f%%)\n", len(f.Passive.Passives), f.Passive.Sentences, f.Passive.Percentage())
	}
	if f.Transitions != nil {
		fmt.Fprintf(w, "  Transitions: %d of %d sentences (%.1f%%)\n", len(f.Transitions.Transitions), f.Transitions.Sentences, f.Transitions.Percentage())
	}
	if f.Keyphrase != nil {
		fmt.Fprintf(w, "  Keyphrase:   %s\n", strings.Join(f.Keyphrase.Content, " "))
	}
	if f.KeywordCount != nil {
		fmt.Fprintf(w, "  Keyphrase hits: %d (+%d synonym), density %.2f%%\n", f.KeywordCount.Count, f.KeywordCount.SynonymCount, f.KeywordCount.Density)
	}
	if len(f.ProminentWords) > 0 {
		words := make([]string, 0, len(f.ProminentWords))
		for _, pw := range f.ProminentWords {
			words = append(words, fmt.Sprintf("%s (%d)", pw.Word, pw.Count))
		}
		fmt.Fprintf(w, "  Prominent:   %s\n", strings.Join(words, ", "))
	}
	fmt.Fprintf(w, "  Links:       %d (%d internal, %d outbound)\n", f.Links.Total, len(f.Links.Internal), len(f.Links.Outbound))
	if len(f.Unsupported) > 0 {
		names := make([]string, len(f.Unsupported))
		for i, n := range f.Unsupported {
			names[i] = string(n)
		}
		fmt.Fprintln(w, s.Skipped.Render("  Unsupported: "+strings.Join(names, ", ")))
	}
	fmt.Fprintln(w)
}
