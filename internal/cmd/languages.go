package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/pthm/contentlint/internal/researcher"
	"github.com/pthm/contentlint/internal/ui"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported languages and their features",
	Long: `List every language a researcher can be built for, including
custom language packs, with the features each one supports.

Assessments that need a missing feature are skipped for that language.`,
	Args: cobra.NoArgs,
	RunE: runLanguages,
}

func init() {
	RootCmd.AddCommand(languagesCmd)
}

func runLanguages(cmd *cobra.Command, args []string) error {
	reg := researcher.DefaultRegistry()
	u := GetUI()

	var caps []researcher.Capabilities
	for _, code := range reg.Languages() {
		c, err := reg.Capabilities(code)
		if err != nil {
			u.Warn("language %s: %v", code, err)
			continue
		}
		caps = append(caps, c)
	}

	if format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(caps)
	}
	printCapabilities(u.Writer, u.Styles, caps)
	return nil
}

var capabilityColumns = []struct {
	title  string
	helper researcher.HelperName
	config researcher.ConfigKey
}{
	{title: "stemmer", helper: researcher.GetStemmer},
	{title: "passive", helper: researcher.IsPassiveSentence},
	{title: "flesch", helper: researcher.FleschReadingScore},
	{title: "syllables", config: researcher.Syllables},
	{title: "transitions", config: researcher.TransitionWords},
	{title: "stopwords", helper: researcher.RemoveStopWords},
}

func printCapabilities(w io.Writer, s *ui.Styles, caps []researcher.Capabilities) {
	nameWidth := runewidth.StringWidth("language")
	for _, c := range caps {
		nameWidth = max(nameWidth, runewidth.StringWidth(label(c)))
	}

	header := runewidth.FillRight("language", nameWidth)
	for _, col := range capabilityColumns {
		header += "  " + col.title
	}
	fmt.Fprintln(w, s.Header.Render(header))

	for _, c := range caps {
		line := runewidth.FillRight(label(c), nameWidth)
		for _, col := range capabilityColumns {
			has := false
			if col.helper != "" {
				has = slices.Contains(c.Helpers, col.helper)
			} else {
				has = slices.Contains(c.Config, col.config)
			}
			width := len(col.title)
			mark := s.Skipped.Render(runewidth.FillRight("-", width))
			if has {
				mark = s.Good.Render(runewidth.FillRight("yes", width))
			}
			line += "  " + mark
		}
		fmt.Fprintln(w, line)
	}
}

func label(c researcher.Capabilities) string {
	if c.Name == "" {
		return c.Language
	}
	return fmt.Sprintf("%s (%s)", c.Language, c.Name)
}
