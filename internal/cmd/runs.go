package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pthm/contentlint/internal/store"
)

var runsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List the analysis runs saved in the results store",
	Long: `List the runs saved by lint --store or the HTTP API, newest first.

Examples:
  contentlint runs --store results.db
  contentlint runs --limit 5 --format json`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().StringVar(&storePath, "store", "", "SQLite results file (default from config)")
	runsCmd.Flags().IntVarP(&runsLimit, "limit", "n", 20, "Maximum runs to list (0 = all)")
	RootCmd.AddCommand(runsCmd)
}

func runRuns(cmd *cobra.Command, args []string) error {
	path := storePath
	if path == "" {
		path = cfg.Store.Path
	}
	if path == "" {
		return fmt.Errorf("no results store: pass --store or set store.path")
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("results store %s: %w", path, err)
	}

	st, err := store.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer func() { _ = st.Close() }()

	runs, err := st.Runs(cmd.Context(), runsLimit)
	if err != nil {
		return err
	}

	if format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if runs == nil {
			runs = []store.Run{}
		}
		return enc.Encode(runs)
	}

	u := GetUI()
	if len(runs) == 0 {
		fmt.Fprintln(u.Writer, "No runs saved yet.")
		return nil
	}
	for _, r := range runs {
		fmt.Fprintf(u.Writer, "%s  %s  %d papers\n",
			u.Styles.ID.Render(r.ID),
			r.StartedAt.Local().Format(time.DateTime),
			r.Papers)
	}
	return nil
}
