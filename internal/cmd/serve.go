package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pthm/contentlint/internal/server"
	"github.com/pthm/contentlint/internal/store"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analyzer over a JSON HTTP API",
	Long: `Start an HTTP server exposing the analyzer.

Endpoints:
  POST /api/analyze          analyze one paper
  POST /api/analyze/batch    analyze several papers
  GET  /api/languages        supported languages and features
  GET  /api/indexables/{id}  stored scores of a paper (needs --store)
  GET  /healthz

Examples:
  contentlint serve --port 8080
  contentlint serve --store results.db`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Listen host (default from config)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Listen port (default from config)")
	serveCmd.Flags().StringVar(&storePath, "store", "", "SQLite file to save results to (default from config)")
	serveCmd.Flags().BoolVar(&deep, "deep", false, "Enable the AI review assessments")
	RootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	c := *cfg
	if serveHost != "" {
		c.Server.Host = serveHost
	}
	if servePort != 0 {
		c.Server.Port = servePort
	}
	if storePath != "" {
		c.Store.Path = storePath
	}

	a, err := newAnalyzer(analyzerOptions{deep: deep})
	if err != nil {
		return err
	}

	var st *store.Store
	if c.Store.Path != "" {
		st, err = store.Open(c.Store.Path)
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		defer func() { _ = st.Close() }()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(GetUI().ErrWriter, "Listening on http://%s\n", c.Server.Addr())
	return server.New(c, a, st, logger).Serve(ctx)
}
