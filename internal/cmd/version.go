package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pthm/contentlint/internal/language"
	"github.com/pthm/contentlint/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
		if verbose {
			fmt.Printf("language tables: %v\n", language.Available())
		}
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
