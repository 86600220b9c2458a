// Package cli implements the command line interface using Cobra.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fr3asikx/OWUI-Ollama-Onenote-Import/internal/logger"
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "onenote-import",
	Short: "Export OneNote sections into a text corpus and a vector store",
	Long: `onenote-import exports a user's OneNote sections via Microsoft Graph,
converts each section's pages into plain text, and indexes the result
twice: as flat text files in an output directory and as embeddings in a
persistent vector store, ready for retrieval-augmented workflows.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"Enable verbose logging to stderr")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
