package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fr3asikx/OWUI-Ollama-Onenote-Import/internal/adapters/driven/auth/devicecode"
	configfile "github.com/fr3asikx/OWUI-Ollama-Onenote-Import/internal/adapters/driven/config/file"
	"github.com/fr3asikx/OWUI-Ollama-Onenote-Import/internal/adapters/driven/embedding/ollama"
	vectorsqlite "github.com/fr3asikx/OWUI-Ollama-Onenote-Import/internal/adapters/driven/vectorstore/sqlite"
	"github.com/fr3asikx/OWUI-Ollama-Onenote-Import/internal/connectors/graph"
	"github.com/fr3asikx/OWUI-Ollama-Onenote-Import/internal/core/services"
	"github.com/fr3asikx/OWUI-Ollama-Onenote-Import/internal/corpus"
	htmlnorm "github.com/fr3asikx/OWUI-Ollama-Onenote-Import/internal/normalisers/html"
)

// DefaultScopes are the Graph permissions the export needs. Bare names
// are expanded against the Graph resource URI before the device flow.
var DefaultScopes = []string{"Notes.Read", "offline_access"}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all sections to the corpus and the vector store",
	Long: `Exports every OneNote section the signed-in user can read.

The first run prompts for device-code sign-in; later runs reuse the
cached token. Each section becomes one text file in the output
directory and one embedding record in the vector store, keyed by the
section ID so re-running overwrites instead of duplicating.`,
	RunE: runExport,
}

// Flags for export.
var (
	exportClientID     string
	exportTenantID     string
	exportOutputDir    string
	exportVectorDir    string
	exportCollection   string
	exportPauseAfter   int
	exportPauseSeconds int
	exportScopes       []string
	exportModel        string
	exportOllamaURL    string
)

func init() {
	exportCmd.Flags().StringVar(
		&exportClientID, "client-id", "", "Azure AD application (client) ID")
	exportCmd.Flags().StringVar(
		&exportTenantID, "tenant-id", devicecode.DefaultTenant,
		"Azure AD tenant ID, or 'common' for multi-tenant apps")
	exportCmd.Flags().StringVar(
		&exportOutputDir, "output-dir", "data/sections",
		"Directory where cleaned text files are saved")
	exportCmd.Flags().StringVar(
		&exportVectorDir, "vectorstore", "",
		"Directory used to persist embeddings (default ~/.onenote-import/vectorstore)")
	exportCmd.Flags().StringVar(
		&exportCollection, "collection", vectorsqlite.DefaultCollection,
		"Name of the vector store collection")
	exportCmd.Flags().IntVar(
		&exportPauseAfter, "pause-after", services.DefaultPauseAfter,
		"Pause after processing this many sections")
	exportCmd.Flags().IntVar(
		&exportPauseSeconds, "pause-seconds", int(services.DefaultPauseFor.Seconds()),
		"Number of seconds to pause after reaching the pause-after threshold")
	exportCmd.Flags().StringSliceVar(
		&exportScopes, "scopes", DefaultScopes,
		"Microsoft Graph permission scopes for the device code flow")
	exportCmd.Flags().StringVar(
		&exportModel, "embedding-model", ollama.DefaultModel,
		"Ollama model used to embed sections")
	exportCmd.Flags().StringVar(
		&exportOllamaURL, "ollama-url", ollama.DefaultBaseURL,
		"Ollama API base URL")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	if err := applyConfigDefaults(cmd); err != nil {
		return err
	}
	if exportClientID == "" {
		return errors.New("client ID is required (--client-id or config file)")
	}

	tokens, err := devicecode.NewProvider(devicecode.Config{
		ClientID: exportClientID,
		TenantID: exportTenantID,
		Scopes:   devicecode.ExpandScopes(exportScopes),
		Out:      cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("configure authentication: %w", err)
	}

	embedder := ollama.NewEmbeddingService(ollama.Config{
		BaseURL: exportOllamaURL,
		Model:   exportModel,
	})
	defer embedder.Close()

	// Fail before any sign-in prompt or network export work if the
	// embedding backend is down.
	if err := embedder.Ping(ctx); err != nil {
		return fmt.Errorf("embedding service unavailable: %w", err)
	}

	store, err := vectorsqlite.NewStore(exportVectorDir, exportCollection)
	if err != nil {
		return fmt.Errorf("open vector store: %w", err)
	}
	defer store.Close()

	orchestrator := services.NewExportOrchestrator(
		graph.NewClient(tokens, graph.Config{}),
		htmlnorm.New(),
		corpus.NewWriter(exportOutputDir),
		services.NewSemanticIndexer(embedder, store),
		services.ExportOptions{
			PauseAfter: exportPauseAfter,
			PauseFor:   time.Duration(exportPauseSeconds) * time.Second,
			Out:        cmd.OutOrStdout(),
		},
	)

	summary, err := orchestrator.Export(ctx)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	cmd.Printf("Run %s completed in %s.\n", summary.RunID, summary.Duration.Round(time.Second))
	return nil
}

// applyConfigDefaults fills in flags the user did not set from the
// config file. Explicit flags always win.
func applyConfigDefaults(cmd *cobra.Command) error {
	path, err := configfile.DefaultPath()
	if err != nil {
		return err
	}
	cfg, err := configfile.Load(path)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("client-id") && cfg.ClientID != "" {
		exportClientID = cfg.ClientID
	}
	if !flags.Changed("tenant-id") && cfg.TenantID != "" {
		exportTenantID = cfg.TenantID
	}
	if !flags.Changed("output-dir") && cfg.OutputDir != "" {
		exportOutputDir = cfg.OutputDir
	}
	if !flags.Changed("vectorstore") && cfg.VectorstoreDir != "" {
		exportVectorDir = cfg.VectorstoreDir
	}
	if !flags.Changed("collection") && cfg.Collection != "" {
		exportCollection = cfg.Collection
	}
	if !flags.Changed("pause-after") && cfg.PauseAfter != 0 {
		exportPauseAfter = cfg.PauseAfter
	}
	if !flags.Changed("pause-seconds") && cfg.PauseSeconds != 0 {
		exportPauseSeconds = cfg.PauseSeconds
	}
	if !flags.Changed("scopes") && len(cfg.Scopes) > 0 {
		exportScopes = cfg.Scopes
	}
	if !flags.Changed("embedding-model") && cfg.EmbeddingModel != "" {
		exportModel = cfg.EmbeddingModel
	}
	if !flags.Changed("ollama-url") && cfg.OllamaURL != "" {
		exportOllamaURL = cfg.OllamaURL
	}
	return nil
}
