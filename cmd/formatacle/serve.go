package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/formatacle/formatacle/internal/container"
	"github.com/formatacle/formatacle/internal/htmlconv"
	"github.com/formatacle/formatacle/internal/pipeline"
	"github.com/formatacle/formatacle/internal/server"
	"github.com/formatacle/formatacle/internal/store"
	"github.com/formatacle/formatacle/pkg/types"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the conversion API over HTTP",
	Long: `Serve exposes document conversion as an HTTP API. POST /api/convert
accepts a multipart .docx upload and returns a result id; GET
/api/convert/{id} returns the stored XML for both dialects. Results are
kept in memory or in a SQLite database.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "listen address")
	serveCmd.Flags().Int64("max-upload-bytes", 0, "maximum upload size in bytes (default 5 MiB)")
	serveCmd.Flags().String("store", "memory", "result store backend: memory or sqlite")
	serveCmd.Flags().String("db", "formatacle.db", "SQLite database path for --store sqlite")

	rootCmd.AddCommand(serveCmd)
}

// serverConfig merges the serve flags over the server section of the
// config file. Changed flags win; otherwise the file value applies.
func serverConfig(cmd *cobra.Command) types.ServerConfig {
	cfg := pipelineConfig().Server

	flags := cmd.Flags()
	if flags.Changed("addr") || cfg.Addr == "" {
		cfg.Addr, _ = flags.GetString("addr")
	}
	if flags.Changed("max-upload-bytes") {
		cfg.MaxUploadBytes, _ = flags.GetInt64("max-upload-bytes")
	}
	if flags.Changed("store") || cfg.Store == "" {
		s, _ := flags.GetString("store")
		cfg.Store = types.StoreBackend(s)
	}
	if flags.Changed("db") || cfg.DBPath == "" {
		cfg.DBPath, _ = flags.GetString("db")
	}
	return cfg
}

func openStore(cfg types.ServerConfig) (store.Store, error) {
	switch cfg.Store {
	case types.StoreMemory:
		return store.NewMemStore(), nil
	case types.StoreSQLite:
		return store.OpenSQLite(cfg.DBPath)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := serverConfig(cmd)

	rt, err := container.DetectRuntime()
	if err != nil {
		return err
	}
	conv, err := htmlconv.NewMammothConverter(rt)
	if err != nil {
		return err
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	opts := pipeline.FromConfig(pipelineConfig().Conversion)
	srv := server.New(st, conv, opts, cfg.MaxUploadBytes)

	fmt.Fprintln(os.Stderr, "Listening on", cfg.Addr)
	return http.ListenAndServe(cfg.Addr, srv.Handler())
}
