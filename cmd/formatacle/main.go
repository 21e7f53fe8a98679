// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the formatacle CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/formatacle/formatacle/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the formatacle CLI.
var rootCmd = &cobra.Command{
	Use:   "formatacle",
	Short: "Convert word-processor documents to dialect-specific XML",
	Long: `formatacle converts word-processor documents into the XML dialects
consumed by the iOS and Android reader apps. Documents are converted to
HTML in a container, split into classified paragraph blocks, and rendered
once per dialect.

Each operation is a subcommand: convert renders both dialects from .docx
files, transcode rewrites existing iOS XML into the Android dialect, and
serve exposes conversion over HTTP.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./formatacle.yaml or ~/.config/formatacle/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("formatacle")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "formatacle"))
		}
	}

	viper.SetEnvPrefix("FORMATACLE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// pipelineConfig reads the conversion and server sections of the config
// file. Subcommands overlay their changed flags on the returned values.
func pipelineConfig() types.PipelineConfig {
	cfg := types.PipelineConfig{
		Conversion: types.ConversionConfig{
			FreeParagraphs:  viper.GetInt("conversion.free_paragraphs"),
			SplitLineBreaks: true,
			IOSStyle:        types.Style(viper.GetString("conversion.ios_style")),
			AndroidStyle:    types.Style(viper.GetString("conversion.android_style")),
			OutputDir:       viper.GetString("conversion.output_dir"),
		},
		Server: types.ServerConfig{
			Addr:           viper.GetString("server.addr"),
			MaxUploadBytes: viper.GetInt64("server.max_upload_bytes"),
			Store:          types.StoreBackend(viper.GetString("server.store")),
			DBPath:         viper.GetString("server.db_path"),
		},
	}
	if !viper.IsSet("conversion.free_paragraphs") {
		cfg.Conversion.FreeParagraphs = -1
	}
	if viper.IsSet("conversion.title_from_content") {
		cfg.Conversion.TitleFromContent = viper.GetBool("conversion.title_from_content")
	}
	if viper.IsSet("conversion.split_line_breaks") {
		cfg.Conversion.SplitLineBreaks = viper.GetBool("conversion.split_line_breaks")
	}
	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
