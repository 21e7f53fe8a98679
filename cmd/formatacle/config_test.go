package main

import (
	"testing"

	"github.com/spf13/viper"

	"github.com/formatacle/formatacle/pkg/types"
)

func TestPipelineConfigDefaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	cfg := pipelineConfig()
	if cfg.Conversion.FreeParagraphs != -1 {
		t.Errorf("free paragraphs = %d, want -1 (marker policy)", cfg.Conversion.FreeParagraphs)
	}
	if !cfg.Conversion.SplitLineBreaks {
		t.Error("split line breaks should default on")
	}
}

func TestPipelineConfigFromFileValues(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("conversion.free_paragraphs", 2)
	viper.Set("conversion.split_line_breaks", false)
	viper.Set("conversion.output_dir", "out")
	viper.Set("server.addr", ":9090")
	viper.Set("server.store", "sqlite")
	viper.Set("server.db_path", "conv.db")

	cfg := pipelineConfig()
	if cfg.Conversion.FreeParagraphs != 2 || cfg.Conversion.SplitLineBreaks || cfg.Conversion.OutputDir != "out" {
		t.Errorf("conversion = %+v", cfg.Conversion)
	}
	if cfg.Server.Addr != ":9090" || cfg.Server.Store != types.StoreSQLite || cfg.Server.DBPath != "conv.db" {
		t.Errorf("server = %+v", cfg.Server)
	}
}
