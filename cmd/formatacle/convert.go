package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/formatacle/formatacle/internal/container"
	"github.com/formatacle/formatacle/internal/htmlconv"
	"github.com/formatacle/formatacle/internal/pipeline"
	"github.com/formatacle/formatacle/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [files...]",
	Short: "Convert .docx documents to iOS and Android XML",
	Long: `Convert renders one or both XML dialects from .docx documents. Each
document is converted to HTML in a container, classified into paragraph
blocks, and encoded once per dialect. Title and author come from the
"<title> -- <author>.docx" filename pattern, from flags, or from the
document's first paragraphs with --title-from-content.

Input files are given as arguments or listed in a YAML manifest.`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().String("manifest", "", "YAML manifest listing files with per-file title and author")
	convertCmd.Flags().String("title", "", "document title (overridden by the filename pattern)")
	convertCmd.Flags().String("author", "", "document author (overridden by the filename pattern)")
	convertCmd.Flags().String("output-dir", ".", "directory for converted XML files")
	convertCmd.Flags().Bool("zip", false, "bundle converted files into a single zip archive")
	convertCmd.Flags().Int("free-paragraphs", -1, "paragraphs below this index are free; negative uses the *** marker policy")
	convertCmd.Flags().Bool("title-from-content", false, "take title and author from the first two paragraphs")
	convertCmd.Flags().Bool("split-line-breaks", true, "expand in-paragraph line breaks into separate blocks")

	rootCmd.AddCommand(convertCmd)
}

// convertConfig merges the convert flags over the config file values.
// Changed flags win; otherwise the file value applies.
func convertConfig(cmd *cobra.Command) types.ConversionConfig {
	cfg := pipelineConfig().Conversion

	flags := cmd.Flags()
	if flags.Changed("free-paragraphs") {
		cfg.FreeParagraphs, _ = flags.GetInt("free-paragraphs")
	}
	if flags.Changed("title-from-content") {
		cfg.TitleFromContent, _ = flags.GetBool("title-from-content")
	}
	if flags.Changed("split-line-breaks") {
		cfg.SplitLineBreaks, _ = flags.GetBool("split-line-breaks")
	}
	if flags.Changed("output-dir") || cfg.OutputDir == "" {
		cfg.OutputDir, _ = flags.GetString("output-dir")
	}
	return cfg
}

func runConvert(cmd *cobra.Command, args []string) error {
	manifestPath, _ := cmd.Flags().GetString("manifest")
	title, _ := cmd.Flags().GetString("title")
	author, _ := cmd.Flags().GetString("author")
	asZip, _ := cmd.Flags().GetBool("zip")

	var entries []pipeline.Entry
	switch {
	case manifestPath != "":
		m, err := pipeline.ReadManifest(manifestPath)
		if err != nil {
			return err
		}
		entries = m.Files
	case len(args) > 0:
		entries = pipeline.EntriesFromPaths(args)
		for i := range entries {
			if entries[i].Title == "" {
				entries[i].Title = title
			}
			if entries[i].Author == "" {
				entries[i].Author = author
			}
		}
	default:
		return fmt.Errorf("no input files; pass .docx paths or --manifest")
	}

	rt, err := container.DetectRuntime()
	if err != nil {
		return err
	}
	conv, err := htmlconv.NewMammothConverter(rt)
	if err != nil {
		return err
	}

	cfg := convertConfig(cmd)
	opts := pipeline.FromConfig(cfg)

	batch := pipeline.ConvertBatch(entries, conv, opts, os.Stderr)

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if asZip {
		name := filepath.Join(cfg.OutputDir, pipeline.ZipName(batch.Results, time.Now()))
		f, err := os.Create(name)
		if err != nil {
			return fmt.Errorf("creating archive: %w", err)
		}
		if err := pipeline.WriteZip(f, batch.Results); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "wrote:", name)
	} else {
		for _, r := range batch.Results {
			if r.Err != nil {
				continue
			}
			iosPath := filepath.Join(cfg.OutputDir, "ios_"+r.Name+".xml")
			androidPath := filepath.Join(cfg.OutputDir, "android_"+r.Name+".xml")
			if err := os.WriteFile(iosPath, []byte(r.IOSXML), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", iosPath, err)
			}
			if err := os.WriteFile(androidPath, []byte(r.AndroidXML), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", androidPath, err)
			}
		}
	}

	if batch.HasFailures() {
		return fmt.Errorf("%d of %d documents failed", batch.Failed, batch.Total())
	}
	return nil
}
