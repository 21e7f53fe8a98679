package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/formatacle/formatacle/internal/transcode"
)

var transcodeCmd = &cobra.Command{
	Use:   "transcode <ios.xml> [ios.xml...]",
	Short: "Rewrite iOS XML into the Android dialect",
	Long: `Transcode converts existing iOS attribute-style XML into Android
element-style XML without going back to the source document. Fonts,
line-break levels, and legacy image names are remapped, and marker
spacing in the text is repaired.

Output is written next to each input with an android_ prefix, or to
--output for a single input.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTranscode,
}

func init() {
	transcodeCmd.Flags().String("output", "", "output path (single input only; default android_<name>.xml next to the input)")

	rootCmd.AddCommand(transcodeCmd)
}

func transcodeOutputPath(input string) string {
	dir := filepath.Dir(input)
	name := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	name = strings.TrimPrefix(name, "ios_")
	return filepath.Join(dir, "android_"+name+".xml")
}

func runTranscode(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	if output != "" && len(args) > 1 {
		return fmt.Errorf("--output needs exactly one input file")
	}

	for _, input := range args {
		data, err := os.ReadFile(input)
		if err != nil {
			return fmt.Errorf("reading %s: %w", input, err)
		}
		androidXML, err := transcode.IOSToAndroid(string(data))
		if err != nil {
			return fmt.Errorf("transcoding %s: %w", input, err)
		}

		out := output
		if out == "" {
			out = transcodeOutputPath(input)
		}
		if err := os.WriteFile(out, []byte(androidXML), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", out, err)
		}
		fmt.Fprintln(os.Stderr, "transcoded:", input, "->", out)
	}
	return nil
}
