// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"archive/zip"
	"fmt"
	"io"
	"time"
)

// WriteZip packages successful results as a ZIP archive with one
// ios_<name>.xml and one android_<name>.xml entry per document, in result
// order. Failed documents are skipped.
func WriteZip(w io.Writer, results []Result) error {
	zw := zip.NewWriter(w)
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		for _, entry := range []struct{ name, content string }{
			{"ios_" + r.Name + ".xml", r.IOSXML},
			{"android_" + r.Name + ".xml", r.AndroidXML},
		} {
			f, err := zw.Create(entry.name)
			if err != nil {
				return fmt.Errorf("creating zip entry %s: %w", entry.name, err)
			}
			if _, err := io.WriteString(f, entry.content); err != nil {
				return fmt.Errorf("writing zip entry %s: %w", entry.name, err)
			}
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("closing zip: %w", err)
	}
	return nil
}

// ZipName derives the download name for a batch: the document name for a
// single file, the date for a multi-file run.
func ZipName(results []Result, now time.Time) string {
	if len(results) == 1 {
		return "converted_files_" + results[0].Name + ".zip"
	}
	return "converted_files_" + now.Format("2006-01-02") + ".zip"
}
