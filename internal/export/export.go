// Package export serializes a ranked batch of scored apps to disk. The
// spreadsheet formats flatten one app per row and drop the review payload;
// JSON keeps the full structure.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/firstfu/app-store-crawler/internal/scan"
)

// Formats accepted by Write.
const (
	FormatXLSX = "xlsx"
	FormatJSON = "json"
	FormatDocx = "docx"
)

func ValidFormat(format string) bool {
	switch format {
	case FormatXLSX, FormatJSON, FormatDocx:
		return true
	}
	return false
}

// Filename builds the output path: app_store_<keyword>_<timestamp>.<ext>
// under dir, with the keyword sanitized for the filesystem.
func Filename(dir, keyword, format string, now time.Time) string {
	name := fmt.Sprintf("app_store_%s_%s.%s",
		sanitize(keyword), now.Format("20060102_150405"), format)
	return filepath.Join(dir, name)
}

func sanitize(keyword string) string {
	mapped := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, strings.TrimSpace(keyword))
	if mapped == "" {
		return "search"
	}
	return mapped
}

// Write serializes apps to path in the given format.
func Write(path, format string, apps []scan.ScoredApp) error {
	switch format {
	case FormatXLSX:
		return WriteXLSX(path, apps)
	case FormatJSON:
		return WriteJSON(path, apps)
	case FormatDocx:
		return WriteDocx(path, apps)
	default:
		return fmt.Errorf("unknown export format %q (valid: xlsx, json, docx)", format)
	}
}

// WriteJSON writes the full structure, reviews included.
func WriteJSON(path string, apps []scan.ScoredApp) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(apps); err != nil {
		f.Close()
		return fmt.Errorf("encoding results: %w", err)
	}
	return f.Close()
}
