package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadConfigFlagOverrides(t *testing.T) {
	flagConfig = writeConfig(t, `country: us
search_limit: 40
review_limit: 50
export:
  format: xlsx
`)

	// Parse like Execute would, so persistent flags merge into Flags().
	if err := rootCmd.ParseFlags([]string{"--country=jp", "--limit=10"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(rootCmd)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Country != "jp" {
		t.Errorf("expected flag to override country, got %q", cfg.Country)
	}
	if cfg.SearchLimit != 10 {
		t.Errorf("expected flag to override search limit, got %d", cfg.SearchLimit)
	}
	// Untouched values come from the file.
	if cfg.ReviewLimit != 50 {
		t.Errorf("expected review limit from file, got %d", cfg.ReviewLimit)
	}
}

func TestLoadConfigRejectsBadOverride(t *testing.T) {
	flagConfig = writeConfig(t, `country: us
search_limit: 40
review_limit: 50
export:
  format: xlsx
`)

	if err := rootCmd.ParseFlags([]string{"--format=csv"}); err != nil {
		t.Fatal(err)
	}

	if _, err := loadConfig(rootCmd); err == nil {
		t.Error("expected an invalid format override to be rejected")
	}
}

func TestLoadConfigFlagRepairsBadFileValue(t *testing.T) {
	// A broken file value must not fail the run when an override fixes it;
	// only the effective config is validated.
	flagConfig = writeConfig(t, `country: taiwan
search_limit: 40
review_limit: 50
export:
  format: xlsx
`)

	if err := rootCmd.ParseFlags([]string{"--country=us", "--format=json"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(rootCmd)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Country != "us" {
		t.Errorf("expected repaired country us, got %q", cfg.Country)
	}
}
