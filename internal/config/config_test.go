package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	want := Default()
	if cfg.OutputDir != want.OutputDir {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, want.OutputDir)
	}
	if cfg.DefaultType != want.DefaultType {
		t.Errorf("DefaultType = %q, want %q", cfg.DefaultType, want.DefaultType)
	}
	if cfg.SaveReports != want.SaveReports {
		t.Errorf("SaveReports = %v, want %v", cfg.SaveReports, want.SaveReports)
	}
}

func TestLoad_ReadsFile(t *testing.T) {
	dir := t.TempDir()
	content := "output_dir: /tmp/reports\ndefault_type: paragraph\nsave_reports: false\n"
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.OutputDir != "/tmp/reports" {
		t.Errorf("OutputDir = %q, want /tmp/reports", cfg.OutputDir)
	}
	if cfg.DefaultType != "paragraph" {
		t.Errorf("DefaultType = %q, want paragraph", cfg.DefaultType)
	}
	if cfg.SaveReports {
		t.Error("SaveReports = true, want false")
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("default_type: abstract\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.DefaultType != "abstract" {
		t.Errorf("DefaultType = %q, want abstract", cfg.DefaultType)
	}
	if cfg.OutputDir != Default().OutputDir {
		t.Errorf("OutputDir = %q, want default", cfg.OutputDir)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(":\n\t- bad"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(dir); err == nil {
		t.Error("expected error for malformed config")
	}
}
