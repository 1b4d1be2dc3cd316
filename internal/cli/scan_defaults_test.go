package cli

import (
	"os"
	"path/filepath"
	"testing"

	"licmedic/internal/config"
	"licmedic/internal/flags"

	"github.com/spf13/cobra"
)

func TestLoadConfigFileIfAny_FlagWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "licmedic.yml")
	if err := os.WriteFile(path, []byte("year: \"2030\"\nowner: Acme Corp\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	oldPath := cfgPath
	cfgPath = path
	t.Cleanup(func() { cfgPath = oldPath })

	c := config.New()
	cmd := &cobra.Command{Use: "scan"}
	cmd.Flags().StringVar(&c.Header.Year, flags.FlagYear, c.Header.Year, "")
	if err := cmd.Flags().Set(flags.FlagYear, "2026"); err != nil {
		t.Fatalf("set year flag: %v", err)
	}

	if err := loadConfigFileIfAny(cmd, c); err != nil {
		t.Fatalf("loadConfigFileIfAny: %v", err)
	}

	if c.Header.Year != "2026" {
		t.Fatalf("year = %q; explicit flag should win over the file", c.Header.Year)
	}
	if c.Header.Owner != "Acme Corp" {
		t.Fatalf("owner = %q; file should win over the default", c.Header.Owner)
	}
}

func TestLoadConfigFileIfAny_NoFileIsNoOp(t *testing.T) {
	oldPath := cfgPath
	cfgPath = ""
	t.Cleanup(func() { cfgPath = oldPath })

	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldWd) })

	c := config.New()
	cmd := &cobra.Command{Use: "scan"}
	if err := loadConfigFileIfAny(cmd, c); err != nil {
		t.Fatalf("loadConfigFileIfAny: %v", err)
	}
	if c.Header.Year != "2025" || c.Header.Owner != "Karesis" {
		t.Fatalf("defaults changed without a config file: %+v", c.Header)
	}
}

func TestLoadConfigFileIfAny_BadFileIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "licmedic.yml")
	if err := os.WriteFile(path, []byte("dirs: [unclosed"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	oldPath := cfgPath
	cfgPath = path
	t.Cleanup(func() { cfgPath = oldPath })

	cmd := &cobra.Command{Use: "scan"}
	if err := loadConfigFileIfAny(cmd, config.New()); err == nil {
		t.Fatal("malformed config file should be an error")
	}
}
