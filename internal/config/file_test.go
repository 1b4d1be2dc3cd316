package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"licmedic/internal/flags"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfigFile(t, `
year: "2026"
owner: Acme Corp
dirs:
  - lib
  - app
extensions:
  - .c
exclude:
  - lib/vendor
`)

	fc, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile(): %v", err)
	}

	if fc.Year != "2026" {
		t.Fatalf("year = %q, want %q", fc.Year, "2026")
	}
	if fc.Owner != "Acme Corp" {
		t.Fatalf("owner = %q, want %q", fc.Owner, "Acme Corp")
	}
	if want := []string{"lib", "app"}; !reflect.DeepEqual(fc.Dirs, want) {
		t.Fatalf("dirs = %v, want %v", fc.Dirs, want)
	}
	if want := []string{"lib/vendor"}; !reflect.DeepEqual(fc.Exclude, want) {
		t.Fatalf("exclude = %v, want %v", fc.Exclude, want)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
			t.Fatal("LoadFile() should have failed")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfigFile(t, "dirs: [unclosed")
		if _, err := LoadFile(path); err == nil {
			t.Fatal("LoadFile() should have failed")
		}
	})
}

func TestFileConfig_Apply_Precedence(t *testing.T) {
	fc := &FileConfig{
		Year:  "2026",
		Owner: "Acme Corp",
		Dirs:  []string{"lib"},
	}

	t.Run("file overrides defaults", func(t *testing.T) {
		cfg := New()
		fc.Apply(cfg, func(string) bool { return false })

		if cfg.Header.Year != "2026" || cfg.Header.Owner != "Acme Corp" {
			t.Fatalf("header = %+v, want file values", cfg.Header)
		}
		if want := []string{"lib"}; !reflect.DeepEqual(cfg.Targeting.Dirs, want) {
			t.Fatalf("dirs = %v, want %v", cfg.Targeting.Dirs, want)
		}
		// Fields absent from the file keep their defaults.
		if want := []string{".c", ".h"}; !reflect.DeepEqual(cfg.Targeting.Extensions, want) {
			t.Fatalf("extensions = %v, want %v", cfg.Targeting.Extensions, want)
		}
	})

	t.Run("explicit flags override file", func(t *testing.T) {
		cfg := New()
		cfg.Header.Year = "2030" // as if set via --year
		fc.Apply(cfg, func(flag string) bool { return flag == flags.FlagYear })

		if cfg.Header.Year != "2030" {
			t.Fatalf("year = %q, flag value should win over the file", cfg.Header.Year)
		}
		if cfg.Header.Owner != "Acme Corp" {
			t.Fatalf("owner = %q, file value should win over the default", cfg.Header.Owner)
		}
	})

	t.Run("nil receiver is a no-op", func(t *testing.T) {
		cfg := New()
		var none *FileConfig
		none.Apply(cfg, nil)
		if cfg.Header.Year != "2025" {
			t.Fatalf("year = %q, want default", cfg.Header.Year)
		}
	})
}
